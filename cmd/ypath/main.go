// Package main provides ypath, a CLI that decomposes a path into its
// drive/share, parent, file name, base name, and extension components and
// prints them according to a format string.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loblolly986/yori/internal/buildinfo"
	"github.com/loblolly986/yori/pathdecompose"
)

var (
	longForm     bool
	formatString string
)

var rootCmd = &cobra.Command{
	Use:     "ypath <path>",
	Version: buildinfo.Banner("ypath"),
	Short:   "Decompose a path into drive/share, parent, file, base, and extension",
	Long: `ypath decomposes a path into named components and prints them
according to a format string.

Format tokens:
  $PATH$         the entire path, with trailing slashes removed except on a volume root (C:\)
  $PATHNOSLASH$  the entire path, with any trailing slash removed
  $DRIVE$        the drive letter, if the path is drive-rooted
  $SHARE$        the UNC server\share prefix, if the path is share-rooted
  $DIR$          the path from the volume root to the parent directory
  $PARENT$       the parent directory
  $FILE$         the full file name (base name plus extension)
  $BASE$         the file name without its extension
  $EXT$          the extension, without its leading dot

Default format is $PATH$.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecompose,
}

func init() {
	rootCmd.Flags().BoolVarP(&longForm, "long", "e", false, "treat the path as already in \\\\?\\ long form")
	rootCmd.Flags().StringVarP(&formatString, "format", "f", "$PATH$", "format string for the decomposed path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDecompose(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %q: %w", args[0], err)
	}

	pc := pathdecompose.Decompose(path, longForm)
	fmt.Println(render(formatString, pc))
	return nil
}

// render substitutes every format token in format with the corresponding
// component of pc. $PATHNOSLASH$ is checked before $PATH$ since the latter
// is a prefix of the former.
func render(format string, pc pathdecompose.PathComponents) string {
	replacer := strings.NewReplacer(
		"$PATHNOSLASH$", pc.EntireNoTrailingSlash,
		"$PATH$", pc.Entire,
		"$DRIVE$", pc.Drive,
		"$SHARE$", pc.Share,
		"$DIR$", pc.PathFromRoot,
		"$PARENT$", pc.Parent,
		"$FILE$", pc.FullFileName,
		"$BASE$", pc.BaseName,
		"$EXT$", pc.Extension,
	)
	return replacer.Replace(format)
}
