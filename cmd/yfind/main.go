// Package main provides the CLI entry point for yfind, a tool that lists
// files matching glob patterns for use with interactive selectors like fzf.
// When no arguments are given, it recursively lists all files under the
// current directory.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/loblolly986/yori/fileenum"
	"github.com/loblolly986/yori/glob"
	"github.com/loblolly986/yori/internal/buildinfo"
)

var rootCmd = &cobra.Command{
	Use:     "yfind [PATTERN ...]",
	Version: buildinfo.Banner("yfind"),
	Short:   "List files matching patterns",
	Long: `List files matching patterns. With no arguments, list all files
recursively under the current directory.

Argument resolution:
  DIRECTORY          Recursively list all files under it (e.g. ~, ~/Downloads, .)
  PATH/               Trailing slash: list files in that directory only
  PREFIX              Match entries starting with prefix, walk matching dirs
  GLOB                Standard glob with *, ?, [, ** for recursive matching

Supports ~ expansion to the home directory.

Examples:
  yfind                     # list all files in current directory
  yfind ~                   # all files under home directory
  yfind ~/Downloads          # all files under ~/Downloads recursively
  yfind ~/.config/           # files directly in ~/.config (one level)
  yfind ~/D                  # files under ~/Downloads, ~/Documents, etc.
  yfind '~/.config/*.yaml'  # yaml files in ~/.config
  yfind '**/*.go'           # all Go files recursively`,
	RunE: runFind,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listCurrentDirectory()
	}

	exitCode := 0
	for _, pattern := range args {
		matches, err := glob.Expand(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "yfind: %s: %v\n", pattern, err)
			exitCode = 1
			continue
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "yfind: %s: no matches\n", pattern)
		}
		for _, match := range matches {
			fmt.Println(match)
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// listCurrentDirectory recursively lists every non-directory entry under ".",
// the default Ctrl-T-style behaviour when yfind is run with no arguments.
// It wires a SIGINT-driven cancellation predicate so a long walk over a
// large tree can be interrupted cleanly instead of requiring a second,
// harder signal.
func listCurrentDirectory() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	cancelled := false
	go func() {
		if _, ok := <-sigCh; ok {
			cancelled = true
		}
	}()

	enumerator := fileenum.NewEnumerator(nil, nil, func() bool { return cancelled })

	ok := enumerator.ForEachFile("./*", fileenum.ReturnFiles|fileenum.RecurseBeforeReturn|fileenum.NoLinkTraverse, 0,
		func(fullPath string, rec fileenum.FindRecord, depth int, ctx any) bool {
			fmt.Println(fullPath)
			return true
		},
		func(path string, err error, depth int, ctx any) bool {
			fmt.Fprintf(os.Stderr, "yfind: %v\n", err)
			return true
		}, nil)

	if !ok && cancelled {
		return fmt.Errorf("interrupted")
	}
	return nil
}
