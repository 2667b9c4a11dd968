// Package glob provides CLI-facing argument resolution for cmd/yfind. It
// supports tilde (~) expansion, recursive globbing via ** using the
// doublestar library, directory listing, and prefix-based matching. Directory
// listings and recursive walks go through fileenum; glob patterns are walked
// by doublestar, and prefix matching reads the parent with os.ReadDir.
//
// Resolution precedence for a given argument:
//  1. Expand tilde (~) to the user's home directory (fileenum.ExpandHome).
//  2. If the argument contains glob metacharacters (*, ?, [, {, or **) →
//     doublestar glob expansion, the one path this package does not hand
//     to fileenum: ** recursion sits above fileenum's scope.
//  3. If the argument ends with '/' → list files in that directory only
//     (fileenum.ForEachFile with DirectoryContents).
//  4. If the argument resolves to an existing regular file → return it.
//  5. If the argument resolves to an existing directory → recursively walk
//     it (fileenum.ForEachFile with RecurseBeforeReturn).
//  6. Otherwise → prefix match: the last path component is treated as a
//     prefix; matching directories are walked recursively, matching files
//     are included directly.
package glob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/loblolly986/yori/fileenum"
)

// Expand takes an argument string and returns all matching file paths.
// See package documentation for the full resolution logic.
func Expand(pattern string) ([]string, error) {
	expanded, err := fileenum.ExpandHome(pattern)
	if err != nil {
		return nil, err
	}

	trailingSlash := strings.HasSuffix(expanded, "/")

	if containsMeta(expanded) {
		return expandGlob(expanded)
	}

	cleaned := filepath.Clean(expanded)

	if trailingSlash {
		return walk(cleaned, fileenum.ReturnFiles|fileenum.DirectoryContents)
	}

	info, err := os.Stat(cleaned)
	if err == nil {
		if info.IsDir() {
			return walk(filepath.Join(cleaned, "*"), fileenum.ReturnFiles|fileenum.RecurseBeforeReturn|fileenum.NoLinkTraverse)
		}
		if info.Mode().IsRegular() {
			return []string{cleaned}, nil
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %q: %w", cleaned, err)
	}

	return expandPrefix(cleaned)
}

// walk collects every path fileenum.ForEachFile reports for pattern under
// flags, printing nothing itself — cmd/yfind decides how to present results.
func walk(pattern string, flags fileenum.MatchFlags) ([]string, error) {
	var results []string
	var walkErr error
	fileenum.ForEachFile(pattern, flags|fileenum.BasicExpansion, 0,
		func(fullPath string, rec fileenum.FindRecord, depth int, ctx any) bool {
			results = append(results, fullPath)
			return true
		},
		func(path string, err error, depth int, ctx any) bool {
			walkErr = fmt.Errorf("listing %q: %w", path, err)
			return true
		}, nil)
	return results, walkErr
}

// expandGlob performs doublestar glob expansion on a pattern that contains
// metacharacters. Only regular files (and symlinks resolving to regular
// files) are included in the results.
func expandGlob(pattern string) ([]string, error) {
	base, globPart := splitPattern(pattern)

	fsys := os.DirFS(base)
	matches, err := doublestar.Glob(fsys, globPart)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	results := make([]string, 0, len(matches))
	for _, m := range matches {
		full := filepath.Join(base, m)

		info, err := os.Lstat(full)
		if err != nil {
			continue
		}

		if isIncludableFile(full, info.Mode()) {
			results = append(results, full)
		}
	}

	return results, nil
}

// expandPrefix treats the last component of path as a prefix and finds all
// entries in the parent directory that start with it. Matching directories
// are walked recursively; matching regular files are included directly.
func expandPrefix(path string) ([]string, error) {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var results []string

	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}

		full := filepath.Join(dir, e.Name())

		isDir := false
		if e.Type()&os.ModeSymlink != 0 {
			resolved, err := os.Stat(full)
			if err != nil {
				continue
			}
			isDir = resolved.IsDir()
		} else {
			isDir = e.IsDir()
		}

		if isDir {
			collected, err := walk(filepath.Join(full, "*"), fileenum.ReturnFiles|fileenum.RecurseBeforeReturn|fileenum.NoLinkTraverse)
			if err != nil {
				return nil, err
			}
			results = append(results, collected...)
			continue
		}

		if isIncludableFile(full, e.Type()) {
			results = append(results, full)
		}
	}

	return results, nil
}

// isIncludableFile reports whether path should be included in results. It
// resolves symlinks and returns true only for regular files (or symlinks
// that resolve to regular files). Dangling symlinks, directories, and
// special files (pipes, sockets, devices) return false.
func isIncludableFile(path string, mode os.FileMode) bool {
	if mode&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return false
		}
		return info.Mode().IsRegular()
	}
	return mode.IsRegular()
}

// splitPattern splits a glob pattern into a static base directory and the
// remaining glob expression. The base is the longest prefix of path
// components that contain no glob meta-characters.
func splitPattern(pattern string) (base, glob string) {
	pattern = filepath.Clean(pattern)

	isAbs := filepath.IsAbs(pattern)
	parts := strings.Split(pattern, string(filepath.Separator))

	start := 0
	if isAbs && len(parts) > 0 && parts[0] == "" {
		start = 1
	}

	idx := start
	for idx < len(parts) {
		if containsMeta(parts[idx]) {
			break
		}
		idx++
	}

	if idx == start {
		if isAbs {
			return string(filepath.Separator), strings.Join(parts[start:], string(filepath.Separator))
		}
		return ".", pattern
	}

	base = strings.Join(parts[:idx], string(filepath.Separator))
	if base == "" {
		base = string(filepath.Separator)
	}

	if idx == len(parts) {
		dir := filepath.Dir(pattern)
		file := filepath.Base(pattern)
		return dir, file
	}

	glob = strings.Join(parts[idx:], string(filepath.Separator))
	return base, glob
}

// containsMeta reports whether s contains any glob metacharacters, including
// '{' for doublestar's brace/alternation syntax.
func containsMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
