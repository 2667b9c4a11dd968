package fileenum

import (
	"os"
	"path/filepath"
	"strings"
)

// isSep reports whether r is a path separator. Both '/' and '\\' are
// accepted on input, matching spec.md's "both accepted" requirement, even
// though this port otherwise normalizes on '/'.
func isSep(r byte) bool {
	return r == '/' || r == '\\'
}

// isDriveLetterWithColon reports whether s is exactly two characters long:
// an ASCII letter followed by a colon (e.g. "C:"). This is the Windows
// drive-letter syntax; on a POSIX port it is recognized purely as a
// string shape so that patterns written in that style (carried over from
// the original Yori source and exercised by the path decomposer's test
// scenarios) still decompose the way spec.md §8 expects.
func isDriveLetterWithColon(s string) bool {
	if len(s) != 2 {
		return false
	}
	return isASCIILetter(s[0]) && s[1] == ':'
}

// isDriveLetterWithColonAndSlash reports whether s begins with a drive
// letter, colon, and separator (e.g. "C:\" or "C:/"), and is exactly that
// long (length 3).
func isDriveLetterWithColonAndSlash(s string) bool {
	if len(s) != 3 {
		return false
	}
	return isASCIILetter(s[0]) && s[1] == ':' && isSep(s[2])
}

// isPrefixedDriveLetterWithColonAndSlash reports whether s is the
// long-form "\\?\X:\" prefix (length 7).
func isPrefixedDriveLetterWithColonAndSlash(s string) bool {
	if len(s) != 7 {
		return false
	}
	return isLongFormPrefix(s) && isASCIILetter(s[4]) && s[5] == ':' && isSep(s[6])
}

// isLongFormPrefix reports whether s begins with the "\\?\" long-path
// prefix that bypasses normal path parsing.
func isLongFormPrefix(s string) bool {
	return len(s) >= 4 && isSep(s[0]) && isSep(s[1]) && s[2] == '?' && isSep(s[3])
}

// isFullUNCPrefixed reports whether s begins with the long-form UNC prefix
// "\\?\UNC\".
func isFullUNCPrefixed(s string) bool {
	const prefix = `\\?\UNC\`
	if len(s) < len(prefix) {
		return false
	}
	return isLongFormPrefix(s) && strings.EqualFold(s[4:7], "UNC") && isSep(s[7])
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// getFullPath resolves rel against the process's current working
// directory, exactly as Go's filepath.Abs does. It is named to match
// spec.md §6's getFullPath collaborator.
func getFullPath(rel string) (string, error) {
	return filepath.Abs(rel)
}

// finalComponent returns the last path component of p, accepting either
// separator.
func finalComponent(p string) string {
	p = strings.TrimRight(p, `/\`)
	idx := strings.LastIndexAny(p, `/\`)
	if idx == -1 {
		return p
	}
	return p[idx+1:]
}

// normalizeSeparators rewrites backslashes to the platform separator so
// that callers who type Windows-style patterns on a POSIX build still get
// sensible parent/child joins. This only affects internal bookkeeping, not
// user-visible output beyond what joining requires.
func normalizeSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, string(filepath.Separator))
}

// dirExists reports whether path refers to an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
