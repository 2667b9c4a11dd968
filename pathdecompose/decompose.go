// Package pathdecompose splits a resolved absolute path into named parts:
// drive or share, the path from the root of that volume, the parent
// directory, the full file name, its base name and extension, and the
// entire path in both its natural and trailing-slash-free forms.
package pathdecompose

import "strings"

// PathComponents is the decomposed form of an absolute path. Drive and
// Share are mutually exclusive. Components that do not apply to a given
// path are left as the empty string; HasExtension distinguishes "no
// extension" from "extension present but empty" (a path ending in a bare
// trailing period).
type PathComponents struct {
	Entire                string
	EntireNoTrailingSlash string
	Drive                 string
	Share                 string
	PathFromRoot          string
	Parent                string
	FullFileName          string
	BaseName              string
	Extension             string
	HasExtension          bool
}

func isSep(b byte) bool { return b == '/' || b == '\\' }

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDriveLetterWithColonAndSlash reports whether s is exactly a drive
// letter, colon, and separator (e.g. "C:\", length 3).
func isDriveLetterWithColonAndSlash(s string) bool {
	return len(s) == 3 && isASCIILetter(s[0]) && s[1] == ':' && isSep(s[2])
}

func isPrefixedDriveLetterWithColonAndSlash(s string) bool {
	return len(s) == 7 && isLongFormPrefix(s) && isASCIILetter(s[4]) && s[5] == ':' && isSep(s[6])
}

func isLongFormPrefix(s string) bool {
	return len(s) >= 4 && isSep(s[0]) && isSep(s[1]) && s[2] == '?' && isSep(s[3])
}

// isFullPathUNC reports whether s is the long-form UNC prefix
// "\\?\UNC\..." (at least 8 characters: "\\?\UNC\").
func isFullPathUNC(s string) bool {
	return len(s) >= 8 && isLongFormPrefix(s) && strings.EqualFold(s[4:7], "UNC") && isSep(s[7])
}

// Decompose splits path (already resolved to an absolute form by the
// caller) into its components. longFormExpected indicates path is in the
// "\\?\..." long form that bypasses normal path parsing.
func Decompose(path string, longFormExpected bool) PathComponents {
	var pc PathComponents

	entire := path

	// Step 1: strip trailing separators down to the volume-root boundary,
	// never below one character (a bare "/" stays "/").
	keepBefore := 1
	if longFormExpected {
		if isPrefixedDriveLetterWithColonAndSlash(entire) {
			keepBefore = len(`\\?\C:\`)
		}
	} else if isDriveLetterWithColonAndSlash(entire) {
		keepBefore = len(`C:\`)
	}
	for len(entire) > keepBefore && isSep(entire[len(entire)-1]) {
		entire = entire[:len(entire)-1]
	}
	pc.Entire = entire

	// Step 2: the no-trailing-slash form strips unconditionally, down to
	// a minimum length of 1 (a bare leading separator is meaningful).
	noSlash := entire
	for len(noSlash) > 1 && isSep(noSlash[len(noSlash)-1]) {
		noSlash = noSlash[:len(noSlash)-1]
	}
	pc.EntireNoTrailingSlash = noSlash

	// Step 3: right-to-left scan for extension, file name, parent.
	extStart := -1
	fileFound := false
	for i := len(entire) - 1; i >= 0; i-- {
		c := entire[i]
		if c == '.' && !fileFound && extStart == -1 {
			extStart = i + 1
			pc.HasExtension = true
			pc.Extension = entire[extStart:]
		}
		if isSep(c) && !fileFound {
			fileFound = true
			pc.FullFileName = entire[i+1:]
			pc.BaseName = pc.FullFileName
			if pc.HasExtension {
				trim := len(pc.Extension) + 1
				if len(pc.BaseName) >= trim {
					pc.BaseName = pc.BaseName[:len(pc.BaseName)-trim]
				}
			}
			pc.Parent = entire[:i]
			break
		}
	}

	// Step 4: left-to-right prefix scan for drive letter / share.
	if longFormExpected {
		decomposeLongFormPrefix(&pc, entire)
	} else {
		decomposeShortFormPrefix(&pc, entire)
	}

	return pc
}

func decomposeLongFormPrefix(pc *PathComponents, entire string) {
	if len(entire) < 4 {
		return
	}
	pathAfterPrefix := entire[4:]

	if isFullPathUNC(entire) {
		applyUNCShare(pc, entire, 8)
		return
	}

	if isDriveLetterWithColonAndSlash(firstN(pathAfterPrefix, 3)) {
		pc.Drive = entire[4:5]
		pc.PathFromRoot = entire[6:]
		if pc.FullFileName != "" {
			pc.PathFromRoot = pc.PathFromRoot[:len(pc.PathFromRoot)-len(pc.FullFileName)-1]
		}
	}
}

func decomposeShortFormPrefix(pc *PathComponents, entire string) {
	if isDriveLetterWithColonAndSlash(firstN(entire, 3)) && len(entire) >= 3 {
		pc.Drive = entire[0:1]
		pc.PathFromRoot = entire[2:]
		if pc.FullFileName != "" {
			pc.PathFromRoot = pc.PathFromRoot[:len(pc.PathFromRoot)-len(pc.FullFileName)-1]
		}
		return
	}

	if len(entire) >= 2 && (entire[0] == '\\' || entire[1] == '\\') {
		applyUNCShare(pc, entire, 2)
	}
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// applyUNCShare scans entire for the second path separator starting at
// start (the first separator, ending the server name, has already been
// implicitly passed over once found), setting Share and PathFromRoot, or
// clearing the guessed file-name components when the scan shows the
// "file name" found by the backward scan was actually the tail of the
// share name itself.
func applyUNCShare(pc *PathComponents, entire string, start int) {
	endOfServerNameFound := false
	i := start
	for i < len(entire) {
		if isSep(entire[i]) {
			if !endOfServerNameFound {
				endOfServerNameFound = true
			} else {
				break
			}
		}
		i++
	}

	if i != len(entire) && !endOfServerNameFound {
		return
	}

	share := entire[:i]
	pc.Share = share

	total := len(share) + len(pc.FullFileName)
	switch {
	case total < len(entire):
		pc.PathFromRoot = entire[i : i+(len(entire)-total-1)]
	case total > len(entire):
		pc.BaseName = ""
		pc.FullFileName = ""
		pc.Extension = ""
		pc.HasExtension = false
	}
}
