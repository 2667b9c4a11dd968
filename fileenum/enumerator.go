package fileenum

import (
	"path/filepath"
	"strings"
)

// CancelFunc is polled after every successful report callback. When it
// returns true, the current enumeration unwinds with false, exactly as if
// the callback itself had refused. A nil CancelFunc means "never
// cancelled."
type CancelFunc func() bool

// Enumerator holds the platform collaborators ForEachFile and enumerate
// depend on (spec.md §6's external interfaces), so tests can substitute
// fakes instead of touching the real filesystem.
type Enumerator struct {
	Dir       DirReader
	Attr      AttrQuerier
	Cancelled CancelFunc
}

// NewEnumerator builds an Enumerator. A nil dir or attr falls back to the
// POSIX filesystem implementation.
func NewEnumerator(dir DirReader, attr AttrQuerier, cancelled CancelFunc) *Enumerator {
	if dir == nil {
		dir = defaultDirReader
	}
	if attr == nil {
		attr = defaultAttrQuerier
	}
	return &Enumerator{Dir: dir, Attr: attr, Cancelled: cancelled}
}

var std = NewEnumerator(nil, nil, nil)

// ForEachFile expands pattern (brace/bracket/tilde/file:/// operators)
// and invokes cb once per matched filesystem entry, using the package's
// default, real-filesystem-backed Enumerator. See Enumerator.ForEachFile
// for the full contract.
func ForEachFile(pattern string, flags MatchFlags, depth int, cb FileEnumFn, ec FileEnumErrorFn, ctx any) bool {
	return std.ForEachFile(pattern, flags, depth, cb, ec, ctx)
}

// ForEachFile is the pattern-expander entry point (spec.md §4.3). If
// BasicExpansion is set, it delegates straight to the enumerator.
// Otherwise it expands a leading "~"/"~user", then recursively rewrites
// the first "{...}" or "[...]" operator it finds into one concrete
// pattern per alternative, invoking itself again for each. An operator
// with no matching closer degrades to a literal pass-through.
func (e *Enumerator) ForEachFile(pattern string, flags MatchFlags, depth int, cb FileEnumFn, ec FileEnumErrorFn, ctx any) bool {
	if flags&BasicExpansion != 0 {
		return e.enumerate(pattern, flags, depth, cb, ec, ctx)
	}

	expanded := pattern
	if home, err := ExpandHome(pattern); err == nil {
		expanded = home
	}

	idx := strings.IndexAny(expanded, "{[")
	if idx == -1 {
		return e.enumerate(expanded, flags, depth, cb, ec, ctx)
	}

	before := expanded[:idx]
	operator := expanded[idx]
	rest := expanded[idx+1:]

	closing := byte('}')
	if operator == '[' {
		closing = ']'
	}

	closeIdx := strings.IndexByte(rest, closing)
	if closeIdx == -1 {
		// Unmatched operator: treat the pattern as having none.
		return e.enumerate(expanded, flags, depth, cb, ec, ctx)
	}

	inside := rest[:closeIdx]
	after := rest[closeIdx+1:]

	if operator == '{' {
		for _, alt := range strings.Split(inside, ",") {
			if !e.ForEachFile(before+alt+after, flags, depth, cb, ec, ctx) {
				return false
			}
		}
		return true
	}

	for _, c := range inside {
		if !e.ForEachFile(before+string(c)+after, flags, depth, cb, ec, ctx) {
			return false
		}
	}
	return true
}

// enumState is the per-call working set, allocated once per enumerate
// invocation (never shared across recursion levels), matching spec.md
// §9's heap-allocated-state guidance.
type enumState struct {
	effectiveFileSpec string
	parentFullPath    string
	charsToFinalSlash int
	finalSlashFound   bool
}

// enumerate walks the filesystem for one concrete pattern (no brace or
// bracket operators remaining) and invokes cb per match. It implements
// spec.md §4.4 in full: pre-processing, phase planning, and the per-phase
// directory loop.
func (e *Enumerator) enumerate(pattern string, flags MatchFlags, depth int, cb FileEnumFn, ec FileEnumErrorFn, ctx any) bool {
	st := &enumState{}

	effective := normalizeSeparators(stripFileURLPrefix(pattern))

	if depth == 0 {
		if flags&DirectoryContents != 0 {
			if dirExists(effective) {
				effective = joinPath(effective, "*")
			}
		} else if flags&(RecurseBeforeReturn|RecurseAfterReturn) != 0 {
			if dirExists(effective) {
				if abs, err := getFullPath(effective); err == nil {
					effective = abs
				}
			}
		}
	}
	st.effectiveFileSpec = effective

	st.charsToFinalSlash, st.finalSlashFound = findFinalSlash(effective)

	var directoryPart string
	if st.finalSlashFound {
		directoryPart = trimTrailingSlashUnlessRoot(effective[:st.charsToFinalSlash])
	} else {
		directoryPart = "."
	}

	parent, err := getFullPath(directoryPart)
	if err != nil {
		return false
	}
	st.parentFullPath = trimTrailingSlashUnlessRoot(parent)

	leafPattern := effective
	if st.finalSlashFound {
		leafPattern = effective[st.charsToFinalSlash:]
	}

	recurseRequested := flags&(RecurseBeforeReturn|RecurseAfterReturn) != 0
	phases := 1
	if recurseRequested {
		phases = 2
	}

	for phase := 0; phase < phases; phase++ {
		isRecursePhase := phaseIsRecurse(flags, phase)

		searchPattern := leafPattern
		if isRecursePhase && flags&RecursePreserveWild != 0 {
			searchPattern = "*"
		}

		entries, readErr := e.Dir.ReadDir(st.parentFullPath)
		if readErr != nil && isVolumeRoot(st.parentFullPath) {
			if rec, ok := e.Attr.Stat(st.parentFullPath); ok {
				entries = []DirEntry{{
					IsDir:    rec.IsDir,
					Size:     rec.Size,
					Creation: rec.Creation,
					Access:   rec.Access,
					Modify:   rec.Modify,
				}}
				readErr = nil
			}
		}

		if readErr != nil {
			if ec != nil {
				if !ec(joinPath(st.parentFullPath, searchPattern), readErr, depth, ctx) {
					return false
				}
			}
			continue
		}

		for _, entry := range entries {
			if entry.Name != "" && !Matches(entry.Name, searchPattern) {
				continue
			}

			reportObject := true
			dotFile := entry.Name == "." || entry.Name == ".."
			if dotFile && flags&IncludeDotfiles == 0 {
				reportObject = false
			}

			if entry.IsDir {
				if flags&ReturnDirectories == 0 {
					reportObject = false
				}
			} else if flags&ReturnFiles == 0 {
				reportObject = false
			}

			isLink := flags&NoLinkTraverse != 0 && (entry.IsSymlink || entry.ReparseTag == ReparseTagMountPoint)

			if !dotFile && entry.IsDir && isRecursePhase && !isLink {
				var recurseCriteria string
				if st.finalSlashFound {
					recurseCriteria = effective[:st.charsToFinalSlash] + entry.Name + "/"
				} else {
					recurseCriteria = entry.Name + "/"
				}
				if flags&RecursePreserveWild != 0 {
					recurseCriteria += leafPattern
				} else {
					recurseCriteria += "*"
				}

				if !e.ForEachFile(recurseCriteria, flags, depth+1, cb, ec, ctx) {
					return false
				}
			}

			if reportObject && !isRecursePhase {
				fullPath := joinPath(st.parentFullPath, entry.Name)
				record := FindRecord{
					Name:           entry.Name,
					FullPath:       fullPath,
					IsDir:          entry.IsDir,
					IsSymlink:      entry.IsSymlink,
					SizeBytes:      entry.Size,
					CreationTime:   entry.Creation,
					LastAccessTime: entry.Access,
					LastWriteTime:  entry.Modify,
					ReparseTag:     entry.ReparseTag,
				}

				if !cb(fullPath, record, depth, ctx) {
					return false
				}
				if e.Cancelled != nil && e.Cancelled() {
					return false
				}
			}
		}
	}

	return true
}

func stripFileURLPrefix(s string) string {
	const prefix = "file:///"
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}

// findFinalSlash scans s backwards for the last path separator, treating
// a colon after a single drive letter (e.g. "X:foo") as a separator too.
// It returns the index just past the separator, and whether one was found.
func findFinalSlash(s string) (int, bool) {
	charsToFinalSlash := len(s)
	for charsToFinalSlash > 0 {
		charsToFinalSlash--
		if isSep(s[charsToFinalSlash]) {
			return charsToFinalSlash + 1, true
		}
		if charsToFinalSlash == 1 && isDriveLetterWithColon(s[:2]) {
			return charsToFinalSlash + 1, true
		}
	}
	return 0, false
}

// trimTrailingSlashUnlessRoot trims one trailing separator from s, unless
// s is exactly a volume root ("C:\" or similarly short), which must keep
// its slash to remain meaningful.
func trimTrailingSlashUnlessRoot(s string) string {
	if len(s) > 1 && isSep(s[len(s)-1]) {
		if !(len(s) <= 3 && isDriveLetterWithColonAndSlash(s)) {
			return s[:len(s)-1]
		}
	}
	return s
}

func phaseIsRecurse(flags MatchFlags, phase int) bool {
	before := flags&RecurseBeforeReturn != 0
	after := flags&RecurseAfterReturn != 0
	switch {
	case before && after:
		// Both flags collapse to a single recurse phase followed by a
		// single report phase, matching RecurseBeforeReturn alone. This
		// is spec-pinned observable behavior, not a bug fix target.
		return phase == 0
	case after:
		return phase == 1
	case before:
		return phase == 0
	default:
		return false
	}
}

func isVolumeRoot(path string) bool {
	return path == string(filepath.Separator) ||
		isDriveLetterWithColonAndSlash(path) ||
		isPrefixedDriveLetterWithColonAndSlash(path) ||
		isFullUNCShareRoot(path)
}

// isFullUNCShareRoot reports whether path is exactly a long-form UNC share
// root ("\\?\UNC\srv\share"), with no path beyond the share name. A
// trailing directory or file component after the share disqualifies it:
// that's an ordinary path under the root, not the root itself.
func isFullUNCShareRoot(path string) bool {
	if !isFullUNCPrefixed(path) || len(path) < 8 {
		return false
	}
	remainder := path[8:]
	seps := 0
	for i := 0; i < len(remainder); i++ {
		if isSep(remainder[i]) {
			seps++
		}
	}
	return seps == 1 && !isSep(remainder[len(remainder)-1])
}

// joinPath composes a directory and a name the way every reported
// fullPath is built: a single separator between them, with an empty name
// returning the directory unchanged (used for the synthesized volume-root
// record).
func joinPath(dir, name string) string {
	if name == "" {
		return dir
	}
	if dir == "" {
		return name
	}
	if isSep(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
