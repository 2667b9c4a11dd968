// Package fileenum implements the pattern expander, wildcard matcher, and
// recursive enumerator used to turn a user-supplied path pattern into a
// stream of matched filesystem entries.
package fileenum

import (
	"fmt"
	"os"
	"time"
)

// MatchFlags controls the behavior of ForEachFile and the enumerator it
// drives. Flags are independent bits and may be combined freely.
type MatchFlags uint32

const (
	// ReturnFiles reports non-directory entries to the callback.
	ReturnFiles MatchFlags = 1 << iota
	// ReturnDirectories reports directory entries to the callback.
	ReturnDirectories
	// DirectoryContents rewrites a pattern that resolves to an existing
	// directory into "<pattern>/*" before enumerating.
	DirectoryContents
	// RecurseBeforeReturn descends into subdirectories before reporting the
	// direct matches of a directory (post-order per subtree).
	RecurseBeforeReturn
	// RecurseAfterReturn descends into subdirectories after reporting the
	// direct matches of a directory (pre-order).
	RecurseAfterReturn
	// RecursePreserveWild reapplies the original leaf pattern in every
	// subdirectory visited during recursion, instead of matching "*".
	RecursePreserveWild
	// IncludeDotfiles reports "." and ".." entries to the callback.
	IncludeDotfiles
	// NoLinkTraverse prevents recursion into reparse points classified as
	// symlinks (or, on platforms that have the concept, mount points).
	NoLinkTraverse
	// BasicExpansion skips brace/bracket/tilde expansion and forwards the
	// pattern directly to the enumerator.
	BasicExpansion
)

// FindRecord describes one visited filesystem entry.
type FindRecord struct {
	Name           string
	FullPath       string
	IsDir          bool
	IsSymlink      bool
	SizeBytes      int64
	CreationTime   time.Time
	LastAccessTime time.Time
	LastWriteTime  time.Time
	ReparseTag     ReparseTag
}

// ReparseTag classifies a reparse point. POSIX filesystems only expose the
// symlink kind; MountPoint exists so a future Windows-backed DirReader has
// somewhere to report it without changing the public contract.
type ReparseTag int

const (
	ReparseTagNone ReparseTag = iota
	ReparseTagSymlink
	ReparseTagMountPoint
)

// FileEnumFn is invoked once per matched entry. Returning false aborts the
// enumeration; the abort propagates back through every caller as false.
type FileEnumFn func(fullPath string, record FindRecord, depth int, ctx any) bool

// FileEnumErrorFn is invoked when a directory cannot be enumerated.
// Returning false aborts; returning true continues with the next phase or
// sibling. If nil, directory errors are swallowed silently.
type FileEnumErrorFn func(path string, err error, depth int, ctx any) bool

// UpdateFindRecordFromFile builds a FindRecord by directly querying a file's
// attributes, bypassing directory enumeration. It is exposed for callers
// building records from paths obtained out-of-band (e.g. named streams on
// platforms that have them); the enumerator's volume-root synthesis goes
// through its AttrQuerier instead.
//
// When copyName is true, the record's Name is derived from the final path
// component of path; otherwise Name is left empty and the caller is
// expected to fill it in.
func UpdateFindRecordFromFile(path string, copyName bool) (FindRecord, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FindRecord{}, fmt.Errorf("stat %q: %w", path, err)
	}

	record := FindRecord{
		FullPath:  path,
		IsDir:     info.IsDir(),
		IsSymlink: info.Mode()&os.ModeSymlink != 0,
		SizeBytes: info.Size(),
	}
	record.LastWriteTime = info.ModTime()
	if times, ok := statTimes(info); ok {
		record.CreationTime = times.creation
		record.LastAccessTime = times.access
		record.LastWriteTime = times.modify
	}

	if copyName {
		record.Name = finalComponent(path)
	}

	return record, nil
}
