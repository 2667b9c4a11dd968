//go:build !windows

package fileenum

import (
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// osDirReader implements DirReader against the local POSIX filesystem.
type osDirReader struct{}

func (osDirReader) ReadDir(dir string) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			// The entry vanished between ReadDir and Info; skip it rather
			// than failing the whole listing.
			continue
		}
		entry := dirEntryFromInfo(e.Name(), info)
		if entry.IsSymlink {
			// A reparse point's reported "directory-ness" follows its
			// target, the way FindFirstFile surfaces a directory symlink
			// with both FILE_ATTRIBUTE_DIRECTORY and the reparse tag set.
			if target, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
				entry.IsDir = target.IsDir()
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

// osAttrQuerier implements AttrQuerier against the local POSIX filesystem.
type osAttrQuerier struct{}

func (osAttrQuerier) Stat(path string) (DirEntry, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return DirEntry{}, false
	}
	return dirEntryFromInfo(finalComponent(path), info), true
}

func dirEntryFromInfo(name string, info os.FileInfo) DirEntry {
	entry := DirEntry{
		Name:      name,
		IsDir:     info.IsDir(),
		IsSymlink: info.Mode()&os.ModeSymlink != 0,
		Size:      info.Size(),
		Modify:    info.ModTime(),
	}
	if entry.IsSymlink {
		entry.ReparseTag = ReparseTagSymlink
	}
	if times, ok := statTimesFromInfo(info); ok {
		entry.Creation = times.creation
		entry.Access = times.access
		entry.Modify = times.modify
	} else {
		entry.Creation = info.ModTime()
		entry.Access = info.ModTime()
	}
	return entry
}

type fileTimes struct {
	creation time.Time
	access   time.Time
	modify   time.Time
}

// statTimesFromInfo extracts access/creation times from the platform-
// specific portion of os.FileInfo. POSIX has no creation time; the
// birth time exposed via statx is not part of syscall.Stat_t on every
// POSIX target, so creation is approximated with ModTime, matching what
// most POSIX tooling does when asked for a Windows-shaped triple.
func statTimesFromInfo(info os.FileInfo) (fileTimes, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileTimes{}, false
	}
	access := time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	modify := time.Unix(stat.Mtim.Sec, stat.Mtim.Nsec)
	return fileTimes{
		creation: info.ModTime(),
		access:   access,
		modify:   modify,
	}, true
}

// statTimes is the record.go-facing entry point wrapping the same logic
// for a raw os.FileInfo, used by UpdateFindRecordFromFile.
func statTimes(info os.FileInfo) (fileTimes, bool) {
	return statTimesFromInfo(info)
}
