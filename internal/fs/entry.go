package fs

import (
	"os"
	"sync/atomic"
	"time"
)

// ParentDirName is the name of the synthetic "go to parent" entry.
const ParentDirName = ".."

var lastEntryID atomic.Uint64

// NextEntryID hands out a process-wide unique, increasing entry token.
func NextEntryID() uint64 {
	return lastEntryID.Add(1)
}

// Entry represents a single file or directory on disk.
type Entry struct {
	// ID identifies the enumeration slot the entry came from. Copies of an
	// entry share the ID; re-reading a directory produces new IDs.
	ID        uint64
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// IsParent reports whether the entry is the synthetic parent directory entry.
func (e Entry) IsParent() bool {
	return e.Name == ParentDirName
}

// MatchName returns the string filters are matched against: directories get
// a trailing separator so "dir/" never collides with a file named "dir".
func (e Entry) MatchName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

func isDotName(name string) bool {
	return name != ParentDirName && len(name) > 0 && name[0] == '.'
}
