package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// DirectoryReader enumerates directories on the local filesystem.
type DirectoryReader struct{}

// NewDirectoryReader constructs the default enumerator.
func NewDirectoryReader() *DirectoryReader {
	return &DirectoryReader{}
}

// Enumerate reads dir and returns its entries in directory-read order. Every
// call assigns fresh entry IDs.
func (r *DirectoryReader) Enumerate(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	listed := make([]Entry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		isDir := e.IsDir()
		isSymlink := (info.Mode() & os.ModeSymlink) != 0

		// For symlinks, check if target is a directory
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		listed = append(listed, Entry{
			ID:        NextEntryID(),
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
		})
	}

	return listed, nil
}

// ResolvePath returns the absolute path of an entry.
func (r *DirectoryReader) ResolvePath(e Entry) string {
	if e.FullPath == "" {
		return e.Name
	}
	if abs, err := filepath.Abs(e.FullPath); err == nil {
		return abs
	}
	return e.FullPath
}

// ParentEntry creates the synthetic ".." entry for dir.
func (r *DirectoryReader) ParentEntry(dir string) Entry {
	entry := Entry{
		ID:       NextEntryID(),
		Name:     ParentDirName,
		FullPath: filepath.Join(dir, ParentDirName),
		IsDir:    true,
		Mode:     os.ModeDir,
	}
	if info, err := os.Stat(filepath.Dir(filepath.Clean(dir))); err == nil {
		entry.Modified = info.ModTime()
		entry.Mode = info.Mode()
	}
	return entry
}

// IsRoot reports whether dir has no parent directory.
func IsRoot(dir string) bool {
	clean := filepath.Clean(dir)
	return filepath.Dir(clean) == clean
}
