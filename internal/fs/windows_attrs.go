//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// getFileAttributes reads the Windows attributes of fullPath, falling back to
// name relative to the working directory.
func getFileAttributes(fullPath, name string) (uint32, error) {
	attrs, err := readAttributes(fullPath)
	if err == nil || fullPath == name || !os.IsNotExist(err) {
		return attrs, err
	}
	return readAttributes(name)
}

func readAttributes(path string) (uint32, error) {
	if path == "" {
		return 0, os.ErrInvalid
	}
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(ptr)
}
