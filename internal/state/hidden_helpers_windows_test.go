//go:build windows

package state

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markHiddenForTest(path string) error {
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return err
	}
	return syscall.SetFileAttributes(ptr, attrs|syscall.FILE_ATTRIBUTE_HIDDEN)
}

func TestHiddenAttributeHidesEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"secret.txt", "plain.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, markHiddenForTest(filepath.Join(dir, "secret.txt")))

	v := NewView(dir, Options{Settings: Settings{HideDotFiles: true}})
	require.NoError(t, v.Reload(false))
	assert.Equal(t, []string{"plain.txt"}, v.EntryNames())
	assert.Equal(t, 1, v.Filtered)

	v.HideDotFiles = false
	require.NoError(t, v.Reload(false))
	assert.Equal(t, []string{"plain.txt", "secret.txt"}, v.EntryNames())
}
