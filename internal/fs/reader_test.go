package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateAssignsFreshIDs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	reader := NewDirectoryReader()
	first, err := reader.Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, first, 2)

	assert.Equal(t, "a.txt", first[0].Name)
	assert.False(t, first[0].IsDir)
	assert.Equal(t, "sub", first[1].Name)
	assert.True(t, first[1].IsDir)
	assert.NotEqual(t, first[0].ID, first[1].ID)

	second, err := reader.Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Greater(t, second[0].ID, first[1].ID)
}

func TestEnumerateMissingDirectory(t *testing.T) {
	_, err := NewDirectoryReader().Enumerate(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnumerateNormalizesNames(t *testing.T) {
	dir := t.TempDir()
	decomposed := "cafe\u0301.txt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, decomposed), nil, 0o644))

	entries, err := NewDirectoryReader().Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "caf\u00e9.txt", entries[0].Name)
	assert.Equal(t, filepath.Join(dir, decomposed), entries[0].FullPath)
}

func TestResolvePathIsAbsolute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), nil, 0o644))

	reader := NewDirectoryReader()
	entries, err := reader.Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	path := reader.ResolvePath(entries[0])
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "f", filepath.Base(path))
}

func TestParentEntry(t *testing.T) {
	dir := t.TempDir()
	parent := NewDirectoryReader().ParentEntry(dir)

	assert.True(t, parent.IsParent())
	assert.True(t, parent.IsDir)
	assert.NotZero(t, parent.ID)
}

func TestMatchNameAppendsSeparatorForDirectories(t *testing.T) {
	assert.Equal(t, "src/", Entry{Name: "src", IsDir: true}.MatchName())
	assert.Equal(t, "src", Entry{Name: "src"}.MatchName())
}

func TestIsRoot(t *testing.T) {
	assert.True(t, IsRoot(string(filepath.Separator)))
	assert.False(t, IsRoot(t.TempDir()))
}

func TestParentEntryIsNeverHidden(t *testing.T) {
	assert.False(t, NewDirectoryReader().ParentEntry(t.TempDir()).IsHidden())
}
