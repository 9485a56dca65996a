package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVisibleFilterOrder(t *testing.T) {
	file := FileEntry{Name: "main.go"}
	dir := FileEntry{Name: "src", IsDir: true}

	tests := []struct {
		name   string
		auto   string
		local  string
		manual string
		invert bool
		entry  FileEntry
		want   bool
	}{
		{name: "no filters", entry: file, want: true},
		{name: "manual match shows", manual: `\.go$`, entry: file, want: true},
		{name: "manual miss hides", manual: `\.txt$`, entry: file, want: false},
		{name: "inverted manual match hides", manual: `\.go$`, invert: true, entry: file, want: false},
		{name: "inverted manual miss shows", manual: `\.txt$`, invert: true, entry: file, want: true},
		{name: "auto wins over manual", auto: `^main\.go$`, manual: `\.go$`, entry: file, want: false},
		{name: "auto wins over inverted manual", auto: `^main\.go$`, manual: `\.txt$`, invert: true, entry: file, want: false},
		{name: "local hides regardless of manual", local: "zzz", manual: `\.txt$`, invert: true, entry: file, want: false},
		{name: "local match keeps manual decision", local: "main", manual: `\.go$`, entry: file, want: true},
		{name: "directory name carries separator", manual: `^src$`, entry: dir, want: false},
		{name: "directory pattern with separator", manual: `^src/$`, entry: dir, want: true},
		{name: "inverted manual on directory", manual: `^src$`, invert: true, entry: dir, want: true},
		{name: "glob manual", manual: `{*.go}`, entry: file, want: true},
		{name: "glob directory", manual: `{*/}`, entry: dir, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Settings{})
			v := f.view
			require.NoError(t, v.Filters.Auto.Set(tt.auto))
			require.NoError(t, v.Filters.Manual.Set(tt.manual))
			require.NoError(t, v.local.filter.Set(tt.local))
			v.Filters.Invert = tt.invert

			assert.Equal(t, tt.want, v.IsVisible(tt.entry))
		})
	}
}

func TestLocalFilterMatchesIgnoresNameFilters(t *testing.T) {
	f := newFixture(t, Settings{})
	v := f.view
	require.NoError(t, v.Filters.Auto.Set(`^a$`))
	require.NoError(t, v.local.filter.Set("a"))

	entry := FileEntry{Name: "a"}
	assert.True(t, v.LocalFilterMatches(entry))
	assert.False(t, v.IsVisible(entry))
}

func TestResetFiltersUsesConfiguredInversion(t *testing.T) {
	f := newFixture(t, Settings{FilterInvertedByDefault: true}, "a", "b")
	v := f.view

	require.NoError(t, v.SetManualFilter("a", false))
	require.NoError(t, v.ApplyLocalDirect("b"))
	require.NoError(t, v.Filters.Auto.Set("x"))

	v.ResetFilters()

	assert.True(t, v.FilenameFilterIsEmpty())
	assert.True(t, v.Filters.Invert)
	assert.Empty(t, v.LocalFilterText())
	assert.False(t, v.LocalFilterInProgress())
	assert.Empty(t, v.Filters.SavedManual())
}

func TestFilenameFilterIsEmpty(t *testing.T) {
	f := newFixture(t, Settings{})
	v := f.view
	assert.True(t, v.FilenameFilterIsEmpty())

	require.NoError(t, v.Filters.Auto.Set("x"))
	assert.False(t, v.FilenameFilterIsEmpty())

	v.Filters.Auto.Clear()
	require.NoError(t, v.Filters.Manual.Set("y"))
	assert.False(t, v.FilenameFilterIsEmpty())
}
