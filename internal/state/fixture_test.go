package state

import (
	"fmt"
	"os"
	"path"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/rfilter/internal/fs"
	"github.com/stretchr/testify/require"
)

const testDir = "/test"

// fakeEnumerator serves fixed listings. A trailing "/" in a name marks a
// directory. Every Enumerate call hands out fresh IDs, like the real reader.
type fakeEnumerator struct {
	dirs  map[string][]string
	calls int
	err   error
}

func (f *fakeEnumerator) Enumerate(dir string) ([]FileEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	names, ok := f.dirs[dir]
	if !ok {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, os.ErrNotExist)
	}
	entries := make([]FileEntry, 0, len(names))
	for _, raw := range names {
		name, isDir := strings.CutSuffix(raw, "/")
		entries = append(entries, FileEntry{
			ID:       fsutil.NextEntryID(),
			Name:     name,
			FullPath: path.Join(dir, name),
			IsDir:    isDir,
		})
	}
	return entries, nil
}

func (f *fakeEnumerator) ResolvePath(entry FileEntry) string {
	return entry.FullPath
}

func (f *fakeEnumerator) ParentEntry(dir string) FileEntry {
	return FileEntry{
		ID:       fsutil.NextEntryID(),
		Name:     fsutil.ParentDirName,
		FullPath: path.Join(dir, fsutil.ParentDirName),
		IsDir:    true,
	}
}

type recordingScheduler struct {
	redraws     int
	reloads     int
	fullReloads int
}

func (s *recordingScheduler) ScheduleRedraw(*View)       { s.redraws++ }
func (s *recordingScheduler) ScheduleReload(*View, bool) { s.reloads++ }
func (s *recordingScheduler) ScheduleFullReload(*View)   { s.fullReloads++ }

type recordingHistory struct {
	items []string
}

func (h *recordingHistory) Append(text string) {
	h.items = append(h.items, text)
}

type fixture struct {
	view    *View
	fs      *fakeEnumerator
	sched   *recordingScheduler
	history *recordingHistory
}

func newFixture(t *testing.T, settings Settings, names ...string) *fixture {
	t.Helper()
	f := &fixture{
		fs:      &fakeEnumerator{dirs: map[string][]string{testDir: names}},
		sched:   &recordingScheduler{},
		history: &recordingHistory{},
	}
	f.view = NewView(testDir, Options{
		Settings:   settings,
		Enumerator: f.fs,
		Scheduler:  f.sched,
		History:    f.history,
	})
	require.NoError(t, f.view.Reload(false))
	return f
}

// moveTo puts the cursor on the visible entry called name.
func (f *fixture) moveTo(t *testing.T, name string) {
	t.Helper()
	for i, e := range f.view.Entries {
		if e.Name == name {
			f.view.Cursor = i
			return
		}
	}
	t.Fatalf("entry %q not visible in %v", name, f.view.EntryNames())
}

func (f *fixture) currentName() string {
	if cur := f.view.CurrentEntry(); cur != nil {
		return cur.Name
	}
	return ""
}

func entryIDs(entries []FileEntry) []uint64 {
	ids := make([]uint64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
