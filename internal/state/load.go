package state

import (
	"fmt"
	"path/filepath"
)

type listing struct {
	entries  []FileEntry
	filtered int
}

// listDirectory enumerates the current directory and applies every filter of
// the view, the parent entry first when configured.
func (v *View) listDirectory() (listing, error) {
	raw, err := v.enumerator.Enumerate(v.CurrentPath)
	if err != nil {
		return listing{}, err
	}

	entries := make([]FileEntry, 0, len(raw)+1)
	if v.parentDirVisible() {
		entries = append(entries, v.enumerator.ParentEntry(v.CurrentPath))
	}

	filtered := 0
	for _, e := range raw {
		if e.IsParent() {
			continue
		}
		if v.HideDotFiles && e.IsHidden() {
			filtered++
			continue
		}
		if !v.IsVisible(e) {
			filtered++
			continue
		}
		entries = append(entries, e)
	}

	return listing{entries: entries, filtered: filtered}, nil
}

// Reload re-reads the current directory. With keepPosition the cursor stays
// on the same file when it is still listed. While a local filter session is
// active the reload is postponed until the session ends.
func (v *View) Reload(keepPosition bool) error {
	if v.local.inProgress {
		v.reloadPending = true
		return nil
	}

	prevPath := ""
	if cur := v.CurrentEntry(); cur != nil && keepPosition {
		prevPath = v.enumerator.ResolvePath(*cur)
	}
	relPos := v.Cursor - v.TopLine

	result, err := v.listDirectory()
	if err != nil {
		v.log.Error(err, "reload failed", "path", v.CurrentPath)
		return err
	}

	v.Entries = result.entries
	v.Filtered = result.filtered
	v.ensureNotEmpty(partition{}, nil)

	if keepPosition {
		if idx := v.indexOfPath(prevPath); idx >= 0 {
			v.Cursor = idx
		}
		v.TopLine = v.Cursor - relPos
	} else {
		v.Cursor = 0
		v.TopLine = 0
	}
	v.ensureCursorValid()
	v.recountSelected()

	v.log.V(1).Info("directory loaded", "path", v.CurrentPath,
		"entries", len(v.Entries), "filtered", v.Filtered)
	v.scheduler.ScheduleRedraw(v)
	return nil
}

// ChangeDirectory moves the view to path. The local filter belongs to the
// directory it was typed in and is dropped.
func (v *View) ChangeDirectory(path string) error {
	if v.local.inProgress {
		return v.misuse("change directory during a local filter session")
	}

	target := filepath.Clean(path)
	prev := v.CurrentPath
	prevEntries, prevFiltered := v.Entries, v.Filtered
	prevLocal, prevLocalSlot := v.local.filter, v.local.prev

	v.CurrentPath = target
	v.DirectoryChanged()
	if err := v.Reload(false); err != nil {
		// The old listing is still narrowed by the old local filter.
		v.CurrentPath = prev
		v.Entries, v.Filtered = prevEntries, prevFiltered
		v.local.filter, v.local.prev = prevLocal, prevLocalSlot
		return fmt.Errorf("cannot change directory to %s: %w", target, err)
	}

	clear(v.selected)
	v.selectedCount = 0

	// Coming back up, land on the directory we just left.
	if filepath.Dir(prev) == target {
		name := filepath.Base(prev)
		for idx, e := range v.Entries {
			if e.IsDir && e.Name == name {
				v.Cursor = idx
				break
			}
		}
		v.ensureCursorValid()
	}
	return nil
}

// EnterCurrent descends into the directory under the cursor; ".." goes up.
func (v *View) EnterCurrent() error {
	cur := v.CurrentEntry()
	if cur == nil || !cur.IsDir {
		return nil
	}
	if cur.IsParent() {
		return v.GoUp()
	}
	return v.ChangeDirectory(filepath.Join(v.CurrentPath, cur.Name))
}

// GoUp moves to the parent directory.
func (v *View) GoUp() error {
	parent := filepath.Dir(v.CurrentPath)
	if parent == v.CurrentPath {
		return nil
	}
	return v.ChangeDirectory(parent)
}

// MoveCursor moves the cursor by delta rows, clamped to the list.
func (v *View) MoveCursor(delta int) {
	if len(v.Entries) == 0 {
		return
	}
	v.Cursor += delta
	v.ensureCursorValid()
	v.scheduler.ScheduleRedraw(v)
}

// SetDotFilesVisible shows or hides entries the platform considers hidden.
func (v *View) SetDotFilesVisible(visible bool) {
	v.HideDotFiles = !visible
	v.scheduler.ScheduleReload(v, true)
}

// ToggleDotFiles flips hidden entry visibility.
func (v *View) ToggleDotFiles() {
	v.SetDotFilesVisible(v.HideDotFiles)
}
