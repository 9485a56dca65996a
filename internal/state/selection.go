package state

// Selection is keyed by resolved path so it survives reloads, which hand out
// new entry IDs.

// ToggleSelection flips the selection of the entry under the cursor and
// moves the cursor down.
func (v *View) ToggleSelection() {
	cur := v.CurrentEntry()
	if cur == nil || cur.IsParent() {
		return
	}
	path := v.enumerator.ResolvePath(*cur)
	if _, ok := v.selected[path]; ok {
		delete(v.selected, path)
	} else {
		v.selected[path] = struct{}{}
	}
	v.recountSelected()
	v.MoveCursor(1)
}

// ClearSelection unselects everything.
func (v *View) ClearSelection() {
	clear(v.selected)
	v.selectedCount = 0
	v.scheduler.ScheduleRedraw(v)
}

// IsSelected reports whether entry is selected.
func (v *View) IsSelected(entry FileEntry) bool {
	if len(v.selected) == 0 {
		return false
	}
	_, ok := v.selected[v.enumerator.ResolvePath(entry)]
	return ok
}

// SelectedCount is the number of selected entries in the visible list.
func (v *View) SelectedCount() int {
	return v.selectedCount
}

// selectedOrCurrent returns the selected visible entries, or the entry under
// the cursor when nothing is selected. The parent entry is never included.
func (v *View) selectedOrCurrent() []FileEntry {
	var picked []FileEntry
	if v.selectedCount > 0 {
		for _, e := range v.Entries {
			if !e.IsParent() && v.IsSelected(e) {
				picked = append(picked, e)
			}
		}
		return picked
	}
	if cur := v.CurrentEntry(); cur != nil && !cur.IsParent() {
		picked = append(picked, *cur)
	}
	return picked
}

// recountSelected drops selections of entries no longer visible and updates
// the selected count.
func (v *View) recountSelected() {
	if len(v.selected) == 0 {
		v.selectedCount = 0
		return
	}

	visible := make(map[string]struct{}, len(v.selected))
	for _, e := range v.Entries {
		path := v.enumerator.ResolvePath(e)
		if _, ok := v.selected[path]; ok {
			visible[path] = struct{}{}
		}
	}
	v.selected = visible
	v.selectedCount = len(visible)
}
