package state

// reconcileCursor places the cursor after the local filter changed the
// visible list. relPos is the cursor's row relative to the top line before
// the change and is preserved where the list allows it.
func (v *View) reconcileCursor(relPos int) {
	rows := make(map[uint64]int, len(v.Entries))
	for i := range v.Entries {
		rows[v.Entries[i].ID] = i
	}

	pos := v.previouslySelectedPos(rows)
	if pos < 0 {
		pos = v.nearestNeighbour(rows)
	}
	if pos < 0 {
		return
	}

	if pos == 0 && len(v.Entries) > 1 && v.Entries[0].IsParent() {
		pos++
	}

	v.Cursor = pos
	v.TopLine = v.clampTopLine(pos - relPos)
}

// previouslySelectedPos returns the row of the oldest history entry that is
// still visible and forgets every newer one. Returns -1 if none survived.
func (v *View) previouslySelectedPos(rows map[uint64]int) int {
	for i, unfilteredPos := range v.local.poshist {
		if unfilteredPos < 0 || unfilteredPos >= len(v.local.unfiltered) {
			continue
		}
		if row, ok := rows[v.local.unfiltered[unfilteredPos].ID]; ok {
			v.local.truncateHistoryAfter(i)
			return row
		}
	}
	return -1
}

// nearestNeighbour finds the first visible entry at or below the position
// the cursor had when the session began, falling back to the last row.
func (v *View) nearestNeighbour(rows map[uint64]int) int {
	if len(v.local.poshist) > 0 {
		for i := v.local.poshist[0]; i >= 0 && i < len(v.local.unfiltered); i++ {
			if row, ok := rows[v.local.unfiltered[i].ID]; ok {
				return row
			}
		}
	}

	if len(v.Entries) == 0 {
		v.log.Error(nil, "visible list is empty after filtering", "path", v.CurrentPath)
		return -1
	}
	return len(v.Entries) - 1
}
