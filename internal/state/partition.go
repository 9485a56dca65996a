package state

// partition is the outcome of one pass over a backing list.
type partition struct {
	// visible holds the entries copied out when add was requested.
	visible []FileEntry
	// backing is the input list, compacted when non-matching entries were
	// cleared.
	backing []FileEntry
	// parent is the ".." entry met during the pass, if any.
	parent    FileEntry
	hasParent bool
	// hidden counts entries rejected by keep.
	hidden int
}

// partitionEntries walks backing once. Entries accepted by keep are copied to
// the visible list when add is set; the rest are dropped from the backing
// list when clearNonMatching is set. The parent entry is never tested: it is
// copied only when add and parentVisible both hold, and it is never cleared.
func partitionEntries(backing []FileEntry, keep func(FileEntry) bool, parentVisible, add, clearNonMatching bool) partition {
	var res partition
	if add {
		res.visible = make([]FileEntry, 0, len(backing))
	}

	kept := backing
	if clearNonMatching {
		kept = make([]FileEntry, 0, len(backing))
	}

	for _, entry := range backing {
		if entry.IsParent() {
			res.parent = entry
			res.hasParent = true
			if add && parentVisible {
				res.visible = append(res.visible, entry)
			}
			if clearNonMatching {
				kept = append(kept, entry)
			}
			continue
		}

		if keep(entry) {
			if add {
				res.visible = append(res.visible, entry)
			}
			if clearNonMatching {
				kept = append(kept, entry)
			}
			continue
		}
		res.hidden++
	}

	res.backing = kept
	return res
}

// ensureNotEmpty leaves a single parent entry in an otherwise empty visible
// list so the cursor always has a row. A missing parent entry is created and,
// when backing is given, recorded there as well.
func (v *View) ensureNotEmpty(res partition, backing *[]FileEntry) {
	if len(v.Entries) != 0 {
		return
	}

	if res.hasParent {
		v.Entries = []FileEntry{res.parent}
		return
	}

	parent := v.enumerator.ParentEntry(v.CurrentPath)
	v.Entries = []FileEntry{parent}
	if backing != nil {
		*backing = append(*backing, parent)
	}
}
