package state

import (
	"slices"

	"github.com/kk-code-lab/rfilter/internal/filter"
)

// localFilter is the incremental, keystroke-driven filter of a view and the
// state of its edit session.
type localFilter struct {
	filter     filter.Pattern
	inProgress bool

	// unfiltered is the backing list captured when the session started.
	unfiltered []FileEntry
	// prefiltered counts entries hidden by other filters before the session.
	prefiltered int

	// saved is the filter as it was before the session; Cancel restores it.
	saved     filter.Pattern
	savedID   uint64
	savedPath string
	savedTop  int

	// poshist holds, per keystroke, the backing-list position of the entry
	// that was under the cursor before the keystroke was applied.
	poshist []int

	// prev backs RemoveLocalFilter/RestoreLocalFilter.
	prev string
}

// recordPosition appends pos to the position history. It reports false when
// the history is full; the keystroke is still applied.
func (l *localFilter) recordPosition(pos, limit int) bool {
	if limit > 0 && len(l.poshist) >= limit {
		return false
	}
	l.poshist = append(l.poshist, pos)
	return true
}

// truncateHistoryAfter keeps positions up to and including index i.
func (l *localFilter) truncateHistoryAfter(i int) {
	l.poshist = l.poshist[:i+1]
}

// ApplyLocal sets the local filter text, starting a session on the first
// call. The visible list is rebuilt from the session's backing list without
// discarding anything, and the cursor is moved to the best surviving entry.
// An invalid pattern leaves the filter, the history and the list untouched.
func (v *View) ApplyLocal(text string) error {
	next := v.local.filter
	if err := next.Change(text, filter.CaseSensitive(text, v.settings.Case)); err != nil {
		v.log.V(1).Info("local filter rejected", "pattern", text, "error", err.Error())
		return err
	}

	relPos := v.Cursor - v.TopLine

	var pos int
	if v.local.inProgress {
		pos = v.unfilteredPos(v.Cursor)
	} else {
		pos = v.beginLocal()
	}

	if pos >= 0 && !v.local.recordPosition(pos, v.settings.MaxPositionHistory) {
		v.log.V(1).Info("local filter position history full, position not recorded",
			"limit", v.settings.MaxPositionHistory)
	}

	v.local.filter = next
	v.updateFilteringLists(true, false)
	v.reconcileCursor(relPos)
	v.scheduler.ScheduleRedraw(v)
	return nil
}

// beginLocal starts a session and returns the backing-list position of the
// entry under the cursor, or -1 when there is none.
func (v *View) beginLocal() int {
	pos := v.Cursor

	v.local.inProgress = true
	v.local.saved = v.local.filter
	v.local.savedTop = v.TopLine
	v.local.poshist = nil
	if cur := v.CurrentEntry(); cur != nil {
		v.local.savedID = cur.ID
		v.local.savedPath = v.enumerator.ResolvePath(*cur)
	}

	// The visible list may already be narrowed by an earlier session, so
	// re-read the directory to get everything the other filters allow.
	if v.Filtered > 0 {
		stash := v.local.filter
		v.local.filter.Clear()
		listing, err := v.listDirectory()
		if err != nil {
			v.local.filter = stash
			v.log.Error(err, "cannot re-read directory for local filter, using visible list",
				"path", v.CurrentPath)
		} else {
			v.Entries = listing.entries
			v.Filtered = listing.filtered
			if idx := v.indexOfPath(v.local.savedPath); idx >= 0 {
				pos = idx
			}
			if pos >= len(v.Entries) {
				pos = len(v.Entries) - 1
			}
			v.Cursor = pos
		}
	}

	v.local.unfiltered = slices.Clone(v.Entries)
	v.local.prefiltered = v.Filtered

	v.log.V(1).Info("local filter session started",
		"path", v.CurrentPath, "entries", len(v.local.unfiltered), "prefiltered", v.local.prefiltered)

	if len(v.Entries) == 0 || pos < 0 {
		return -1
	}
	return pos
}

// unfilteredPos maps a visible row to its position in the backing list. The
// visible list is an ordered subset of the backing list, so the search can
// start at the row index.
func (v *View) unfilteredPos(row int) int {
	if row < 0 || row >= len(v.Entries) {
		return -1
	}
	id := v.Entries[row].ID
	for i := row; i < len(v.local.unfiltered); i++ {
		if v.local.unfiltered[i].ID == id {
			return i
		}
	}
	for i := 0; i < row && i < len(v.local.unfiltered); i++ {
		if v.local.unfiltered[i].ID == id {
			return i
		}
	}
	return -1
}

// updateFilteringLists runs the local filter over the backing list. add
// rebuilds the visible list from the matches; clearNonMatching drops the
// rest from the backing list.
func (v *View) updateFilteringLists(add, clearNonMatching bool) {
	res := partitionEntries(v.local.unfiltered, v.LocalFilterMatches, v.parentDirVisible(), add, clearNonMatching)
	v.local.unfiltered = res.backing

	if !add {
		return
	}

	v.Entries = res.visible
	v.Filtered = v.local.prefiltered + res.hidden
	v.ensureNotEmpty(res, &v.local.unfiltered)
}

// AcceptLocal makes the current local filter permanent: entries it hides are
// discarded and the text goes to the filter history. Without an active
// session it does nothing.
func (v *View) AcceptLocal() {
	if !v.local.inProgress {
		return
	}

	v.updateFilteringLists(false, true)
	text := v.local.filter.Raw()
	v.finishLocal()

	v.history.Append(text)

	// Some selected entries may have been filtered out.
	v.recountSelected()

	v.log.V(1).Info("local filter accepted", "pattern", text, "entries", len(v.Entries))
	v.scheduler.ScheduleRedraw(v)
}

// CancelLocal abandons the session and puts the view back into the state it
// had before the session started.
func (v *View) CancelLocal() error {
	if !v.local.inProgress {
		return v.misuse("cancel local filter")
	}

	v.local.filter = v.local.saved

	v.Entries = nil
	v.updateFilteringLists(true, true)
	v.restoreSavedCursor()
	v.finishLocal()

	v.log.V(1).Info("local filter cancelled", "pattern", v.local.filter.Raw())
	v.scheduler.ScheduleRedraw(v)
	return nil
}

func (v *View) restoreSavedCursor() {
	idx := v.indexOfID(v.local.savedID)
	if idx < 0 {
		idx = v.indexOfPath(v.local.savedPath)
	}
	if idx >= 0 {
		v.Cursor = idx
	}
	v.TopLine = v.local.savedTop
	v.ensureCursorValid()
}

// finishLocal ends the session and releases everything it owned.
func (v *View) finishLocal() {
	v.local.inProgress = false
	v.local.unfiltered = nil
	v.local.prefiltered = 0
	v.local.saved = filter.Pattern{}
	v.local.savedID = 0
	v.local.savedPath = ""
	v.local.savedTop = 0
	v.local.poshist = nil

	if v.reloadPending {
		v.reloadPending = false
		v.scheduler.ScheduleReload(v, true)
	}
}

// ApplyLocalDirect sets the local filter outside of an edit session, e.g.
// when restoring a view. The caller is notified to reload the listing.
func (v *View) ApplyLocalDirect(text string) error {
	if v.local.inProgress {
		return v.misuse("apply local filter during a session")
	}
	if err := v.local.filter.Change(text, filter.CaseSensitive(text, v.settings.Case)); err != nil {
		return err
	}
	v.history.Append(v.local.filter.Raw())
	v.scheduler.ScheduleReload(v, true)
	return nil
}

// RemoveLocalFilter clears the local filter, remembering its text for
// RestoreLocalFilter.
func (v *View) RemoveLocalFilter() error {
	if v.local.inProgress {
		return v.misuse("remove local filter during a session")
	}
	v.local.prev = v.local.filter.Raw()
	v.local.filter.Clear()
	v.scheduler.ScheduleReload(v, true)
	return nil
}

// RestoreLocalFilter brings back the text removed by RemoveLocalFilter.
func (v *View) RestoreLocalFilter() error {
	if v.local.inProgress {
		return v.misuse("restore local filter during a session")
	}
	prev := v.local.prev
	v.local.prev = ""
	if err := v.local.filter.Change(prev, filter.CaseSensitive(prev, v.settings.Case)); err != nil {
		return err
	}
	v.scheduler.ScheduleReload(v, true)
	return nil
}

// DirectoryChanged drops the local filter when the view leaves a directory.
func (v *View) DirectoryChanged() {
	v.local.filter.Clear()
	v.local.prev = ""
}
