package state

import (
	"github.com/kk-code-lab/rfilter/internal/filter"
)

// SetManualFilter replaces the manual filter and its invert flag and reloads
// the listing. An invalid pattern leaves the filters untouched.
func (v *View) SetManualFilter(text string, invert bool) error {
	next := v.Filters.Manual
	if err := next.Change(text, filter.CaseSensitive(text, v.settings.Case)); err != nil {
		v.log.V(1).Info("manual filter rejected", "pattern", text, "error", err.Error())
		return err
	}

	v.Filters.Manual = next
	v.Filters.Invert = invert
	return v.Reload(true)
}

// ToggleInversion flips the meaning of the manual filter. The listing is
// re-read and the cursor goes to the first row.
func (v *View) ToggleInversion() error {
	v.Filters.Invert = !v.Filters.Invert
	if err := v.Reload(false); err != nil {
		return err
	}
	v.Cursor = 0
	v.TopLine = 0
	return nil
}

// FilterSelected hides the selected entries (or the current one) by adding
// them to the auto filter and removes them from the visible list in place.
func (v *View) FilterSelected() error {
	if v.local.inProgress {
		return v.misuse("filter selected entries during a local filter session")
	}

	targets := v.selectedOrCurrent()
	if len(targets) == 0 {
		return nil
	}

	names := filter.New(defaultCaseSensitive)
	for _, e := range targets {
		name := e.MatchName()
		if err := v.Filters.Auto.Append(name); err != nil {
			v.log.Error(err, "cannot extend auto filter", "name", name)
		}
		if err := names.Append(name); err != nil {
			v.log.Error(err, "cannot build selection filter", "name", name)
		}
	}

	notNewlyFiltered := func(e FileEntry) bool {
		return !names.Matches(e.MatchName())
	}

	res := partitionEntries(v.Entries, notNewlyFiltered, true, false, true)
	v.Entries = res.backing
	removed := res.hidden
	v.Filtered += removed

	v.ensureNotEmpty(res, nil)
	v.ensureCursorValid()
	v.recountSelected()

	v.log.V(1).Info("filtered selected entries", "count", len(targets), "removed", removed)
	v.scheduler.ScheduleRedraw(v)
	return nil
}

// RemoveFilenameFilter clears the auto and manual filters, keeping a copy
// for RestoreFilenameFilter. It does nothing when both are already empty.
func (v *View) RemoveFilenameFilter() {
	if v.Filters.IsEmpty() {
		return
	}

	v.Filters.snapshot()
	v.Filters.clear(v.settings.FilterInvertedByDefault)

	v.scheduler.ScheduleFullReload(v)
}

// RestoreFilenameFilter undoes the last RemoveFilenameFilter. With nothing
// saved it restores empty filters.
func (v *View) RestoreFilenameFilter() {
	v.Filters.restore()
	v.scheduler.ScheduleFullReload(v)
}
