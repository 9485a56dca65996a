package state

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/rfilter/internal/filter"
)

// ErrSessionMisuse reports a local filter operation issued in the wrong state.
var ErrSessionMisuse = errors.New("local filter session misuse")

// defaultCaseSensitive is used for filters built programmatically from names.
const defaultCaseSensitive = true

// filenameFilterSet is one complete value of the name filters.
type filenameFilterSet struct {
	auto   filter.Pattern
	manual filter.Pattern
	invert bool
}

// FilenameFilters holds the automatic and manual name filters together with
// a saved copy used to undo RemoveFilenameFilter.
type FilenameFilters struct {
	// Auto always hides what it matches.
	Auto filter.Pattern
	// Manual shows what it matches, or hides it when Invert is set.
	Manual filter.Pattern
	Invert bool

	saved filenameFilterSet
}

func (f *FilenameFilters) current() filenameFilterSet {
	return filenameFilterSet{auto: f.Auto, manual: f.Manual, invert: f.Invert}
}

// snapshot copies the live filters into the saved slot.
func (f *FilenameFilters) snapshot() {
	f.saved = f.current()
}

// restore copies the saved slot back into the live filters. Patterns are
// stored compiled, so restoring cannot fail.
func (f *FilenameFilters) restore() {
	f.Auto = f.saved.auto
	f.Manual = f.saved.manual
	f.Invert = f.saved.invert
}

// clear empties both patterns and sets Invert.
func (f *FilenameFilters) clear(invert bool) {
	f.Auto.Clear()
	f.Manual.Clear()
	f.Invert = invert
}

// reset empties both the live and the saved filters.
func (f *FilenameFilters) reset(invert bool) {
	*f = FilenameFilters{
		Auto:   filter.New(defaultCaseSensitive),
		Manual: filter.New(defaultCaseSensitive),
		Invert: invert,
	}
	f.saved = f.current()
}

// IsEmpty reports whether neither name filter hides anything.
func (f *FilenameFilters) IsEmpty() bool {
	return f.Auto.IsEmpty() && f.Manual.IsEmpty()
}

// SavedManual returns the manual filter text held in the saved slot.
func (f *FilenameFilters) SavedManual() string {
	return f.saved.manual.Raw()
}

// ResetFilters puts every filter of the view back to its initial state.
func (v *View) ResetFilters() {
	v.Filters.reset(v.settings.FilterInvertedByDefault)
	v.local = localFilter{filter: filter.New(defaultCaseSensitive)}
}

// IsVisible decides whether entry passes the view's filters. The auto and
// local filters are hard excludes evaluated before the invertible manual
// filter; the order matters.
func (v *View) IsVisible(entry FileEntry) bool {
	name := entry.MatchName()

	if !v.Filters.Auto.IsEmpty() && v.Filters.Auto.Matches(name) {
		return false
	}

	if !v.local.filter.Matches(name) {
		return false
	}

	if v.Filters.Manual.IsEmpty() {
		return true
	}

	return v.Filters.Manual.Matches(name) != v.Filters.Invert
}

// LocalFilterMatches reports whether entry passes the local filter alone.
func (v *View) LocalFilterMatches(entry FileEntry) bool {
	return v.local.filter.Matches(entry.MatchName())
}

// FilenameFilterIsEmpty reports whether both auto and manual filters are empty.
func (v *View) FilenameFilterIsEmpty() bool {
	return v.Filters.IsEmpty()
}

// LocalFilterText returns the current local filter text.
func (v *View) LocalFilterText() string {
	return v.local.filter.Raw()
}

// LocalFilterInProgress reports whether a local filter session is active.
func (v *View) LocalFilterInProgress() bool {
	return v.local.inProgress
}

func (v *View) misuse(op string) error {
	err := fmt.Errorf("%s: %w", op, ErrSessionMisuse)
	v.log.Error(err, "local filter contract violated", "path", v.CurrentPath)
	if assertSessionContract {
		panic(err)
	}
	return err
}
