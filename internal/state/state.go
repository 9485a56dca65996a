package state

import (
	"github.com/go-logr/logr"
	fsutil "github.com/kk-code-lab/rfilter/internal/fs"
	"github.com/kk-code-lab/rfilter/internal/filter"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Enumerator produces the full, unfiltered listing of a directory.
type Enumerator interface {
	Enumerate(dir string) ([]FileEntry, error)
	ResolvePath(entry FileEntry) string
	ParentEntry(dir string) FileEntry
}

// Scheduler is notified when the view needs to be redrawn or re-read. The
// engine never renders or reads directories on its own behalf.
type Scheduler interface {
	ScheduleRedraw(v *View)
	ScheduleReload(v *View, keepPosition bool)
	ScheduleFullReload(v *View)
}

// FilterHistory records accepted filter strings.
type FilterHistory interface {
	Append(text string)
}

// Settings are the configuration values the engine consults.
type Settings struct {
	FilterInvertedByDefault bool
	ShowRootParent          bool
	ShowNonRootParent       bool
	HideDotFiles            bool
	Case                    filter.CaseOptions
	// MaxPositionHistory bounds the local filter position history; 0 means
	// unbounded.
	MaxPositionHistory int
}

// ParentDirVisible reports whether ".." is listed for a root or non-root dir.
func (s Settings) ParentDirVisible(isRoot bool) bool {
	if isRoot {
		return s.ShowRootParent
	}
	return s.ShowNonRootParent
}

// Options wires a View to its collaborators.
type Options struct {
	Settings   Settings
	Enumerator Enumerator
	Scheduler  Scheduler
	History    FilterHistory
	Logger     logr.Logger
}

// ===== STATE DEFINITIONS =====

// View is one browsable directory listing together with its filters.
type View struct {
	CurrentPath string
	// Entries is the visible list. It is replaced wholesale every time
	// filters are re-applied.
	Entries []FileEntry
	Cursor  int
	TopLine int
	// Rows is the viewport height used to clamp TopLine; 0 disables clamping.
	Rows int
	// Filtered counts entries of the directory hidden by any filter.
	Filtered     int
	HideDotFiles bool

	Filters FilenameFilters

	local localFilter

	selected      map[string]struct{}
	selectedCount int

	settings      Settings
	enumerator    Enumerator
	scheduler     Scheduler
	history       FilterHistory
	log           logr.Logger
	reloadPending bool
}

// NewView creates a view for path with empty filters. The directory is not
// read until Reload is called.
func NewView(path string, opts Options) *View {
	v := &View{
		CurrentPath:  path,
		HideDotFiles: opts.Settings.HideDotFiles,
		selected:     make(map[string]struct{}),
		settings:     opts.Settings,
		enumerator:   opts.Enumerator,
		scheduler:    opts.Scheduler,
		history:      opts.History,
		log:          opts.Logger,
	}
	if v.enumerator == nil {
		v.enumerator = fsutil.NewDirectoryReader()
	}
	if v.scheduler == nil {
		v.scheduler = noopScheduler{}
	}
	if v.history == nil {
		v.history = noopHistory{}
	}
	if v.log.GetSink() == nil {
		v.log = logr.Discard()
	}
	v.ResetFilters()
	return v
}

// CurrentEntry returns the entry under the cursor.
func (v *View) CurrentEntry() *FileEntry {
	if v.Cursor < 0 || v.Cursor >= len(v.Entries) {
		return nil
	}
	return &v.Entries[v.Cursor]
}

// EntryNames lists the names of the visible entries in order.
func (v *View) EntryNames() []string {
	names := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		names[i] = e.Name
	}
	return names
}

func (v *View) parentDirVisible() bool {
	return v.settings.ParentDirVisible(fsutil.IsRoot(v.CurrentPath))
}

func (v *View) indexOfID(id uint64) int {
	for i := range v.Entries {
		if v.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (v *View) indexOfPath(path string) int {
	if path == "" {
		return -1
	}
	for i := range v.Entries {
		if v.enumerator.ResolvePath(v.Entries[i]) == path {
			return i
		}
	}
	return -1
}

// ensureCursorValid keeps the cursor and scroll offset inside the list.
func (v *View) ensureCursorValid() {
	if v.Cursor >= len(v.Entries) {
		v.Cursor = len(v.Entries) - 1
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	v.TopLine = v.clampTopLine(v.TopLine)
}

func (v *View) clampTopLine(top int) int {
	if top > v.Cursor {
		top = v.Cursor
	}
	if v.Rows > 0 {
		if minTop := v.Cursor - v.Rows + 1; top < minTop {
			top = minTop
		}
		if maxTop := len(v.Entries) - v.Rows; top > maxTop {
			top = maxTop
		}
	}
	if top < 0 {
		top = 0
	}
	return top
}

type noopScheduler struct{}

func (noopScheduler) ScheduleRedraw(*View)       {}
func (noopScheduler) ScheduleReload(*View, bool) {}
func (noopScheduler) ScheduleFullReload(*View)   {}

type noopHistory struct{}

func (noopHistory) Append(string) {}
