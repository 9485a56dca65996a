package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type NavigatePageUpAction struct{}
type NavigatePageDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== LOCAL FILTER ACTIONS =====

type LocalFilterStartAction struct{}
type LocalFilterCharAction struct {
	Char rune
}
type LocalFilterBackspaceAction struct{}
type LocalFilterAcceptAction struct{}
type LocalFilterCancelAction struct{}
type LocalFilterRemoveAction struct{}
type LocalFilterRestoreAction struct{}

// ===== NAME FILTER ACTIONS =====

type ManualFilterStartAction struct{}
type ManualFilterCharAction struct {
	Char rune
}
type ManualFilterBackspaceAction struct{}
type ManualFilterCommitAction struct{}
type ManualFilterAbortAction struct{}
type ToggleInversionAction struct{}
type FilterSelectedAction struct{}
type RemoveFilenameFilterAction struct{}
type RestoreFilenameFilterAction struct{}

// ===== VIEW ACTIONS =====

type ToggleSelectionAction struct{}
type ClearSelectionAction struct{}
type ToggleHiddenFilesAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ReloadAction re-reads the current directory; emitted by the scheduler and
// the directory watcher. A non-empty Path limits the reload to a view still
// showing that directory.
type ReloadAction struct {
	KeepPosition bool
	Path         string
}

// RedrawAction only requests a render.
type RedrawAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction stops the process and hands the terminal back to the shell.
type SuspendAction struct{}
