package state

import (
	"strings"
	"unicode/utf8"
)

// InputMode selects how key presses are interpreted.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeLocalFilter
	ModeManualFilter
)

// chromeRows is the number of screen rows not used by the listing: the path
// header, the prompt line and the status line.
const chromeRows = 3

// invertPrefix on the manual filter prompt flips the configured default.
const invertPrefix = "!"

// AppState is the single source of truth
type AppState struct {
	View *View

	Mode   InputMode
	Prompt string

	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error
	Quit      bool
}

// ListRows is the number of listing rows that fit on screen.
func (s *AppState) ListRows() int {
	rows := s.ScreenHeight - chromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	v := state.View

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		v.MoveCursor(1)
		return state, nil

	case NavigateUpAction:
		v.MoveCursor(-1)
		return state, nil

	case NavigatePageDownAction:
		v.MoveCursor(state.ListRows())
		return state, nil

	case NavigatePageUpAction:
		v.MoveCursor(-state.ListRows())
		return state, nil

	case EnterDirectoryAction:
		return state, v.EnterCurrent()

	case GoUpAction:
		return state, v.GoUp()

	// ===== LOCAL FILTER =====

	case LocalFilterStartAction:
		state.Mode = ModeLocalFilter
		state.Prompt = v.LocalFilterText()
		state.LastError = nil
		return state, nil

	case LocalFilterCharAction:
		if state.Mode != ModeLocalFilter {
			return state, nil
		}
		state.Prompt += string(a.Char)
		return state, r.applyLocalPrompt(state)

	case LocalFilterBackspaceAction:
		if state.Mode != ModeLocalFilter {
			return state, nil
		}
		if state.Prompt == "" {
			return r.Reduce(state, LocalFilterCancelAction{})
		}
		state.Prompt = trimLastRune(state.Prompt)
		return state, r.applyLocalPrompt(state)

	case LocalFilterAcceptAction:
		state.Mode = ModeNormal
		state.Prompt = ""
		v.AcceptLocal()
		return state, nil

	case LocalFilterCancelAction:
		state.Mode = ModeNormal
		state.Prompt = ""
		state.LastError = nil
		if !v.LocalFilterInProgress() {
			return state, nil
		}
		return state, v.CancelLocal()

	case LocalFilterRemoveAction:
		return state, v.RemoveLocalFilter()

	case LocalFilterRestoreAction:
		return state, v.RestoreLocalFilter()

	// ===== NAME FILTERS =====

	case ManualFilterStartAction:
		state.Mode = ModeManualFilter
		state.Prompt = v.Filters.Manual.Raw()
		if v.Filters.Manual.Raw() != "" && v.Filters.Invert != v.settings.FilterInvertedByDefault {
			state.Prompt = invertPrefix + state.Prompt
		}
		state.LastError = nil
		return state, nil

	case ManualFilterCharAction:
		if state.Mode == ModeManualFilter {
			state.Prompt += string(a.Char)
		}
		return state, nil

	case ManualFilterBackspaceAction:
		if state.Mode == ModeManualFilter {
			state.Prompt = trimLastRune(state.Prompt)
		}
		return state, nil

	case ManualFilterCommitAction:
		if state.Mode != ModeManualFilter {
			return state, nil
		}
		text, invert := parseManualPrompt(state.Prompt, v.settings.FilterInvertedByDefault)
		if err := v.SetManualFilter(text, invert); err != nil {
			// Stay in the prompt so the pattern can be fixed.
			return state, err
		}
		state.Mode = ModeNormal
		state.Prompt = ""
		return state, nil

	case ManualFilterAbortAction:
		state.Mode = ModeNormal
		state.Prompt = ""
		state.LastError = nil
		return state, nil

	case ToggleInversionAction:
		return state, v.ToggleInversion()

	case FilterSelectedAction:
		return state, v.FilterSelected()

	case RemoveFilenameFilterAction:
		v.RemoveFilenameFilter()
		return state, nil

	case RestoreFilenameFilterAction:
		v.RestoreFilenameFilter()
		return state, nil

	// ===== VIEW =====

	case ToggleSelectionAction:
		v.ToggleSelection()
		return state, nil

	case ClearSelectionAction:
		v.ClearSelection()
		return state, nil

	case ToggleHiddenFilesAction:
		v.ToggleDotFiles()
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		v.Rows = state.ListRows()
		v.ensureCursorValid()
		return state, nil

	case ReloadAction:
		if a.Path != "" && a.Path != v.CurrentPath {
			return state, nil
		}
		return state, v.Reload(a.KeepPosition)

	case RedrawAction:
		return state, nil

	case QuitAction:
		state.Quit = true
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) applyLocalPrompt(state *AppState) error {
	if err := state.View.ApplyLocal(state.Prompt); err != nil {
		// Keep typing: the pattern may become valid with the next key.
		state.LastError = err
		return nil
	}
	state.LastError = nil
	return nil
}

// parseManualPrompt splits the optional invert prefix from the pattern.
func parseManualPrompt(prompt string, invertedByDefault bool) (string, bool) {
	if text, ok := strings.CutPrefix(prompt, invertPrefix); ok {
		return text, !invertedByDefault
	}
	return prompt, invertedByDefault
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
