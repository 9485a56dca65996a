package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfilter/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.InputMode {
	if ih.state == nil {
		return statepkg.ModeNormal
	}
	return ih.state.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ih.mode() {
	case statepkg.ModeLocalFilter:
		ih.processLocalFilterKey(ev)
		return true
	case statepkg.ModeManualFilter:
		ih.processManualFilterKey(ev)
		return true
	}
	return ih.processNormalKey(ev)
}

// processLocalFilterKey edits the local filter prompt; every change is
// applied to the listing immediately.
func (ih *InputHandler) processLocalFilterKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- statepkg.LocalFilterCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.LocalFilterAcceptAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.LocalFilterBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.LocalFilterCharAction{Char: ev.Rune()}
	}
}

// processManualFilterKey edits the manual filter prompt, which is only
// applied on Enter.
func (ih *InputHandler) processManualFilterKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- statepkg.ManualFilterAbortAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ManualFilterCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.ManualFilterBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.ManualFilterCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.ClearSelectionAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		ih.actionChan <- statepkg.NavigatePageUpAction{}
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		ih.actionChan <- statepkg.NavigatePageDownAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
	case tcell.KeyCtrlL:
		ih.actionChan <- statepkg.RedrawAction{}
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyRune:
		return ih.processNormalRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processNormalRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'l':
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case 'h':
		ih.actionChan <- statepkg.GoUpAction{}
	case ' ':
		ih.actionChan <- statepkg.ToggleSelectionAction{}
	case '.':
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
	case 'r':
		ih.actionChan <- statepkg.ReloadAction{KeepPosition: true}

	case '=':
		ih.actionChan <- statepkg.LocalFilterStartAction{}
	case 'x':
		ih.actionChan <- statepkg.LocalFilterRemoveAction{}
	case 'X':
		ih.actionChan <- statepkg.LocalFilterRestoreAction{}

	case ':':
		ih.actionChan <- statepkg.ManualFilterStartAction{}
	case 'I':
		ih.actionChan <- statepkg.ToggleInversionAction{}
	case 'F':
		ih.actionChan <- statepkg.FilterSelectedAction{}
	case 'R':
		ih.actionChan <- statepkg.RemoveFilenameFilterAction{}
	case 'U':
		ih.actionChan <- statepkg.RestoreFilenameFilterAction{}
	}
	return true
}
