package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfilter/internal/state"
)

func (app *Application) Run() {
	defer app.fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.V(1).Info("action failed", "action", fmt.Sprintf("%T", action), "error", err.Error())
	} else if app.state.Mode == statepkg.ModeNormal {
		// Prompt modes keep their own error until the pattern is fixed.
		app.clearStaleError(action)
	}
	app.syncWatcher()
	return true
}

// clearStaleError drops the previous error once the user does something
// else. Background reloads and redraws leave it on screen.
func (app *Application) clearStaleError(action statepkg.Action) {
	switch action.(type) {
	case statepkg.ReloadAction, statepkg.RedrawAction:
		return
	}
	app.state.LastError = nil
}
