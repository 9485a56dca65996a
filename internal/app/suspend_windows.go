//go:build windows

package app

// Ctrl-Z has nothing to stop on Windows.
func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
