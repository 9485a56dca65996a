package app

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	statepkg "github.com/kk-code-lab/rfilter/internal/state"
	inputui "github.com/kk-code-lab/rfilter/internal/ui/input"
	renderui "github.com/kk-code-lab/rfilter/internal/ui/render"
	"github.com/kk-code-lab/rfilter/internal/watch"
)

// Options configure a new Application.
type Options struct {
	// Path is the directory to open; empty means the working directory.
	Path     string
	Settings statepkg.Settings
	History  statepkg.FilterHistory
	Logger   logr.Logger
	// Watch reloads the listing when the directory changes on disk.
	Watch bool
	// ManualFilter is applied before the first render; Invert flips it.
	ManualFilter string
	Invert       bool
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
	watcher    *watch.Watcher
	log        logr.Logger
	finiOnce   sync.Once
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.fini()
	return err
}

// fini releases the terminal; Run and Close may both get here.
func (app *Application) fini() {
	app.finiOnce.Do(app.screen.Fini)
}

// CurrentPath returns the directory shown when the app stopped.
func (app *Application) CurrentPath() string {
	return app.state.View.CurrentPath
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}

// NewApplication opens the terminal and loads the starting directory.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, opts Options) (*Application, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	path := opts.Path
	if path == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		path = cwd
	}

	actionCh := make(chan statepkg.Action, 10)
	dispatch := func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	}

	view := statepkg.NewView(path, statepkg.Options{
		Settings:  opts.Settings,
		Scheduler: actionScheduler{dispatch: dispatch},
		History:   opts.History,
		Logger:    log.WithName("view"),
	})

	w, h := screen.Size()
	state := &statepkg.AppState{
		View:         view,
		ScreenWidth:  w,
		ScreenHeight: h,
	}
	view.Rows = state.ListRows()

	if opts.ManualFilter != "" {
		invert := opts.Settings.FilterInvertedByDefault != opts.Invert
		if err := view.SetManualFilter(opts.ManualFilter, invert); err != nil {
			return nil, fmt.Errorf("initial filter: %w", err)
		}
	} else if err := view.Reload(false); err != nil {
		return nil, err
	}

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		log:      log,
	}
	app.input.SetState(state)

	if opts.Watch {
		watcher, err := watch.New(func(dir string) {
			dispatch(statepkg.ReloadAction{KeepPosition: true, Path: dir})
		}, watch.DefaultDebounce, log.WithName("watch"))
		if err != nil {
			// The browser works without live updates.
			log.Error(err, "directory watching disabled")
		} else {
			app.watcher = watcher
			app.syncWatcher()
		}
	}

	log.Info("started", "path", path, "watch", app.watcher != nil)
	return app, nil
}

// syncWatcher points the watcher at the directory the view shows.
func (app *Application) syncWatcher() {
	if app.watcher == nil {
		return
	}
	dir := app.state.View.CurrentPath
	if app.watcher.Dir() == dir {
		return
	}
	if err := app.watcher.Watch(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		app.log.Error(err, "cannot watch directory", "path", dir)
	}
}
