package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// DefaultDebounce collapses bursts of events (e.g. an unpacked archive)
// into a single reload.
const DefaultDebounce = 150 * time.Millisecond

// listingOps are the operations that change the names in a directory.
const listingOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to the entries of one directory at a time.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	notify    func(dir string)
	debounce  time.Duration
	log       logr.Logger

	mutex sync.Mutex
	dir   string
	timer *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// New starts a watcher that calls notify, from its own goroutine, once a
// burst of changes in the watched directory has settled.
func New(notify func(dir string), debounce time.Duration, log logr.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		notify:    notify,
		debounce:  debounce,
		log:       log,
		done:      make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch switches the watcher to dir, dropping the previous directory.
func (w *Watcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			w.log.V(1).Info("cannot stop watching directory", "directory", w.dir, "error", err.Error())
		}
	}
	w.stopTimerLocked()
	w.dir = ""

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir
	w.log.V(1).Info("watching directory", "directory", dir)
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dir
}

// Close stops the watcher. No notification is delivered after it returns.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()

	w.mutex.Lock()
	w.stopTimerLocked()
	w.dir = ""
	w.mutex.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&listingOps == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "fsnotify watcher error")

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == "" {
		return
	}
	dir := w.dir
	w.stopTimerLocked()
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if w.Dir() != dir {
			return
		}
		w.notify(dir)
	})
}

func (w *Watcher) stopTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
