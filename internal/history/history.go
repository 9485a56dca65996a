// Package history keeps the accepted filter strings across runs.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

type document struct {
	Filters []string `yaml:"filters"`
}

// History is a bounded, most-recent-first list of filter strings. An entry
// appended again moves to the front instead of being duplicated.
type History struct {
	mu    sync.Mutex
	path  string
	limit int
	items []string
	log   logr.Logger
}

// Open loads the history stored at path. A missing file yields an empty
// history; limit 0 disables recording. An empty path keeps the history in
// memory only.
func Open(path string, limit int, log logr.Logger) (*History, error) {
	h := &History{path: path, limit: limit, log: log}
	if path == "" {
		return h, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("error reading filter history: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing filter history %s: %w", path, err)
	}
	for i := len(doc.Filters) - 1; i >= 0; i-- {
		h.push(doc.Filters[i])
	}
	return h, nil
}

// Append records text as the most recent filter and persists the history.
// Persistence failures are logged; the in-memory list is still updated.
func (h *History) Append(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if text == "" || h.limit == 0 {
		return
	}
	h.push(text)

	if err := h.save(); err != nil {
		h.log.Error(err, "cannot save filter history", "path", h.path)
	}
}

// Items returns the history, most recent first.
func (h *History) Items() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.items)
}

func (h *History) push(text string) {
	if text == "" {
		return
	}
	if i := slices.Index(h.items, text); i >= 0 {
		h.items = slices.Delete(h.items, i, i+1)
	}
	h.items = slices.Insert(h.items, 0, text)
	if h.limit > 0 && len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
}

func (h *History) save() error {
	if h.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := yaml.Marshal(document{Filters: h.items})
	if err != nil {
		return fmt.Errorf("failed to marshal filter history: %w", err)
	}

	// Replace the file atomically.
	tmp, err := os.CreateTemp(filepath.Dir(h.path), ".history-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
