package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/bakehouse/internal/logger"
)

// defaultDebounce collapses the burst of events editors emit for one save.
const defaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a single configuration file.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path), debounce: defaultDebounce}
}

// Run calls onChange after the file is written, created or replaced.
// The parent directory is watched so atomic renames are seen.
// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			logger.Debug("config file changed", "path", w.path)
			onChange()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}

// relevant reports whether event may have changed the file contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
