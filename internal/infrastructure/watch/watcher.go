package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StoreWatcher watches the task store directory and fires a debounced
// callback whenever the tasks file changes.
type StoreWatcher struct {
	watcher   *fsnotify.Watcher
	storeDir  string
	tasksFile string
	debounce  time.Duration
	onChange  func()
}

// NewStoreWatcher creates a watcher for the given store directory. Only
// events touching tasksFile trigger the callback.
func NewStoreWatcher(storeDir, tasksFile string, debounce time.Duration, onChange func()) (*StoreWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &StoreWatcher{
		watcher:   w,
		storeDir:  storeDir,
		tasksFile: tasksFile,
		debounce:  debounce,
		onChange:  onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *StoreWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which would orphan a file-level watch.
	if err := w.watcher.Add(w.storeDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.storeDir, err)
	}

	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange()
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isRelevant(event) {
				continue
			}
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (w *StoreWatcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.tasksFile {
		return false
	}
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}
