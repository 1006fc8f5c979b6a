package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/snipper-cli/internal/logger"
)

// Watcher triggers a callback when anything changes beneath a set of
// root directories. Events are coalesced: however many files change in
// a burst, the callback runs at most once per limiter interval.
type Watcher struct {
	limiter *rate.Limiter
}

// NewWatcher creates a watcher that fires at most once per minInterval.
func NewWatcher(minInterval time.Duration) *Watcher {
	return &Watcher{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Watch blocks until ctx is cancelled, invoking onChange after every
// burst of events under any of the roots. Newly created directories
// are added to the watch set as they appear.
func (w *Watcher) Watch(ctx context.Context, roots []string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, root := range roots {
		if err := addTree(fsw, root); err != nil {
			return err
		}
	}

	// dirty marks pending events between limiter windows; the ticker
	// flushes them once the limiter allows.
	dirty := false
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event: %s", event)
			if event.Op.Has(fsnotify.Create) {
				// A new directory needs watching too. Errors are
				// tolerated; the entry may already be gone.
				if err := addTree(fsw, event.Name); err != nil {
					logger.Warn("watch %s: %v", event.Name, err)
				}
			}
			dirty = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-ticker.C:
			if dirty && w.limiter.Allow() {
				dirty = false
				onChange()
			}
		}
	}
}

// addTree registers path and, if it is a directory, all directories
// beneath it.
func addTree(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(p); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
		}
		return nil
	})
}
