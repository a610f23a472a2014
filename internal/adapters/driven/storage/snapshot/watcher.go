package snapshot

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/logger"
)

// Watcher reloads the snapshot file when it changes on disk and hands
// the fresh document set to a callback. Used by the serve path to keep
// a long-running server in sync with an externally regenerated corpus.
type Watcher struct {
	path     string
	onReload func([]domain.Document)
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the snapshot at path. onReload is
// invoked with the freshly loaded documents after each successful
// reload; failed reloads are logged and skipped.
func NewWatcher(path string, onReload func([]domain.Document)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fsw.Add(path); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	return &Watcher{
		path:     path,
		onReload: onReload,
		fsw:      fsw,
	}, nil
}

// Run blocks, processing file events until the context is cancelled or
// the underlying watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			docs, err := Load(w.path)
			if err != nil {
				logger.Warn("snapshot reload failed: %v", err)
				continue
			}
			logger.Info("snapshot reloaded: %d documents", len(docs))
			w.onReload(docs)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("snapshot watch error: %v", err)
		}
	}
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
