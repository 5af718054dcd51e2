package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// Watcher reports snippet changes under a set of roots using fsnotify.
// Every non-hidden directory is registered, including ones created later.
type Watcher struct {
	config domain.ScanConfig
}

// NewWatcher creates a watcher applying the same filters as the scanner.
func NewWatcher(cfg domain.ScanConfig) *Watcher {
	return &Watcher{config: cfg}
}

// Watch registers every directory under roots and streams relevant changes.
// The returned channel is closed when ctx is done or fsnotify fails.
func (w *Watcher) Watch(ctx context.Context, roots []string) (<-chan domain.ChangeEvent, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Unreadable roots are skipped like the catalog skips them.
	var failed []error
	for _, root := range roots {
		if err := addTree(fsw, root); err != nil {
			logger.Warn("cannot watch root", "root", root, "err", err)
			failed = append(failed, fmt.Errorf("watching %s: %w", root, err))
		}
	}
	if len(failed) == len(roots) {
		fsw.Close()
		return nil, fmt.Errorf("%w: no root could be watched: %w", domain.ErrRootUnreadable, errors.Join(failed...))
	}

	changes := make(chan domain.ChangeEvent, 64)
	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				change := w.handleFsEvent(event)
				if change == nil {
					continue
				}
				if change.Type == domain.ChangeCreated && isDir(change.Path) {
					if err := addTree(fsw, change.Path); err != nil {
						logger.Warn("cannot watch directory", "path", change.Path, "err", err)
					}
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "err", err)
			}
		}
	}()

	return changes, nil
}

// handleFsEvent converts an fsnotify event into a change, or nil when the
// event cannot affect the catalog.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *domain.ChangeEvent {
	name := filepath.Base(event.Name)
	if isHidden(name) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// The path is gone, so a directory can only be told apart by its
		// lack of extension.
		if ext := filepath.Ext(name); ext != "" && !w.accepts(name) {
			return nil
		}
		return &domain.ChangeEvent{Type: domain.ChangeDeleted, Path: event.Name}
	case event.Has(fsnotify.Create):
		if isDir(event.Name) || w.accepts(name) {
			return &domain.ChangeEvent{Type: domain.ChangeCreated, Path: event.Name}
		}
	case event.Has(fsnotify.Write):
		if w.accepts(name) {
			return &domain.ChangeEvent{Type: domain.ChangeUpdated, Path: event.Name}
		}
	}
	return nil
}

func (w *Watcher) accepts(name string) bool {
	return w.config.Supports(filepath.Ext(name)) && !w.config.Excludes(name)
}

// addTree registers root and every non-hidden directory below it.
func addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // unreadable subdirectories are skipped
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
