// Package filesystem discovers snippet files on local disk.
//
// It provides the root path resolver, the concurrent tree scanner and an
// fsnotify based change watcher.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.TreeScanner = (*Scanner)(nil)

// Scanner walks a root directory concurrently and loads every snippet file.
// A Scanner holds no state between scans and is safe for concurrent use.
type Scanner struct {
	loader driven.DocumentLoader
	config domain.ScanConfig
}

// NewScanner creates a scanner that loads files with loader.
func NewScanner(loader driven.DocumentLoader, cfg domain.ScanConfig) *Scanner {
	return &Scanner{
		loader: loader,
		config: cfg,
	}
}

// collector accumulates results from concurrent tasks.
type collector struct {
	mu   sync.Mutex
	docs []domain.Document
	errs []domain.FileError
}

func (c *collector) addDocument(doc domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
}

func (c *collector) addError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, domain.FileError{Path: path, Err: err})
}

// scan is the state of a single Scan call.
type scan struct {
	id        string
	root      string
	group     errgroup.Group
	openFiles *semaphore.Weighted
	results   collector
}

// Scan walks root and loads every supported, non-excluded, non-hidden file.
// Subdirectories and files at each level are processed concurrently and the
// call returns once the whole subtree is done. Only failing to enumerate
// root itself is an error; everything below is recorded in the result.
// The scan runs to completion even if ctx is cancelled.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRootUnreadable, root, err)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRootUnreadable, err)
	}

	run := &scan{
		id:        uuid.NewString(),
		root:      absRoot,
		openFiles: semaphore.NewWeighted(int64(s.config.MaxOpenFiles())),
	}
	logger.Debug("scan started", "scan", run.id, "root", absRoot)

	ctx = context.WithoutCancel(ctx)
	s.dispatch(ctx, run, absRoot, entries)
	_ = run.group.Wait() // tasks record failures instead of returning them

	result := &domain.ScanResult{
		ScanID:    run.id,
		Root:      absRoot,
		Documents: run.results.docs,
		Errors:    run.results.errs,
	}
	if result.Documents == nil {
		result.Documents = []domain.Document{}
	}
	if result.Errors == nil {
		result.Errors = []domain.FileError{}
	}

	logger.Info("scan finished", "scan", run.id, "root", absRoot,
		"documents", len(result.Documents), "errors", len(result.Errors))
	return result, nil
}

// dispatch launches one task per relevant entry of dir.
func (s *Scanner) dispatch(ctx context.Context, run *scan, dir string, entries []fs.DirEntry) {
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if entry.IsDir() {
			run.group.Go(func() error {
				s.walkDir(ctx, run, path)
				return nil
			})
			continue
		}

		if !s.accepts(name) {
			continue
		}
		run.group.Go(func() error {
			s.loadFile(ctx, run, path)
			return nil
		})
	}
}

func (s *Scanner) walkDir(ctx context.Context, run *scan, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("cannot read directory", "scan", run.id, "path", dir, "err", err)
		run.results.addError(dir, err)
	}
	// os.ReadDir returns the entries it read before failing.
	s.dispatch(ctx, run, dir, entries)
}

func (s *Scanner) loadFile(ctx context.Context, run *scan, path string) {
	if err := run.openFiles.Acquire(ctx, 1); err != nil {
		run.results.addError(path, err)
		return
	}
	defer run.openFiles.Release(1)

	rel, err := filepath.Rel(run.root, path)
	if err != nil {
		run.results.addError(path, err)
		return
	}

	doc, err := s.loader.Load(ctx, rel, path)
	if err != nil {
		logger.Warn("cannot load snippet", "scan", run.id, "path", path, "err", err)
		run.results.addError(path, err)
		return
	}
	doc.Root = run.root
	logger.Debug("loaded snippet", "scan", run.id, "path", rel, "id", doc.ID)
	run.results.addDocument(doc)
}

// accepts reports whether a non-directory entry should be loaded.
func (s *Scanner) accepts(name string) bool {
	return s.config.Supports(filepath.Ext(name)) && !s.config.Excludes(name)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
