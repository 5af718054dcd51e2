package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
	"github.com/custodia-labs/snipsurf/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithResolver sets the function that turns configured roots into
// absolute paths. The default only trims whitespace.
func WithResolver(resolve func(string) string) CatalogOption {
	return func(s *CatalogService) {
		if resolve != nil {
			s.resolve = resolve
		}
	}
}

// CatalogService scans the configured roots and serves the resulting
// snapshot from a DocumentStore.
type CatalogService struct {
	scanner driven.TreeScanner
	store   driven.DocumentStore
	resolve func(string) string
	roots   []string

	// Serialises reloads so snapshots never interleave.
	mu sync.Mutex
}

// NewCatalogService creates a catalog over roots. Roots are resolved once
// and duplicates after resolution are dropped, keeping the first.
func NewCatalogService(
	scanner driven.TreeScanner,
	store driven.DocumentStore,
	roots []string,
	opts ...CatalogOption,
) *CatalogService {
	s := &CatalogService{
		scanner: scanner,
		store:   store,
		resolve: strings.TrimSpace,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.roots = s.resolveRoots(roots)
	return s
}

func (s *CatalogService) resolveRoots(roots []string) []string {
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		resolved := s.resolve(root)
		if resolved == "" || slices.Contains(out, resolved) {
			continue
		}
		out = append(out, resolved)
	}
	return out
}

// Roots returns the resolved root directories in configuration order.
func (s *CatalogService) Roots() []string {
	return slices.Clone(s.roots)
}

// Reload scans every root concurrently and replaces the stored snapshot.
// Roots that cannot be enumerated are reported in Catalog.Errors; Reload
// fails only when all of them fail.
func (s *CatalogService) Reload(ctx context.Context) (*domain.Catalog, error) {
	if len(s.roots) == 0 {
		return nil, domain.ErrNoRoots
	}
	if s.scanner == nil || s.store == nil {
		return nil, fmt.Errorf("catalog: %w: scanner and store are required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Catalog Reload")

	results := make([]*domain.ScanResult, len(s.roots))
	failures := make([]error, len(s.roots))

	var g errgroup.Group
	for i, root := range s.roots {
		g.Go(func() error {
			res, err := s.scanner.Scan(ctx, root)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	catalog := &domain.Catalog{
		Roots:     slices.Clone(s.roots),
		Documents: []domain.Document{},
		Errors:    []domain.FileError{},
	}

	var failed []error
	for i, root := range s.roots {
		if err := failures[i]; err != nil {
			if !errors.Is(err, domain.ErrRootUnreadable) {
				err = fmt.Errorf("%w: %w", domain.ErrRootUnreadable, err)
			}
			logger.Warn("skipping root", "root", root, "err", err)
			catalog.Errors = append(catalog.Errors, domain.FileError{Path: root, Err: err})
			failed = append(failed, err)
			continue
		}
		catalog.Documents = append(catalog.Documents, results[i].Documents...)
		catalog.Errors = append(catalog.Errors, results[i].Errors...)
	}
	if len(failed) == len(s.roots) {
		return nil, fmt.Errorf("reload: %w", errors.Join(failed...))
	}

	if err := s.store.ReplaceAll(ctx, catalog.Documents); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	logger.Info("catalog reloaded",
		"roots", len(s.roots),
		"documents", len(catalog.Documents),
		"errors", len(catalog.Errors))
	return catalog, nil
}

// List returns stored documents matching filter, ordered by title.
// See domain.ParseFilter for the filter syntax.
func (s *CatalogService) List(ctx context.Context, filter string) ([]domain.Document, error) {
	if s.store == nil {
		return nil, fmt.Errorf("catalog: %w: store is required", domain.ErrInvalidInput)
	}
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterDocuments(docs, domain.ParseFilter(filter)), nil
}

// Get retrieves a stored document by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Document, error) {
	if s.store == nil {
		return nil, fmt.Errorf("catalog: %w: store is required", domain.ErrInvalidInput)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}
	return s.store.GetDocument(ctx, id)
}
