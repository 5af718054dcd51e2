package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var errBoom = errors.New("boom")

// mockScanner returns canned results per root.
type mockScanner struct {
	mu      sync.Mutex
	results map[string]*domain.ScanResult
	errs    map[string]error
	calls   []string
}

func newMockScanner() *mockScanner {
	return &mockScanner{
		results: make(map[string]*domain.ScanResult),
		errs:    make(map[string]error),
	}
}

func (m *mockScanner) withDocs(root string, docs ...domain.Document) *mockScanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range docs {
		docs[i].Root = root
	}
	m.results[root] = &domain.ScanResult{Root: root, Documents: docs, Errors: []domain.FileError{}}
	return m
}

func (m *mockScanner) Scan(_ context.Context, root string) (*domain.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, root)
	if err, ok := m.errs[root]; ok {
		return nil, err
	}
	if res, ok := m.results[root]; ok {
		return res, nil
	}
	return &domain.ScanResult{Root: root, Documents: []domain.Document{}, Errors: []domain.FileError{}}, nil
}

func (m *mockScanner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// failingStore fails every write.
type failingStore struct{}

func (failingStore) ReplaceAll(context.Context, []domain.Document) error { return errBoom }

func (failingStore) GetDocument(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (failingStore) ListDocuments(context.Context) ([]domain.Document, error) { return nil, errBoom }

func (failingStore) Count(context.Context) (int, error) { return 0, errBoom }

// mockWatcher hands out a channel the test drives.
type mockWatcher struct {
	events chan domain.ChangeEvent
	err    error
	roots  []string
}

func (m *mockWatcher) Watch(_ context.Context, roots []string) (<-chan domain.ChangeEvent, error) {
	m.roots = roots
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}
