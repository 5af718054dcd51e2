package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// ReplaceAll swaps the snapshot for docs. A later duplicate ID wins.
func (s *DocumentStore) ReplaceAll(_ context.Context, docs []domain.Document) error {
	next := make(map[string]domain.Document, len(docs))
	for i := range docs {
		next[docs[i].ID] = cloneDocument(docs[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = next
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc = cloneDocument(doc)
	return &doc, nil
}

// ListDocuments returns all documents ordered by title, then path.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	docs := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, cloneDocument(doc))
	}
	s.mu.RUnlock()

	domain.SortDocuments(docs)
	return docs, nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents), nil
}

func cloneDocument(doc domain.Document) domain.Document {
	doc.Tags = append([]string{}, doc.Tags...)
	return doc
}
