package driven

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// DocumentStore holds the snapshot of the last catalog reload.
// Backed by SQLite or memory.
type DocumentStore interface {
	// ReplaceAll discards the previous snapshot and stores docs.
	ReplaceAll(ctx context.Context, docs []domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents ordered by title, then path.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
