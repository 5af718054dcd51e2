package driving

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// CatalogService discovers snippets and answers listing queries.
type CatalogService interface {
	// Reload rescans every configured root and replaces the snapshot.
	Reload(ctx context.Context) (*domain.Catalog, error)

	// List returns snapshot documents matching a filter string
	// ("all", "folder:<name>", "tag:<name>").
	List(ctx context.Context, filter string) ([]domain.Document, error)

	// Get retrieves a snapshot document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Roots returns the resolved, de-duplicated root directories.
	Roots() []string
}
