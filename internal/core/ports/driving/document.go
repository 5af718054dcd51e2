package driving

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// DocumentService navigates the structure of a single document.
type DocumentService interface {
	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// Outline returns the headings of the document body in order.
	Outline(ctx context.Context, documentID string) ([]domain.Heading, error)

	// Section returns the text belonging to a heading of the document.
	Section(ctx context.Context, documentID, headingID string) (string, error)

	// Pastable returns the body with a single wrapping code fence removed.
	Pastable(ctx context.Context, documentID string) (string, error)
}
