package driven

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// DocumentLoader reads a single snippet file into a Document.
// Malformed metadata never fails a load; only reading the file can.
type DocumentLoader interface {
	// Load reads absPath. relPath is the path relative to the scanned root
	// and determines the document folder and default title.
	Load(ctx context.Context, relPath, absPath string) (domain.Document, error)
}
