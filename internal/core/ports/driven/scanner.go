package driven

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// TreeScanner discovers snippet files under a root directory.
type TreeScanner interface {
	// Scan walks root recursively and loads every supported file.
	// Per-file failures are collected in the result; an error is returned
	// only when root itself cannot be enumerated.
	Scan(ctx context.Context, root string) (*domain.ScanResult, error)
}
