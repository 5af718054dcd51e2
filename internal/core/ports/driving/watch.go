package driving

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// ReloadFunc receives the outcome of every watch-triggered reload.
// catalog is nil when err is non-nil.
type ReloadFunc func(catalog *domain.Catalog, err error)

// WatchService keeps the catalog in step with the filesystem.
type WatchService interface {
	// Run blocks until ctx is cancelled, reloading the catalog after changes.
	Run(ctx context.Context, onReload ReloadFunc) error
}
