package driven

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// ChangeWatcher reports filesystem changes under a set of roots.
type ChangeWatcher interface {
	// Watch starts watching roots. The channel is closed when ctx is done
	// or the watcher fails.
	Watch(ctx context.Context, roots []string) (<-chan domain.ChangeEvent, error)
}
