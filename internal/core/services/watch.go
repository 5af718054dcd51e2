package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
	"github.com/custodia-labs/snipsurf/internal/logger"
)

// DefaultWatchInterval is the minimum time between watch-triggered reloads.
const DefaultWatchInterval = 500 * time.Millisecond

// ErrWatcherStopped is returned when the change feed closes on its own.
var ErrWatcherStopped = errors.New("change watcher stopped")

// Verify interface compliance.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService reloads the catalog when files under its roots change.
// Reloads are always wholesale; bursts of events collapse into at most one
// reload per interval.
type WatchService struct {
	catalog driving.CatalogService
	watcher driven.ChangeWatcher
	limiter *rate.Limiter
}

// NewWatchService creates a watch service. A non-positive interval uses
// DefaultWatchInterval.
func NewWatchService(catalog driving.CatalogService, watcher driven.ChangeWatcher, interval time.Duration) *WatchService {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &WatchService{
		catalog: catalog,
		watcher: watcher,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run watches the catalog roots until ctx is cancelled. It does not perform
// an initial reload.
func (w *WatchService) Run(ctx context.Context, onReload driving.ReloadFunc) error {
	events, err := w.watcher.Watch(ctx, w.catalog.Roots())
	if err != nil {
		return err
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrWatcherStopped
			}
			logger.Debug("change detected", "type", ev.Type, "path", ev.Path)
			if fire == nil {
				fire = time.After(w.limiter.Reserve().Delay())
			}
		case <-fire:
			fire = nil
			catalog, err := w.catalog.Reload(ctx)
			if err != nil {
				logger.Warn("reload failed", "err", err)
			}
			if onReload != nil {
				onReload(catalog, err)
			}
		}
	}
}
