package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/snipsurf/internal/adapters/driven/config/file"
	"github.com/custodia-labs/snipsurf/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipsurf/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/snipsurf/internal/adapters/driving/cli"
	"github.com/custodia-labs/snipsurf/internal/connectors/filesystem"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/core/services"
	"github.com/custodia-labs/snipsurf/internal/logger"
	"github.com/custodia-labs/snipsurf/internal/normalisers/markdown"
)

// bootstrap wires configuration, storage and services for a CLI run.
func bootstrap(_ context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, configDir, err := openConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings, err := file.LoadSettings(configStore)
	if err != nil {
		return nil, fmt.Errorf("loading settings from %s: %w", configStore.Path(), err)
	}

	scanCfg := settings.Scan
	if len(opts.Roots) > 0 {
		scanCfg = scanCfg.WithRoots(opts.Roots)
	}
	logger.Debug("settings loaded",
		"config", configStore.Path(),
		"roots", scanCfg.Roots(),
		"storage", settings.Storage)

	docStore, closeStore, err := openDocumentStore(settings, configDir)
	if err != nil {
		return nil, err
	}

	catalog := services.NewCatalogService(
		filesystem.NewScanner(markdown.New(), scanCfg),
		docStore,
		scanCfg.Roots(),
		services.WithResolver(filesystem.ResolveRoot),
	)

	return &cli.Services{
		Catalog:  catalog,
		Document: services.NewDocumentService(catalog),
		Watch:    services.NewWatchService(catalog, filesystem.NewWatcher(scanCfg), settings.WatchInterval),
		Close:    closeStore,
	}, nil
}

// openConfig opens an explicit config file, or config.toml in the default
// directory. Without a home directory the configuration is empty.
func openConfig(path string) (driven.ConfigStore, string, error) {
	if path != "" {
		store, err := file.OpenConfigStore(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening config: %w", err)
		}
		return store, filepath.Dir(path), nil
	}

	dir, err := file.DefaultConfigDir()
	if err != nil {
		logger.Warn("no home directory, using empty configuration", "err", err)
		return memory.NewConfigStore(nil), "", nil
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, "", fmt.Errorf("opening config: %w", err)
	}
	return store, dir, nil
}

// openDocumentStore builds the snapshot store selected by settings.
func openDocumentStore(settings file.Settings, configDir string) (driven.DocumentStore, func() error, error) {
	if settings.Storage == file.DriverMemory || (configDir == "" && settings.DataDir == "") {
		return memory.NewDocumentStore(), nil, nil
	}

	store, err := sqlite.NewStore(settings.SQLiteDataDir(configDir))
	if err != nil {
		return nil, nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	logger.Debug("snapshot store opened", "path", store.Path())
	return store.DocumentStore(), store.Close, nil
}
