package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
)

// Configuration keys, in dot notation.
const (
	KeyFolderPath           = "snippets.folder_path"
	KeySecondaryFolderPaths = "snippets.secondary_folder_paths"
	KeyExtensions           = "snippets.extensions"
	KeyExcludedFiles        = "snippets.excluded_files"
	KeyMaxOpenFiles         = "snippets.max_open_files"
	KeyStorageDriver        = "storage.driver"
	KeyStorageDataDir       = "storage.data_dir"
	KeyWatchInterval        = "watch.interval"
)

// StorageDriver selects the DocumentStore implementation.
type StorageDriver string

// Storage drivers.
const (
	DriverSQLite StorageDriver = "sqlite"
	DriverMemory StorageDriver = "memory"
)

// DefaultWatchInterval is used when watch.interval is not set.
const DefaultWatchInterval = 500 * time.Millisecond

// Settings is the application configuration after validation.
type Settings struct {
	// Scan holds the configured roots, unresolved, and the file filters.
	Scan domain.ScanConfig

	// Storage is the snapshot store driver.
	Storage StorageDriver

	// DataDir is the SQLite data directory, empty for the default.
	DataDir string

	// WatchInterval is the minimum time between watch-triggered reloads.
	WatchInterval time.Duration
}

// LoadSettings reads and validates settings from store. Unset keys take
// their defaults; a value of the wrong shape is ErrInvalidInput.
func LoadSettings(store driven.ConfigStore) (Settings, error) {
	settings := Settings{
		Storage:       DriverSQLite,
		DataDir:       store.GetString(KeyStorageDataDir),
		WatchInterval: DefaultWatchInterval,
	}

	var opts []domain.ScanOption
	if exts := store.GetStringSlice(KeyExtensions); len(exts) > 0 {
		opts = append(opts, domain.WithExtensions(normaliseExtensions(exts)...))
	}
	if names := store.GetStringSlice(KeyExcludedFiles); len(names) > 0 {
		opts = append(opts, domain.WithExcludedNames(names...))
	}
	if _, ok := store.Get(KeyMaxOpenFiles); ok {
		n := store.GetInt(KeyMaxOpenFiles)
		if n <= 0 {
			return Settings{}, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, KeyMaxOpenFiles)
		}
		opts = append(opts, domain.WithMaxOpenFiles(n))
	}
	settings.Scan = domain.NewScanConfig(configuredRoots(store), opts...)

	if raw := strings.TrimSpace(store.GetString(KeyStorageDriver)); raw != "" {
		switch driver := StorageDriver(strings.ToLower(raw)); driver {
		case DriverSQLite, DriverMemory:
			settings.Storage = driver
		default:
			return Settings{}, fmt.Errorf("%w: unknown %s %q", domain.ErrInvalidInput, KeyStorageDriver, raw)
		}
	}

	if raw, ok := store.Get(KeyWatchInterval); ok {
		interval, err := parseInterval(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, KeyWatchInterval, err)
		}
		settings.WatchInterval = interval
	}

	return settings, nil
}

// configuredRoots returns folder_path followed by the secondary paths.
// Secondary paths may be a list or a comma separated string.
func configuredRoots(store driven.ConfigStore) []string {
	var roots []string
	if primary := strings.TrimSpace(store.GetString(KeyFolderPath)); primary != "" {
		roots = append(roots, primary)
	}

	secondary := store.GetStringSlice(KeySecondaryFolderPaths)
	if secondary == nil {
		secondary = strings.Split(store.GetString(KeySecondaryFolderPaths), ",")
	}
	for _, root := range secondary {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}

func normaliseExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// parseInterval accepts a duration string or a number of milliseconds.
func parseInterval(raw any) (time.Duration, error) {
	var d time.Duration
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		d = parsed
	case int64:
		d = time.Duration(v) * time.Millisecond
	case int:
		d = time.Duration(v) * time.Millisecond
	default:
		return 0, fmt.Errorf("unsupported value %v", raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

// SQLiteDataDir returns the data directory for the SQLite store, under the
// config directory unless storage.data_dir is set.
func (s Settings) SQLiteDataDir(configDir string) string {
	if s.DataDir != "" {
		return s.DataDir
	}
	return filepath.Join(configDir, "data")
}
