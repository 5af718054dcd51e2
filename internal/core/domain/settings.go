package domain

import "slices"

// DefaultExtensions are the file extensions scanned when none are configured.
var DefaultExtensions = []string{".md", ".txt"}

// DefaultExcludedNames are filenames skipped when none are configured.
// Matching is exact and case-sensitive.
var DefaultExcludedNames = []string{"README.md", "readme.md", "Readme.md"}

// DefaultMaxOpenFiles bounds concurrent file reads during a scan.
const DefaultMaxOpenFiles = 64

// ScanConfig holds the options for discovering snippet files.
// Construct it with NewScanConfig; the accessors return copies so a
// ScanConfig can be shared between concurrent scans.
type ScanConfig struct {
	roots        []string
	extensions   []string
	excluded     []string
	maxOpenFiles int
}

// ScanOption customises a ScanConfig.
type ScanOption func(*ScanConfig)

// WithExtensions replaces the supported extension set. Empty input is ignored.
func WithExtensions(exts ...string) ScanOption {
	return func(c *ScanConfig) {
		if len(exts) > 0 {
			c.extensions = slices.Clone(exts)
		}
	}
}

// WithExcludedNames replaces the excluded filename set. Empty input is ignored.
func WithExcludedNames(names ...string) ScanOption {
	return func(c *ScanConfig) {
		if len(names) > 0 {
			c.excluded = slices.Clone(names)
		}
	}
}

// WithMaxOpenFiles bounds concurrent file reads. Non-positive values are ignored.
func WithMaxOpenFiles(n int) ScanOption {
	return func(c *ScanConfig) {
		if n > 0 {
			c.maxOpenFiles = n
		}
	}
}

// NewScanConfig creates a ScanConfig for the given roots.
func NewScanConfig(roots []string, opts ...ScanOption) ScanConfig {
	c := ScanConfig{
		roots:        slices.Clone(roots),
		extensions:   slices.Clone(DefaultExtensions),
		excluded:     slices.Clone(DefaultExcludedNames),
		maxOpenFiles: DefaultMaxOpenFiles,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Roots returns the configured root paths as given, unresolved.
func (c ScanConfig) Roots() []string { return slices.Clone(c.roots) }

// Extensions returns the supported extensions.
func (c ScanConfig) Extensions() []string { return slices.Clone(c.extensions) }

// ExcludedNames returns the excluded filenames.
func (c ScanConfig) ExcludedNames() []string { return slices.Clone(c.excluded) }

// MaxOpenFiles returns the concurrent read bound.
func (c ScanConfig) MaxOpenFiles() int {
	if c.maxOpenFiles <= 0 {
		return DefaultMaxOpenFiles
	}
	return c.maxOpenFiles
}

// Supports reports whether ext (including the leading dot) is scanned.
func (c ScanConfig) Supports(ext string) bool {
	exts := c.extensions
	if exts == nil {
		exts = DefaultExtensions
	}
	return slices.Contains(exts, ext)
}

// Excludes reports whether a filename is on the exclusion list.
func (c ScanConfig) Excludes(name string) bool {
	names := c.excluded
	if names == nil {
		names = DefaultExcludedNames
	}
	return slices.Contains(names, name)
}

// WithRoots returns a copy of c using different roots.
func (c ScanConfig) WithRoots(roots []string) ScanConfig {
	c.roots = slices.Clone(roots)
	c.extensions = slices.Clone(c.extensions)
	c.excluded = slices.Clone(c.excluded)
	return c
}
