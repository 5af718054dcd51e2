package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScanConfig_Defaults(t *testing.T) {
	cfg := NewScanConfig([]string{"~/snippets"})

	assert.Equal(t, []string{"~/snippets"}, cfg.Roots())
	assert.Equal(t, []string{".md", ".txt"}, cfg.Extensions())
	assert.Equal(t, []string{"README.md", "readme.md", "Readme.md"}, cfg.ExcludedNames())
	assert.Equal(t, DefaultMaxOpenFiles, cfg.MaxOpenFiles())
}

func TestScanConfig_Options(t *testing.T) {
	cfg := NewScanConfig(nil,
		WithExtensions(".markdown"),
		WithExcludedNames("TODO.md"),
		WithMaxOpenFiles(4),
	)

	assert.True(t, cfg.Supports(".markdown"))
	assert.False(t, cfg.Supports(".md"))
	assert.True(t, cfg.Excludes("TODO.md"))
	assert.False(t, cfg.Excludes("README.md"))
	assert.Equal(t, 4, cfg.MaxOpenFiles())
}

func TestScanConfig_EmptyOptionsKeepDefaults(t *testing.T) {
	cfg := NewScanConfig(nil, WithExtensions(), WithExcludedNames(), WithMaxOpenFiles(0))

	assert.True(t, cfg.Supports(".md"))
	assert.True(t, cfg.Supports(".txt"))
	assert.True(t, cfg.Excludes("README.md"))
	assert.Equal(t, DefaultMaxOpenFiles, cfg.MaxOpenFiles())
}

func TestScanConfig_ExclusionIsCaseSensitive(t *testing.T) {
	cfg := NewScanConfig(nil)

	assert.True(t, cfg.Excludes("Readme.md"))
	assert.False(t, cfg.Excludes("README.MD"))
	assert.False(t, cfg.Supports(".MD"))
}

func TestScanConfig_Immutable(t *testing.T) {
	roots := []string{"/a"}
	cfg := NewScanConfig(roots)
	roots[0] = "/mutated"

	got := cfg.Roots()
	got[0] = "/also-mutated"

	assert.Equal(t, []string{"/a"}, cfg.Roots())

	other := cfg.WithRoots([]string{"/b"})
	assert.Equal(t, []string{"/b"}, other.Roots())
	assert.Equal(t, []string{"/a"}, cfg.Roots())
}

func TestZeroScanConfig_UsesDefaults(t *testing.T) {
	var cfg ScanConfig

	assert.True(t, cfg.Supports(".md"))
	assert.True(t, cfg.Excludes("readme.md"))
	assert.Equal(t, DefaultMaxOpenFiles, cfg.MaxOpenFiles())
}
