// Package cli provides the cobra command tree for the snipsurf binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
	"github.com/custodia-labs/snipsurf/internal/logger"
)

// version is reported by the version command and the MCP server.
var version = "dev"

// Services resolved by the bootstrap hook, or injected directly in tests.
var (
	catalogService  driving.CatalogService
	documentService driving.DocumentService
	watchService    driving.WatchService
)

// Persistent flag values.
var (
	rootFlags   []string
	configPath  string
	verboseFlag bool
	cachedFlag  bool
)

// Options carries the persistent flags to the bootstrap hook.
type Options struct {
	// Roots override the configured snippet folders when non-empty.
	Roots []string

	// ConfigPath is an explicit config file, empty for the default location.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool
}

// Services is the set of driving ports the commands use.
type Services struct {
	Catalog  driving.CatalogService
	Document driving.DocumentService
	Watch    driving.WatchService

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	bootstrap    Bootstrap
	closeService func() error
)

var rootCmd = &cobra.Command{
	Use:   "snipsurf",
	Short: "Browse and extract markdown snippets",
	Long: `Snipsurf catalogs folders of markdown and text snippets.

It reads front matter for titles, descriptions and tags, lists snippets
by folder or tag, and extracts single sections by heading.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&rootFlags, "root", nil,
		"Snippet folder to scan (repeatable, overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cachedFlag, "cached", false,
		"Use the stored snapshot instead of rescanning")
}

// SetVersion sets the version reported by the CLI.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap installs the hook that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects services directly, bypassing the bootstrap hook.
func SetServices(s *Services) {
	if s == nil {
		catalogService, documentService, watchService = nil, nil, nil
		closeService = nil
		return
	}
	catalogService = s.Catalog
	documentService = s.Document
	watchService = s.Watch
	closeService = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeService != nil {
		if cerr := closeService(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing services: %w", cerr))
		}
		closeService = nil
	}
	return err
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if !needsServices(cmd) || bootstrap == nil {
		return nil
	}

	svcs, err := bootstrap(cmd.Context(), Options{
		Roots:      rootFlags,
		ConfigPath: configPath,
		Verbose:    verboseFlag,
	})
	if err != nil {
		return err
	}
	SetServices(svcs)
	return nil
}

func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return cmd.Runnable()
}

func requireCatalog() error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	return nil
}

func requireDocument() error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	return nil
}
