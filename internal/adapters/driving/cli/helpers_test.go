package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipsurf/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipsurf/internal/connectors/filesystem"
	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
	"github.com/custodia-labs/snipsurf/internal/core/services"
	"github.com/custodia-labs/snipsurf/internal/normalisers/markdown"
)

const (
	curlSnippet = "---\ntitle: Curl\ntags: [http]\n---\n```sh\ncurl -sSL example.com\n```\n"
	undoSnippet = "---\ntitle: Undo commit\ndescription: Reset the last commit\ntags: [git, reset]\n---\n" +
		"# Soft\ngit reset --soft HEAD~1\n# Hard\ngit reset --hard HEAD~1\n"
)

// fixture is a snippet folder wired to real services over a memory store.
type fixture struct {
	root   string
	curlID string
	undoID string
}

// setupTestServices writes a snippet folder and installs services for it.
// The returned func restores the previous services.
func setupTestServices(t *testing.T) (*fixture, func()) {
	t.Helper()

	root := filesystem.ResolveRoot(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "curl.md"), []byte(curlSnippet), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "git", "undo.md"), []byte(undoSnippet), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.txt"), []byte{0xff, 0xfe, 0xfd}, 0o600))

	cfg := domain.NewScanConfig([]string{root})
	catalog := services.NewCatalogService(
		filesystem.NewScanner(markdown.New(), cfg),
		memory.NewDocumentStore(),
		cfg.Roots(),
		services.WithResolver(filesystem.ResolveRoot),
	)

	prevCatalog, prevDocument, prevWatch := catalogService, documentService, watchService
	SetServices(&Services{
		Catalog:  catalog,
		Document: services.NewDocumentService(catalog),
	})

	return &fixture{
			root:   root,
			curlID: markdown.DocumentID(filepath.Join(root, "curl.md")),
			undoID: markdown.DocumentID(filepath.Join(root, "git", "undo.md")),
		}, func() {
			catalogService, documentService, watchService = prevCatalog, prevDocument, prevWatch
		}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// resetFlags clears flag state left over from earlier executions.
func resetFlags(cmd *cobra.Command) {
	listFilter, listJSON = string(domain.FilterAll), false
	showPastable, renderFlag, outlineJSON = false, false, false
	cachedFlag, verboseFlag, rootFlags = false, false, nil

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(cmd)
}

// mockWatchService replays a fixed sequence of reload outcomes.
type mockWatchService struct {
	outcomes []outcome
	err      error
}

type outcome struct {
	catalog *domain.Catalog
	err     error
}

func (m *mockWatchService) Run(_ context.Context, onReload driving.ReloadFunc) error {
	for _, o := range m.outcomes {
		onReload(o.catalog, o.err)
	}
	return m.err
}

// emptyCatalog returns a catalog service with no roots configured.
func emptyCatalog() *services.CatalogService {
	return services.NewCatalogService(
		filesystem.NewScanner(markdown.New(), domain.NewScanConfig(nil)),
		memory.NewDocumentStore(),
		nil,
	)
}

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}
