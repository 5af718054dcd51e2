package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the snapshot in step with the snippet folders",
	Long: `Load the snippet folders, then rescan whenever a snippet is created,
changed, renamed or removed. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	catalog, err := catalogService.Reload(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snippets: %w", err)
	}
	printFileErrors(errOut, catalog.Errors)
	fmt.Fprintf(out, "Loaded %d snippets from %d roots. Watching for changes...\n",
		len(catalog.Documents), len(catalog.Roots))

	return watchService.Run(cmd.Context(), func(catalog *domain.Catalog, err error) {
		if err != nil {
			fmt.Fprintln(errOut, errorStyle.Render("error:")+" "+err.Error())
			return
		}
		printFileErrors(errOut, catalog.Errors)
		fmt.Fprintf(out, "Reloaded %d snippets.\n", len(catalog.Documents))
	})
}
