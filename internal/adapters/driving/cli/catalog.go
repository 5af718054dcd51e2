package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippets",
	Long: `List snippets sorted by title.

Filters:
  all            every snippet (default)
  folder:<name>  snippets directly in a folder, "." for root files
  tag:<name>     snippets declaring a tag`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List snippet folders",
	Args:  cobra.NoArgs,
	RunE:  runFolders,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List snippet tags",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

// Flags for the list command.
var (
	listFilter string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", string(domain.FilterAll),
		"Filter: all, folder:<name> or tag:<name>")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(tagsCmd)
}

// snippetJSON is the JSON shape of a listed snippet.
type snippetJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Folder      string   `json:"folder"`
	Tags        []string `json:"tags"`
	Path        string   `json:"path"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := refresh(cmd); err != nil {
		return err
	}

	docs, err := catalogService.List(cmd.Context(), listFilter)
	if err != nil {
		return fmt.Errorf("listing snippets: %w", err)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return printJSON(out, toSnippetJSON(docs))
	}

	if len(docs) == 0 {
		fmt.Fprintln(out, "No snippets found.")
		return nil
	}
	for i := range docs {
		printSnippetLine(out, &docs[i])
	}
	return nil
}

func runFolders(cmd *cobra.Command, _ []string) error {
	catalog, err := currentCatalog(cmd)
	if err != nil {
		return err
	}
	for _, folder := range catalog.Folders() {
		fmt.Fprintln(cmd.OutOrStdout(), folder)
	}
	return nil
}

func runTags(cmd *cobra.Command, _ []string) error {
	catalog, err := currentCatalog(cmd)
	if err != nil {
		return err
	}
	for _, tag := range catalog.Tags() {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}

// refresh rescans the roots unless --cached is set. Per-file errors go to
// stderr and do not fail the command.
func refresh(cmd *cobra.Command) error {
	_, err := reload(cmd)
	return err
}

func reload(cmd *cobra.Command) (*domain.Catalog, error) {
	if err := requireCatalog(); err != nil {
		return nil, err
	}
	if cachedFlag {
		return nil, nil
	}

	catalog, err := catalogService.Reload(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("reloading snippets: %w", err)
	}
	printFileErrors(cmd.ErrOrStderr(), catalog.Errors)
	return catalog, nil
}

// currentCatalog returns a fresh catalog, or one built from the stored
// snapshot with --cached.
func currentCatalog(cmd *cobra.Command) (*domain.Catalog, error) {
	catalog, err := reload(cmd)
	if err != nil || catalog != nil {
		return catalog, err
	}

	docs, err := catalogService.List(cmd.Context(), string(domain.FilterAll))
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	return &domain.Catalog{Roots: catalogService.Roots(), Documents: docs}, nil
}

func printSnippetLine(w io.Writer, doc *domain.Document) {
	line := idStyle.Render(doc.ID) + "  " + titleStyle.Render(doc.Title)
	if doc.Folder != domain.RootFolder {
		line += "  " + mutedStyle.Render(doc.Folder+"/")
	}
	if len(doc.Tags) > 0 {
		line += "  " + tagStyle.Render("#"+strings.Join(doc.Tags, " #"))
	}
	fmt.Fprintln(w, line)
}

func printFileErrors(w io.Writer, errs []domain.FileError) {
	for i := range errs {
		fmt.Fprintln(w, errorStyle.Render("error:")+" "+errs[i].Error())
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toSnippetJSON(docs []domain.Document) []snippetJSON {
	out := make([]snippetJSON, len(docs))
	for i := range docs {
		tags := docs[i].Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = snippetJSON{
			ID:          docs[i].ID,
			Title:       docs[i].Title,
			Description: docs[i].Description,
			Folder:      docs[i].Folder,
			Tags:        tags,
			Path:        docs[i].Path,
		}
	}
	return out
}
