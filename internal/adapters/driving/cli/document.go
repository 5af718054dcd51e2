package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [snippet-id]",
	Short: "Print a snippet",
	Long: `Print the body of a snippet.

With --pastable a body that is a single fenced code block is printed
without its fences, ready to paste into a shell.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var outlineCmd = &cobra.Command{
	Use:   "outline [snippet-id]",
	Short: "List the headings of a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

var sectionCmd = &cobra.Command{
	Use:   "section [snippet-id] [heading-id]",
	Short: "Print one section of a snippet",
	Long:  `Print the text under a heading. Heading IDs come from the outline command.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSection,
}

// Flags for the document commands.
var (
	showPastable bool
	renderFlag   bool
	outlineJSON  bool
)

func init() {
	showCmd.Flags().BoolVarP(&showPastable, "pastable", "p", false, "Strip a wrapping code fence")
	showCmd.Flags().BoolVarP(&renderFlag, "render", "r", false, "Render markdown (default when stdout is a terminal)")
	sectionCmd.Flags().BoolVarP(&renderFlag, "render", "r", false, "Render markdown (default when stdout is a terminal)")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "Print JSON")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireDocument(); err != nil {
		return err
	}
	if err := refresh(cmd); err != nil {
		return err
	}

	if showPastable {
		body, err := documentService.Pastable(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting snippet: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting snippet: %w", err)
	}
	return printMarkdown(cmd, doc.Body)
}

func runOutline(cmd *cobra.Command, args []string) error {
	if err := requireDocument(); err != nil {
		return err
	}
	if err := refresh(cmd); err != nil {
		return err
	}

	headings, err := documentService.Outline(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting outline: %w", err)
	}

	out := cmd.OutOrStdout()
	if outlineJSON {
		return printJSON(out, headings)
	}
	if len(headings) == 0 {
		fmt.Fprintln(out, "No headings.")
		return nil
	}
	printOutline(out, headings)
	return nil
}

func runSection(cmd *cobra.Command, args []string) error {
	if err := requireDocument(); err != nil {
		return err
	}
	if err := refresh(cmd); err != nil {
		return err
	}

	text, err := documentService.Section(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("getting section: %w", err)
	}
	return printMarkdown(cmd, text)
}

func printOutline(w io.Writer, headings []domain.Heading) {
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(w, "%s%s %s  %s\n",
			indent,
			levelStyle.Render(strings.Repeat("#", h.Level)),
			h.Text,
			idStyle.Render(h.ID))
	}
}

// printMarkdown writes markdown raw, or rendered when --render is set or
// stdout is a terminal.
func printMarkdown(cmd *cobra.Command, markdown string) error {
	out := cmd.OutOrStdout()

	render := renderFlag
	if !cmd.Flags().Changed("render") {
		render = isTerminal(out)
	}
	if !render {
		fmt.Fprintln(out, markdown)
		return nil
	}

	rendered, err := renderMarkdown(markdown, terminalWidth(out))
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	fmt.Fprint(out, rendered)
	return nil
}
