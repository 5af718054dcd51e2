package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

var (
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	levelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or defaultTerminalWidth.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultTerminalWidth
}

// renderMarkdown formats markdown for display in a terminal of the given width.
func renderMarkdown(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
