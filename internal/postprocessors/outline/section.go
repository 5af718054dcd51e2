package outline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// NotFoundText is the notice returned when a heading cannot be re-located.
const NotFoundText = "Section not found."

// ExtractSection returns the text under h: its marker line, a blank line and
// the trimmed content up to the next heading of the same or a higher level.
// When the marker line is no longer in body a placeholder document is
// returned instead.
//
// The section stops only at headings ExtractHeadings accepts, so fenced
// "#" lines, image headings and empty headings stay inside it rather than
// ending it at any "#" marker line.
func ExtractSection(body string, h domain.Heading) string {
	if h.Level < 1 || h.Level > domain.MaxHeadingLevel || h.Text == "" {
		return notFound(h.Text)
	}

	f := findFences(body)
	marker := regexp.MustCompile(`(?m)^` + strings.Repeat("#", h.Level) +
		`[ \t]+` + regexp.QuoteMeta(h.Text) + `[ \t\r]*$`)

	start, end := -1, -1
	for _, m := range marker.FindAllStringIndex(body, -1) {
		if f.contains(m[0]) {
			continue
		}
		if start < 0 || m[0] == h.Span.Start {
			start, end = m[0], m[1]
		}
		if m[0] == h.Span.Start {
			break
		}
	}
	if start < 0 {
		return notFound(h.Text)
	}

	stop := len(body)
	for _, next := range ExtractHeadings(body) {
		if next.Span.Start >= end && next.Level <= h.Level {
			stop = next.Span.Start
			break
		}
	}

	line := strings.TrimRight(body[start:end], " \t\r")
	return line + "\n\n" + strings.TrimSpace(body[end:stop])
}

func notFound(text string) string {
	return fmt.Sprintf("# %s\n\n%s", text, NotFoundText)
}
