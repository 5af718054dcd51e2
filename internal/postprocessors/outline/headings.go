package outline

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var (
	fencePattern   = regexp.MustCompile("(?s)```.*?```")
	headingPattern = regexp.MustCompile(`(?m)^(#{1,3})[ \t]+(.+)$`)
)

// fences holds the byte ranges of fenced code blocks in a body.
type fences []domain.Span

func findFences(body string) fences {
	matches := fencePattern.FindAllStringIndex(body, -1)
	out := make(fences, len(matches))
	for i, m := range matches {
		out[i] = domain.Span{Start: m[0], End: m[1]}
	}
	return out
}

// contains reports whether offset lies inside a fenced block.
func (f fences) contains(offset int) bool {
	for _, s := range f {
		if offset >= s.Start && offset < s.End {
			return true
		}
		if s.Start > offset {
			break
		}
	}
	return false
}

// ExtractHeadings returns the level 1 to 3 headings of body in document
// order. Lines inside fenced code and headings whose text starts with "!"
// are ignored. Each span runs to the next heading, or to the end of body.
func ExtractHeadings(body string) []domain.Heading {
	f := findFences(body)

	var headings []domain.Heading
	for _, m := range headingPattern.FindAllStringSubmatchIndex(body, -1) {
		if f.contains(m[0]) {
			continue
		}
		text := strings.TrimSpace(body[m[4]:m[5]])
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}

		level := m[3] - m[2]
		headings = append(headings, domain.Heading{
			ID:    domain.HeadingID(level, len(headings)),
			Level: level,
			Text:  text,
			Span:  domain.Span{Start: m[0]},
		})
	}

	for i := range headings {
		if i+1 < len(headings) {
			headings[i].Span.End = headings[i+1].Span.Start
		} else {
			headings[i].Span.End = len(body)
		}
	}
	return headings
}

// FindHeading returns the heading of body with the given id.
func FindHeading(body, id string) (domain.Heading, bool) {
	for _, h := range ExtractHeadings(body) {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Heading{}, false
}
