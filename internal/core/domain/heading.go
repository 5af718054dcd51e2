package domain

import "fmt"

// MaxHeadingLevel is the deepest heading marker that is navigable.
const MaxHeadingLevel = 3

// Span is a half-open [Start, End) byte range into a document body.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the part of body covered by the span.
// Out-of-range spans are clamped to the body.
func (s Span) Slice(body string) string {
	start, end := max(s.Start, 0), min(s.End, len(body))
	if start >= end {
		return ""
	}
	return body[start:end]
}

// Heading is a heading line found in a document body.
type Heading struct {
	// ID is synthetic: "heading-<level>-<ordinal>". It never depends on Text.
	ID string `json:"id"`

	// Level is the number of '#' markers, 1 to MaxHeadingLevel.
	Level int `json:"level"`

	// Text is the trimmed heading text without markers.
	Text string `json:"text"`

	// Span starts at the marker and ends at the next heading, or the end of the body.
	Span Span `json:"span"`
}

// HeadingID builds the synthetic identifier for the ordinal-th heading of an extraction.
func HeadingID(level, ordinal int) string {
	return fmt.Sprintf("heading-%d-%d", level, ordinal)
}
