package domain

import "strings"

// FilterKind selects which document attribute a Filter tests.
type FilterKind string

// Filter kinds, as they appear before the colon of a filter string.
const (
	FilterAll    FilterKind = "all"
	FilterFolder FilterKind = "folder"
	FilterTag    FilterKind = "tag"
)

// Filter narrows a document list by folder or tag.
type Filter struct {
	Kind  FilterKind
	Value string
}

// ParseFilter parses "all", "folder:<name>" or "tag:<name>".
// Anything else selects all documents.
func ParseFilter(s string) Filter {
	switch {
	case strings.HasPrefix(s, string(FilterFolder)+":"):
		return Filter{Kind: FilterFolder, Value: strings.TrimPrefix(s, string(FilterFolder)+":")}
	case strings.HasPrefix(s, string(FilterTag)+":"):
		return Filter{Kind: FilterTag, Value: strings.TrimPrefix(s, string(FilterTag)+":")}
	default:
		return Filter{Kind: FilterAll}
	}
}

// String renders the filter in its parseable form.
func (f Filter) String() string {
	if f.Kind == FilterFolder || f.Kind == FilterTag {
		return string(f.Kind) + ":" + f.Value
	}
	return string(FilterAll)
}

// Match reports whether doc passes the filter.
func (f Filter) Match(doc *Document) bool {
	switch f.Kind {
	case FilterFolder:
		return doc.InFolder(f.Value)
	case FilterTag:
		return doc.HasTag(f.Value)
	default:
		return true
	}
}

// FilterDocuments returns the documents matching f, preserving order.
func FilterDocuments(docs []Document, f Filter) []Document {
	out := make([]Document, 0, len(docs))
	for i := range docs {
		if f.Match(&docs[i]) {
			out = append(out, docs[i])
		}
	}
	return out
}
