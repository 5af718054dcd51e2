package domain

import (
	"slices"
	"sort"
)

// ScanResult is the outcome of scanning one root directory.
// Ordering of Documents and Errors is not guaranteed.
type ScanResult struct {
	// ScanID correlates log lines of a single scan.
	ScanID string

	// Root is the absolute root that was scanned.
	Root string

	// Documents are the successfully loaded files.
	Documents []Document

	// Errors are per-file failures. They never replace Documents.
	Errors []FileError
}

// Catalog is the combined result of scanning every configured root.
// It is rebuilt wholesale on every reload.
type Catalog struct {
	// Roots are the resolved, de-duplicated roots in configuration order.
	Roots []string

	// Documents are all loaded documents, concatenated in root order.
	// Documents reachable from two roots appear twice.
	Documents []Document

	// Errors are the per-file and per-root failures of the reload.
	Errors []FileError
}

// Folders returns the distinct folders of the catalog, sorted.
func (c *Catalog) Folders() []string {
	seen := make(map[string]struct{})
	for i := range c.Documents {
		seen[c.Documents[i].Folder] = struct{}{}
	}
	return sortedKeys(seen)
}

// Tags returns the distinct tags of the catalog, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]struct{})
	for i := range c.Documents {
		for _, tag := range c.Documents[i].Tags {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Filter returns the documents matching f, in catalog order.
func (c *Catalog) Filter(f Filter) []Document {
	return FilterDocuments(c.Documents, f)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortDocuments orders documents by title, then path, in place.
func SortDocuments(docs []Document) {
	slices.SortStableFunc(docs, func(a, b Document) int {
		if a.Title != b.Title {
			if a.Title < b.Title {
				return -1
			}
			return 1
		}
		switch {
		case a.Path < b.Path:
			return -1
		case a.Path > b.Path:
			return 1
		default:
			return 0
		}
	})
}
