package domain

import "slices"

// RootFolder is the folder value of documents that sit directly in a scanned root.
const RootFolder = "."

// Document represents a snippet file after front-matter extraction.
// Documents are immutable once loaded; a rescan produces new values.
type Document struct {
	// ID is the hex MD5 digest of Path. It is stable across reloads
	// and does not change when the content is edited.
	ID string `json:"id"`

	// Path is the absolute filesystem path of the file.
	Path string `json:"path"`

	// Root is the absolute root directory the file was discovered under.
	Root string `json:"root"`

	// Folder is the containing directory relative to Root, "." for root files.
	Folder string `json:"folder"`

	// Title is the metadata title, or the filename stem when absent.
	Title string `json:"title"`

	// Description is the metadata description, empty when absent.
	Description string `json:"description"`

	// Tags are the metadata tags in declaration order. Never nil.
	Tags []string `json:"tags"`

	// Body is the content with the metadata block removed, trimmed.
	Body string `json:"body"`

	// RawMetadata is the verbatim text between the front-matter delimiters.
	RawMetadata string `json:"raw_metadata"`
}

// HasTag reports whether the document declares the given tag.
func (d *Document) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// InFolder reports whether the document lives directly in folder.
func (d *Document) InFolder(folder string) bool {
	return d.Folder == folder
}
