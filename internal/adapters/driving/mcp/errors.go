// Package mcp provides an MCP (Model Context Protocol) server adapter for Snipsurf.
// It lets AI assistants browse the snippet catalog, read outlines and pull
// individual sections.
package mcp

import "errors"

var (
	// ErrMissingCatalogService is returned when the catalog service is not provided.
	ErrMissingCatalogService = errors.New("mcp: catalog service is required")

	// ErrMissingDocumentService is returned when the document service is not provided.
	ErrMissingDocumentService = errors.New("mcp: document service is required")
)
