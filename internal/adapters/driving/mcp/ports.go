package mcp

import (
	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists and reloads snippets.
	Catalog driving.CatalogService

	// Document reads outlines and sections of a snippet.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
