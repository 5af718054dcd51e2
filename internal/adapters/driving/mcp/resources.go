package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Snipsurf resources.
	uriScheme = "snipsurf://"

	snippetsURI = uriScheme + "snippets"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         snippetsURI,
		Name:        "snippets",
		Description: "List of all snippets",
		MIMEType:    "application/json",
	}, s.handleSnippetsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: snippetsURI + "/{id}",
		Name:        "snippet-body",
		Description: "Body of a specific snippet",
		MIMEType:    "text/markdown",
	}, s.handleSnippetResource)
}

// handleSnippetsResource returns a JSON summary of every snippet.
func (s *Server) handleSnippetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Catalog.List(ctx, string(domain.FilterAll))
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}

	infos := make([]SnippetSummary, len(docs))
	for i := range docs {
		infos[i] = summarise(&docs[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling snippets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSnippetResource returns the body of a single snippet.
func (s *Server) handleSnippetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSnippetID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting snippet: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Body,
		}},
	}, nil
}

// extractSnippetID extracts the id from a URI like snipsurf://snippets/{id}.
func extractSnippetID(uri string) string {
	const prefix = snippetsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
