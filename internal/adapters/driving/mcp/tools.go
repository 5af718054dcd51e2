package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

// ListInput is the input schema for the list_snippets tool.
type ListInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"all, folder:<name> or tag:<name> (default all)"`
}

// ListOutput is the output schema for the list_snippets tool.
type ListOutput struct {
	Snippets []SnippetSummary `json:"snippets"`
	Count    int              `json:"count"`
}

// SnippetSummary describes a snippet without its body.
type SnippetSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Folder      string   `json:"folder"`
	Tags        []string `json:"tags"`
	Path        string   `json:"path"`
}

// GetInput is the input schema for the get_snippet tool.
type GetInput struct {
	ID       string `json:"id" jsonschema:"the snippet id from list_snippets"`
	Pastable bool   `json:"pastable,omitempty" jsonschema:"strip a single wrapping code fence from the body"`
}

// GetOutput is the output schema for the get_snippet tool.
type GetOutput struct {
	SnippetSummary
	Body string `json:"body"`
}

// OutlineInput is the input schema for the get_outline tool.
type OutlineInput struct {
	ID string `json:"id" jsonschema:"the snippet id from list_snippets"`
}

// OutlineOutput is the output schema for the get_outline tool.
type OutlineOutput struct {
	Headings []HeadingOutput `json:"headings"`
}

// HeadingOutput represents a single heading of an outline.
type HeadingOutput struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SectionInput is the input schema for the get_section tool.
type SectionInput struct {
	ID        string `json:"id" jsonschema:"the snippet id from list_snippets"`
	HeadingID string `json:"heading_id" jsonschema:"the heading id from get_outline"`
}

// SectionOutput is the output schema for the get_section tool.
type SectionOutput struct {
	Text string `json:"text"`
}

// ReloadInput is the input schema for the reload_snippets tool.
type ReloadInput struct{}

// ReloadOutput is the output schema for the reload_snippets tool.
type ReloadOutput struct {
	Roots     []string `json:"roots"`
	Documents int      `json:"documents"`
	Errors    []string `json:"errors"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_snippets",
		Description: "List snippets, optionally filtered by folder or tag",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_snippet",
		Description: "Get a snippet with its body",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_outline",
		Description: "List the level 1-3 headings of a snippet",
	}, s.handleOutline)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section",
		Description: "Get the text under one heading of a snippet",
	}, s.handleSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reload_snippets",
		Description: "Rescan the snippet folders",
	}, s.handleReload)
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	docs, err := s.ports.Catalog.List(ctx, input.Filter)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Snippets: make([]SnippetSummary, len(docs)),
		Count:    len(docs),
	}
	for i := range docs {
		output.Snippets[i] = summarise(&docs[i])
	}
	return nil, output, nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, GetOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.ID)
	if err != nil {
		return nil, GetOutput{}, err
	}

	body := doc.Body
	if input.Pastable {
		body, err = s.ports.Document.Pastable(ctx, input.ID)
		if err != nil {
			return nil, GetOutput{}, err
		}
	}
	return nil, GetOutput{SnippetSummary: summarise(doc), Body: body}, nil
}

func (s *Server) handleOutline(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OutlineInput,
) (*mcp.CallToolResult, OutlineOutput, error) {
	headings, err := s.ports.Document.Outline(ctx, input.ID)
	if err != nil {
		return nil, OutlineOutput{}, err
	}

	output := OutlineOutput{Headings: make([]HeadingOutput, len(headings))}
	for i, h := range headings {
		output.Headings[i] = HeadingOutput{
			ID:    h.ID,
			Level: h.Level,
			Text:  h.Text,
			Start: h.Span.Start,
			End:   h.Span.End,
		}
	}
	return nil, output, nil
}

func (s *Server) handleSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionInput,
) (*mcp.CallToolResult, SectionOutput, error) {
	text, err := s.ports.Document.Section(ctx, input.ID, input.HeadingID)
	if err != nil {
		return nil, SectionOutput{}, err
	}
	return nil, SectionOutput{Text: text}, nil
}

func (s *Server) handleReload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ReloadInput,
) (*mcp.CallToolResult, ReloadOutput, error) {
	catalog, err := s.ports.Catalog.Reload(ctx)
	if err != nil {
		return nil, ReloadOutput{}, fmt.Errorf("reloading: %w", err)
	}

	output := ReloadOutput{
		Roots:     catalog.Roots,
		Documents: len(catalog.Documents),
		Errors:    make([]string, len(catalog.Errors)),
	}
	for i := range catalog.Errors {
		output.Errors[i] = catalog.Errors[i].Error()
	}
	return nil, output, nil
}

func summarise(doc *domain.Document) SnippetSummary {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return SnippetSummary{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Folder:      doc.Folder,
		Tags:        tags,
		Path:        doc.Path,
	}
}
