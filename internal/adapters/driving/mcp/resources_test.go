package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSnippetID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid snippet URI",
			uri:      "snipsurf://snippets/abc123",
			expected: "abc123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://snippets/abc123",
			expected: "",
		},
		{
			name:     "listing URI",
			uri:      "snipsurf://snippets",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "snipsurf://snippets/abc/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSnippetID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSnippetsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns JSON listing", func(t *testing.T) {
		server := newTestServer(&mockCatalogService{documents: testDocuments()})

		result, err := server.handleSnippetsResource(ctx, makeReadResourceRequest("snipsurf://snippets"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var got []SnippetSummary
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "id-git", got[0].ID)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server := newTestServer(&mockCatalogService{err: errors.New("boom")})

		_, err := server.handleSnippetsResource(ctx, makeReadResourceRequest("snipsurf://snippets"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing snippets")
	})
}

func TestServer_handleSnippetResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(&mockCatalogService{documents: testDocuments()})

	t.Run("returns body", func(t *testing.T) {
		result, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snipsurf://snippets/id-curl"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Equal(t, "```sh\ncurl -sSL example.com\n```", result.Contents[0].Text)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snipsurf://snippets/missing"))

		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleSnippetResource(ctx, makeReadResourceRequest("snipsurf://other"))

		require.Error(t, err)
	})
}
