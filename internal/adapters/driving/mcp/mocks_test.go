package mcp

import (
	"context"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/services"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	documents  []domain.Document
	catalog    *domain.Catalog
	err        error
	lastFilter string
}

func (m *mockCatalogService) Reload(_ context.Context) (*domain.Catalog, error) {
	return m.catalog, m.err
}

func (m *mockCatalogService) List(_ context.Context, filter string) ([]domain.Document, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return domain.FilterDocuments(m.documents, domain.ParseFilter(filter)), nil
}

func (m *mockCatalogService) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.documents {
		if m.documents[i].ID == id {
			doc := m.documents[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) Roots() []string {
	return []string{"/snippets"}
}

func newTestServer(catalog *mockCatalogService) *Server {
	ports := &Ports{
		Catalog:  catalog,
		Document: services.NewDocumentService(catalog),
	}
	server, err := NewServer(ports, "test")
	if err != nil {
		panic(err)
	}
	return server
}

func testDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:     "id-git",
			Path:   "/snippets/git/undo.md",
			Root:   "/snippets",
			Folder: "git",
			Title:  "Undo commit",
			Tags:   []string{"git"},
			Body:   "# Soft\ngit reset --soft HEAD~1\n# Hard\ngit reset --hard HEAD~1",
		},
		{
			ID:     "id-curl",
			Path:   "/snippets/curl.md",
			Root:   "/snippets",
			Folder: ".",
			Title:  "Curl",
			Body:   "```sh\ncurl -sSL example.com\n```",
		},
	}
}
