package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipsurf/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

func doc(id, title, folder string, tags ...string) domain.Document {
	if tags == nil {
		tags = []string{}
	}
	return domain.Document{ID: id, Title: title, Path: "/" + id, Folder: folder, Tags: tags}
}

func TestNewCatalogService_ResolvesAndDedupsRoots(t *testing.T) {
	resolve := func(p string) string {
		p = strings.TrimSpace(p)
		if p == "" {
			return ""
		}
		return strings.Replace(p, "~", "/home/u", 1)
	}

	svc := NewCatalogService(newMockScanner(), memory.NewDocumentStore(),
		[]string{"~/snips", " ", "/home/u/snips", "/work", "~/snips"},
		WithResolver(resolve))

	assert.Equal(t, []string{"/home/u/snips", "/work"}, svc.Roots())
}

func TestCatalogService_RootsReturnsCopy(t *testing.T) {
	svc := NewCatalogService(newMockScanner(), memory.NewDocumentStore(), []string{"/a"})
	roots := svc.Roots()
	roots[0] = "/mutated"
	assert.Equal(t, []string{"/a"}, svc.Roots())
}

func TestCatalogService_Reload_ConcatenatesInRootOrder(t *testing.T) {
	scanner := newMockScanner().
		withDocs("/b", doc("b1", "B1", ".")).
		withDocs("/a", doc("a1", "A1", "."), doc("a2", "A2", "x"))
	scanner.results["/a"].Errors = []domain.FileError{{Path: "/a/bad.md", Err: errBoom}}
	store := memory.NewDocumentStore()

	svc := NewCatalogService(scanner, store, []string{"/a", "/b"})
	catalog, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, catalog.Roots)
	require.Len(t, catalog.Documents, 3)
	assert.Equal(t, "a1", catalog.Documents[0].ID)
	assert.Equal(t, "a2", catalog.Documents[1].ID)
	assert.Equal(t, "b1", catalog.Documents[2].ID)
	require.Len(t, catalog.Errors, 1)
	assert.Equal(t, "/a/bad.md", catalog.Errors[0].Path)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCatalogService_Reload_PartialRootFailure(t *testing.T) {
	scanner := newMockScanner().withDocs("/ok", doc("d1", "D1", "."))
	scanner.errs["/gone"] = errBoom

	svc := NewCatalogService(scanner, memory.NewDocumentStore(), []string{"/gone", "/ok"})
	catalog, err := svc.Reload(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Documents, 1)
	require.Len(t, catalog.Errors, 1)
	assert.Equal(t, "/gone", catalog.Errors[0].Path)
	assert.ErrorIs(t, &catalog.Errors[0], domain.ErrRootUnreadable)
	assert.ErrorIs(t, &catalog.Errors[0], errBoom)
}

func TestCatalogService_Reload_AllRootsFail(t *testing.T) {
	scanner := newMockScanner()
	scanner.errs["/a"] = errBoom
	scanner.errs["/b"] = domain.ErrRootUnreadable
	store := memory.NewDocumentStore()
	require.NoError(t, store.ReplaceAll(context.Background(), []domain.Document{doc("old", "Old", ".")}))

	svc := NewCatalogService(scanner, store, []string{"/a", "/b"})
	catalog, err := svc.Reload(context.Background())

	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, domain.ErrRootUnreadable)
	assert.ErrorIs(t, err, errBoom)

	count, _ := store.Count(context.Background())
	assert.Equal(t, 1, count, "failed reload keeps the previous snapshot")
}

func TestCatalogService_Reload_NoRoots(t *testing.T) {
	svc := NewCatalogService(newMockScanner(), memory.NewDocumentStore(), []string{"", "  "})
	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoRoots)
}

func TestCatalogService_Reload_MissingDependencies(t *testing.T) {
	svc := NewCatalogService(nil, nil, []string{"/a"})
	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Reload_StoreFailure(t *testing.T) {
	svc := NewCatalogService(newMockScanner(), failingStore{}, []string{"/a"})
	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestCatalogService_Reload_IsWholesale(t *testing.T) {
	scanner := newMockScanner().withDocs("/a", doc("one", "One", "."))
	store := memory.NewDocumentStore()
	svc := NewCatalogService(scanner, store, []string{"/a"})

	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	scanner.withDocs("/a", doc("two", "Two", "."))
	_, err = svc.Reload(context.Background())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "one")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	got, err := svc.Get(context.Background(), "two")
	require.NoError(t, err)
	assert.Equal(t, "Two", got.Title)
	assert.Equal(t, 2, scanner.callCount())
}

func TestCatalogService_Facets(t *testing.T) {
	scanner := newMockScanner().withDocs("/a",
		doc("1", "One", "git", "vcs", "cli"),
		doc("2", "Two", ".", "cli"),
		doc("3", "Three", "git"))

	svc := NewCatalogService(scanner, memory.NewDocumentStore(), []string{"/a"})
	catalog, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{".", "git"}, catalog.Folders())
	assert.Equal(t, []string{"cli", "vcs"}, catalog.Tags())
}

func TestCatalogService_List(t *testing.T) {
	scanner := newMockScanner().withDocs("/a",
		doc("1", "zsh", "shell", "cli"),
		doc("2", "git", "vcs", "cli"),
		doc("3", "bash", "shell"))

	svc := NewCatalogService(scanner, memory.NewDocumentStore(), []string{"/a"})
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"bash", "git", "zsh"}},
		{"all", []string{"bash", "git", "zsh"}},
		{"bogus", []string{"bash", "git", "zsh"}},
		{"folder:shell", []string{"bash", "zsh"}},
		{"tag:cli", []string{"git", "zsh"}},
		{"tag:none", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			docs, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)
			titles := make([]string, 0, len(docs))
			for _, d := range docs {
				titles = append(titles, d.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestCatalogService_List_StoreError(t *testing.T) {
	svc := NewCatalogService(newMockScanner(), failingStore{}, []string{"/a"})
	_, err := svc.List(context.Background(), "all")
	assert.ErrorIs(t, err, errBoom)
}

func TestCatalogService_Get_EmptyID(t *testing.T) {
	svc := NewCatalogService(newMockScanner(), memory.NewDocumentStore(), []string{"/a"})
	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
