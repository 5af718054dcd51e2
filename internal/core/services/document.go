package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driving"
	"github.com/custodia-labs/snipsurf/internal/logger"
	"github.com/custodia-labs/snipsurf/internal/postprocessors/outline"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService navigates headings and sections of catalog documents.
type DocumentService struct {
	catalog driving.CatalogService
}

// NewDocumentService creates a document service over a catalog.
func NewDocumentService(catalog driving.CatalogService) *DocumentService {
	return &DocumentService{catalog: catalog}
}

// Get retrieves a document by ID. An ID missing from the snapshot triggers
// one reload, so files added since the last reload are found.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if s.catalog == nil {
		return nil, fmt.Errorf("document: %w: catalog is required", domain.ErrInvalidInput)
	}

	doc, err := s.catalog.Get(ctx, documentID)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return doc, err
	}

	logger.Debug("document not in snapshot, reloading", "id", documentID)
	if _, err := s.catalog.Reload(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Get(ctx, documentID)
}

// Outline returns the headings of the document in order.
func (s *DocumentService) Outline(ctx context.Context, documentID string) ([]domain.Heading, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	headings := outline.ExtractHeadings(doc.Body)
	if headings == nil {
		headings = []domain.Heading{}
	}
	return headings, nil
}

// Section returns the text under the heading with headingID. An unknown
// heading ID is ErrNotFound.
func (s *DocumentService) Section(ctx context.Context, documentID, headingID string) (string, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return "", err
	}
	h, ok := outline.FindHeading(doc.Body, headingID)
	if !ok {
		return "", fmt.Errorf("heading %q: %w", headingID, domain.ErrNotFound)
	}
	return outline.ExtractSection(doc.Body, h), nil
}

// Pastable returns the body with a single wrapping code fence removed.
func (s *DocumentService) Pastable(ctx context.Context, documentID string) (string, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return "", err
	}
	return outline.Pastable(doc.Body), nil
}
