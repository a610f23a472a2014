package services

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the stored document collection.
type DocumentService struct {
	store driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.DocumentStore) *DocumentService {
	return &DocumentService{store: store}
}

// List returns every stored document in insertion order.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.All(ctx), nil
}

// Get retrieves a document by id.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, documentID)
}

// Add appends a document and returns its final id.
func (s *DocumentService) Add(ctx context.Context, doc domain.Document) (string, error) {
	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	return s.store.Append(ctx, doc)
}

// Search performs a substring search over titles and content.
func (s *DocumentService) Search(ctx context.Context, query string) ([]domain.SearchMatch, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Search(ctx, query), nil
}
