package mcp

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// mockAnalysisService implements driving.AnalysisService for tests.
type mockAnalysisService struct {
	analysis    *domain.Analysis
	sentiment   string
	keywords    []string
	readability float64
	err         error

	lastLimit int
}

func (m *mockAnalysisService) Analyze(_ context.Context, _ string) (*domain.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

func (m *mockAnalysisService) Sentiment(_ context.Context, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.sentiment, nil
}

func (m *mockAnalysisService) Keywords(_ context.Context, _ string, limit int) ([]string, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.keywords, nil
}

func (m *mockAnalysisService) Readability(_ context.Context, _ string) (float64, error) {
	if m.err != nil {
		return domain.ReadabilityFailed, m.err
	}
	return m.readability, nil
}

// mockDocumentService implements driving.DocumentService for tests.
type mockDocumentService struct {
	docs    []domain.Document
	matches []domain.SearchMatch
	addedID string
	err     error

	lastAdded domain.Document
	lastQuery string
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			return &m.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) Add(_ context.Context, doc domain.Document) (string, error) {
	m.lastAdded = doc
	if m.err != nil {
		return "", m.err
	}
	return m.addedID, nil
}

func (m *mockDocumentService) Search(_ context.Context, query string) ([]domain.SearchMatch, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.matches, nil
}
