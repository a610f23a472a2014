package services

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driving"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService orchestrates full document analysis. It fetches the
// document from the store, then runs each scorer outside the store
// guard; the scorers are independent and share no mutable state.
type AnalysisService struct {
	store       driven.DocumentStore
	sentiment   driven.SentimentScorer
	keywords    driven.KeywordExtractor
	readability driven.ReadabilityScorer
	metrics     driven.TextMetrics
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	store driven.DocumentStore,
	sentiment driven.SentimentScorer,
	keywords driven.KeywordExtractor,
	readability driven.ReadabilityScorer,
	metrics driven.TextMetrics,
) *AnalysisService {
	return &AnalysisService{
		store:       store,
		sentiment:   sentiment,
		keywords:    keywords,
		readability: readability,
		metrics:     metrics,
	}
}

// Analyze runs the full analysis for a stored document. Returns
// domain.ErrNotFound when the id is unknown; the tool boundary turns
// that into a structured reply rather than a protocol failure.
//
// Keyword extraction and readability degrade to their sentinels (empty
// slice, -1.0) internally; a sentiment failure would fail this one
// request, which is the accepted contract.
func (s *AnalysisService) Analyze(ctx context.Context, documentID string) (*domain.Analysis, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	doc, err := s.store.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	content := doc.Content

	return &domain.Analysis{
		ID:          doc.ID,
		Title:       doc.Title,
		Sentiment:   s.sentiment.Score(content),
		Keywords:    s.keywords.Extract(content, domain.DefaultKeywordLimit),
		Readability: s.readability.Score(content),
		Stats: domain.TextStats{
			WordCount:     s.metrics.WordCount(content),
			SentenceCount: s.metrics.SentenceCount(content),
		},
	}, nil
}

// Sentiment classifies arbitrary text.
func (s *AnalysisService) Sentiment(_ context.Context, text string) (string, error) {
	if s.sentiment == nil {
		return "", domain.ErrNotImplemented
	}
	return s.sentiment.Score(text), nil
}

// Keywords extracts up to limit keywords from arbitrary text. A
// non-positive limit falls back to domain.DefaultKeywordLimit.
func (s *AnalysisService) Keywords(_ context.Context, text string, limit int) ([]string, error) {
	if s.keywords == nil {
		return nil, domain.ErrNotImplemented
	}
	if limit <= 0 {
		limit = domain.DefaultKeywordLimit
	}
	return s.keywords.Extract(text, limit), nil
}

// Readability scores arbitrary text.
func (s *AnalysisService) Readability(_ context.Context, text string) (float64, error) {
	if s.readability == nil {
		return domain.ReadabilityFailed, domain.ErrNotImplemented
	}
	return s.readability.Score(text), nil
}
