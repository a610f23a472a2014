package driving

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// AnalysisService orchestrates document analysis.
type AnalysisService interface {
	// Analyze runs the full analysis for a stored document: sentiment,
	// keywords, readability, and text stats. Returns domain.ErrNotFound
	// when the id is unknown.
	Analyze(ctx context.Context, documentID string) (*domain.Analysis, error)

	// Sentiment classifies arbitrary text.
	Sentiment(ctx context.Context, text string) (string, error)

	// Keywords extracts up to limit keywords from arbitrary text.
	// A limit <= 0 falls back to domain.DefaultKeywordLimit.
	Keywords(ctx context.Context, text string, limit int) ([]string, error)

	// Readability scores arbitrary text, returning
	// domain.ReadabilityFailed when the metric cannot be computed.
	Readability(ctx context.Context, text string) (float64, error)
}

// DocumentService manages the stored document collection.
type DocumentService interface {
	// List returns every stored document in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by id.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// Add appends a document and returns its final id.
	Add(ctx context.Context, doc domain.Document) (string, error)

	// Search performs a substring search over titles and content.
	Search(ctx context.Context, query string) ([]domain.SearchMatch, error)
}
