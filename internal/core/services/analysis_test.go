package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// Fixed-answer scorers keep these tests about orchestration, not about
// the scoring algorithms themselves.

type fakeSentiment struct{ result string }

func (f *fakeSentiment) Score(string) string { return f.result }

type fakeKeywords struct {
	result []string
	limit  int
}

func (f *fakeKeywords) Extract(_ string, limit int) []string {
	f.limit = limit
	return f.result
}

type fakeReadability struct{ result float64 }

func (f *fakeReadability) Score(string) float64 { return f.result }

type fakeMetrics struct {
	words     int
	sentences int
}

func (f *fakeMetrics) WordCount(string) int     { return f.words }
func (f *fakeMetrics) SentenceCount(string) int { return f.sentences }

func newTestAnalysisService(t *testing.T, docs ...domain.Document) (*AnalysisService, *fakeKeywords) {
	t.Helper()

	store := memory.NewDocumentStore()
	for _, doc := range docs {
		_, err := store.Append(context.Background(), doc)
		require.NoError(t, err)
	}

	keywords := &fakeKeywords{result: []string{"alpha", "beta"}}
	svc := NewAnalysisService(
		store,
		&fakeSentiment{result: domain.SentimentPositive},
		keywords,
		&fakeReadability{result: 7.2},
		&fakeMetrics{words: 42, sentences: 3},
	)
	return svc, keywords
}

func TestAnalysisService_Analyze_CombinesAllScorers(t *testing.T) {
	svc, _ := newTestAnalysisService(t, domain.Document{
		ID:      "doc-1",
		Title:   "Go Concurrency",
		Content: "Goroutines are cheap. Channels coordinate them.",
	})

	analysis, err := svc.Analyze(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "doc-1", analysis.ID)
	assert.Equal(t, "Go Concurrency", analysis.Title)
	assert.Equal(t, domain.SentimentPositive, analysis.Sentiment)
	assert.Equal(t, []string{"alpha", "beta"}, analysis.Keywords)
	assert.Equal(t, 7.2, analysis.Readability)
	assert.Equal(t, 42, analysis.Stats.WordCount)
	assert.Equal(t, 3, analysis.Stats.SentenceCount)
}

func TestAnalysisService_Analyze_UsesDefaultKeywordLimit(t *testing.T) {
	svc, keywords := newTestAnalysisService(t, domain.Document{
		ID:      "doc-1",
		Title:   "Anything",
		Content: "Some content.",
	})

	_, err := svc.Analyze(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultKeywordLimit, keywords.limit)
}

func TestAnalysisService_Analyze_UnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newTestAnalysisService(t)

	_, err := svc.Analyze(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisService_Analyze_NilStoreReturnsNotImplemented(t *testing.T) {
	svc := &AnalysisService{}

	_, err := svc.Analyze(context.Background(), "doc-1")

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestAnalysisService_Sentiment_DelegatesToScorer(t *testing.T) {
	svc, _ := newTestAnalysisService(t)

	result, err := svc.Sentiment(context.Background(), "wonderful")
	require.NoError(t, err)

	assert.Equal(t, domain.SentimentPositive, result)
}

func TestAnalysisService_Keywords_NonPositiveLimitFallsBack(t *testing.T) {
	svc, keywords := newTestAnalysisService(t)

	_, err := svc.Keywords(context.Background(), "some text", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultKeywordLimit, keywords.limit)

	_, err = svc.Keywords(context.Background(), "some text", -3)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultKeywordLimit, keywords.limit)
}

func TestAnalysisService_Keywords_PositiveLimitPassedThrough(t *testing.T) {
	svc, keywords := newTestAnalysisService(t)

	_, err := svc.Keywords(context.Background(), "some text", 8)
	require.NoError(t, err)

	assert.Equal(t, 8, keywords.limit)
}

func TestAnalysisService_Readability_DelegatesToScorer(t *testing.T) {
	svc, _ := newTestAnalysisService(t)

	score, err := svc.Readability(context.Background(), "Readable text.")
	require.NoError(t, err)

	assert.Equal(t, 7.2, score)
}

func TestAnalysisService_NilScorersReturnNotImplemented(t *testing.T) {
	svc := &AnalysisService{}

	_, err := svc.Sentiment(context.Background(), "text")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Keywords(context.Background(), "text", 5)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	score, err := svc.Readability(context.Background(), "text")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, float64(domain.ReadabilityFailed), score)
}
