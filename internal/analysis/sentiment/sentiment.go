// Package sentiment classifies text polarity using the VADER lexicon.
//
// The compound polarity score is a scalar in [-1, 1]; classification
// applies fixed thresholds: >= 0.05 positive, <= -0.05 negative,
// neutral otherwise. The thresholds are not configurable.
package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
)

// Compound polarity thresholds.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Ensure Scorer implements the interface.
var _ driven.SentimentScorer = (*Scorer)(nil)

// Scorer classifies text with a VADER analyzer. The analyzer is
// allocated once and reused; polarity scoring only reads the lexicon,
// so a Scorer is safe for concurrent use.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a Scorer with a freshly initialised VADER analyzer.
func New() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns one of the domain.Sentiment* labels for text.
func (s *Scorer) Score(text string) string {
	compound := s.analyzer.PolarityScores(text).Compound

	switch {
	case compound >= PositiveThreshold:
		return domain.SentimentPositive
	case compound <= NegativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
