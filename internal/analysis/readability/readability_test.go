package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

func TestScorer_Score_EmptyTextReturnsSentinel(t *testing.T) {
	s := New()

	assert.Equal(t, float64(domain.ReadabilityFailed), s.Score(""))
}

func TestScorer_Score_WhitespaceOnlyReturnsSentinel(t *testing.T) {
	s := New()

	assert.Equal(t, float64(domain.ReadabilityFailed), s.Score("   \n\t"))
}

func TestScorer_Score_SimpleTextScoresLow(t *testing.T) {
	s := New()

	// Short words, short sentences: early grade levels.
	simple := "The cat sat. The dog ran. We had fun."

	score := s.Score(simple)

	assert.NotEqual(t, float64(domain.ReadabilityFailed), score)
	assert.Less(t, score, 5.0)
}

func TestScorer_Score_ComplexTextScoresHigher(t *testing.T) {
	s := New()

	simple := "The cat sat. The dog ran. We had fun."
	complex := "Institutional heterogeneity significantly complicates interdisciplinary " +
		"collaboration, particularly when organisational incentives remain fundamentally misaligned."

	assert.Greater(t, s.Score(complex), s.Score(simple))
}

func TestScorer_Score_NoTokenizerReturnsSentinel(t *testing.T) {
	s := &Scorer{}

	assert.Equal(t, float64(domain.ReadabilityFailed), s.Score("Some readable text here."))
}

func TestCountSyllables(t *testing.T) {
	assert.Equal(t, 1, countSyllables("cat"))
	assert.Equal(t, 2, countSyllables("table"))
	assert.Equal(t, 3, countSyllables("beautiful"))
	assert.Equal(t, 1, countSyllables("tsk"))  // no vowels still counts one
	assert.Equal(t, 1, countSyllables("make")) // silent e discounted
}
