// Package readability scores text with the Flesch-Kincaid grade level
// formula.
//
// Sentence boundaries come from a Punkt-style tokenizer; syllables use
// a vowel-group heuristic. Any input the formula cannot handle (no
// words, no sentences) yields the -1.0 sentinel rather than an error,
// preserving the scorer's sentinel contract.
package readability

import (
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
)

// Flesch-Kincaid grade level coefficients.
const (
	wordsPerSentenceWeight = 0.39
	syllablesPerWordWeight = 11.8
	gradeOffset            = 15.59
)

// Ensure Scorer implements the interface.
var _ driven.ReadabilityScorer = (*Scorer)(nil)

// Scorer computes Flesch-Kincaid grade levels. Safe for concurrent
// use; tokenisation does not mutate shared state.
type Scorer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New creates a Scorer. When the embedded English training data cannot
// be loaded, every score degrades to the sentinel.
func New() *Scorer {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		tokenizer = nil
	}
	return &Scorer{tokenizer: tokenizer}
}

// Score returns the Flesch-Kincaid grade level for text, or
// domain.ReadabilityFailed when it cannot be computed. The empty
// string has no words and therefore returns the sentinel.
func (s *Scorer) Score(text string) float64 {
	if s.tokenizer == nil {
		return domain.ReadabilityFailed
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return domain.ReadabilityFailed
	}

	sentenceCount := len(s.tokenizer.Tokenize(text))
	if sentenceCount == 0 {
		return domain.ReadabilityFailed
	}

	syllableCount := 0
	for _, word := range words {
		syllableCount += countSyllables(word)
	}

	wordCount := float64(len(words))
	return wordsPerSentenceWeight*(wordCount/float64(sentenceCount)) +
		syllablesPerWordWeight*(float64(syllableCount)/wordCount) -
		gradeOffset
}

// countSyllables estimates syllables as the number of vowel groups,
// discounting a silent trailing 'e' (but not an '-le' ending, which
// carries its own syllable). Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimRightFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
