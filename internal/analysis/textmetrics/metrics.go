// Package textmetrics computes word and sentence counts from raw text.
//
// Word counting is a pure whitespace split. Sentence counting delegates
// to a Punkt-style tokenizer and falls back to a delimiter split when
// the tokenizer is unavailable.
package textmetrics

import (
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.TextMetrics = (*Metrics)(nil)

// sentenceDelims matches runs of sentence-ending punctuation, used by
// the fallback counter.
var sentenceDelims = regexp.MustCompile(`[.!?]+`)

// Metrics computes text statistics. The zero value is not usable;
// construct with New.
type Metrics struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New creates a Metrics instance. When the embedded English training
// data cannot be loaded, sentence counting uses the delimiter fallback.
func New() *Metrics {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		tokenizer = nil
	}
	return &Metrics{tokenizer: tokenizer}
}

// WordCount returns the number of whitespace-delimited tokens.
func (m *Metrics) WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount returns the number of sentences in text. The primary
// path uses the Punkt tokenizer; without one it counts the segments
// produced by splitting on runs of '.', '!' and '?'.
func (m *Metrics) SentenceCount(text string) int {
	if m.tokenizer != nil {
		return len(m.tokenizer.Tokenize(text))
	}
	return len(sentenceDelims.Split(text, -1))
}
