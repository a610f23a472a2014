// Package keywords extracts representative keywords from text.
//
// Long-enough text is split on the literal ". " delimiter into
// pseudo-sentences, which act as the synthetic documents of a TF-IDF
// vocabulary build; the vocabulary is capped and returned in
// alphabetical order, mirroring a conventional vectoriser. Output order
// is therefore not a relevance ranking; this is a known quality
// limitation of the approach, not part of the contract.
//
// Text with fewer than two pseudo-sentences falls back to a plain
// word-frequency count. Every degraded path returns an empty slice;
// extraction never fails.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
)

// minTokens is the minimum whitespace-token count for extraction.
const minTokens = 3

// pseudoSentenceDelim splits text into the synthetic documents used by
// the TF-IDF vocabulary build.
const pseudoSentenceDelim = ". "

// tokenPattern matches word tokens of at least two word characters,
// the conventional vectoriser token shape.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Ensure Extractor implements the interface.
var _ driven.KeywordExtractor = (*Extractor)(nil)

// Extractor implements keyword extraction. It is stateless and safe
// for concurrent use.
type Extractor struct{}

// New creates a keyword Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns up to limit keywords for text. It never fails: empty
// input, short input, and degenerate vocabularies all yield an empty
// slice.
func (e *Extractor) Extract(text string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	if text == "" || len(strings.Fields(text)) < minTokens {
		return []string{}
	}

	pseudoSentences := strings.Split(text, pseudoSentenceDelim)
	if len(pseudoSentences) < 2 {
		return frequencyFallback(text, limit)
	}

	return tfidfVocabulary(pseudoSentences, limit)
}

// frequencyFallback counts raw lowercase whitespace tokens, dropping
// stop-words and tokens of length <= 2, and returns the limit
// highest-count tokens. Ties keep first-seen order: the sort is stable
// over entries recorded in encounter order.
func frequencyFallback(text string, limit int) []string {
	type entry struct {
		word  string
		count int
	}

	counts := make(map[string]int)
	var order []entry

	for _, word := range strings.Fields(strings.ToLower(text)) {
		if isStopWord(word) || len(word) <= 2 {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, entry{word: word})
		}
		counts[word]++
	}

	for i := range order {
		order[i].count = counts[order[i].word]
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if len(order) > limit {
		order = order[:limit]
	}
	result := make([]string, len(order))
	for i, e := range order {
		result[i] = e.word
	}
	return result
}

// tfidfVocabulary builds a capped vocabulary over the pseudo-sentence
// corpus. Features are selected by total term frequency across the
// corpus (the vectoriser's max_features rule) and returned in
// alphabetical vocabulary order.
func tfidfVocabulary(pseudoSentences []string, limit int) []string {
	totals := make(map[string]int)

	for _, ps := range pseudoSentences {
		for _, token := range tokenPattern.FindAllString(strings.ToLower(ps), -1) {
			if isStopWord(token) {
				continue
			}
			totals[token]++
		}
	}

	if len(totals) == 0 {
		return []string{}
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	// Alphabetical first so the frequency cut breaks ties consistently.
	sort.Strings(terms)
	sort.SliceStable(terms, func(i, j int) bool {
		return totals[terms[i]] > totals[terms[j]]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	sort.Strings(terms)
	return terms
}
