package driven

// SentimentScorer classifies text polarity.
type SentimentScorer interface {
	// Score returns one of the domain.Sentiment* labels. It is
	// deterministic for a fixed lexicon and safe for concurrent use.
	// Unlike the other scorers it does not convert internal failures
	// into a sentinel; a failure fails the request.
	Score(text string) string
}

// KeywordExtractor extracts up to limit keywords from text.
type KeywordExtractor interface {
	// Extract never fails: every degraded path returns an empty slice.
	Extract(text string, limit int) []string
}

// ReadabilityScorer computes a grade-level readability score.
type ReadabilityScorer interface {
	// Score returns the grade level, or domain.ReadabilityFailed when
	// the metric cannot be computed.
	Score(text string) float64
}

// TextMetrics computes word and sentence counts from raw text.
type TextMetrics interface {
	// WordCount returns the number of whitespace-delimited tokens.
	WordCount(text string) int

	// SentenceCount returns the number of sentences, falling back to a
	// delimiter split when the primary tokenizer fails.
	SentenceCount(text string) int
}
