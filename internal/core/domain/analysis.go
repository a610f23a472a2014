package domain

// Sentiment labels returned by sentiment scoring.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ReadabilityFailed is the sentinel returned when the readability
// metric cannot be computed (e.g. no words or no sentences).
const ReadabilityFailed = -1.0

// DefaultKeywordLimit is the keyword cap used by full analysis.
const DefaultKeywordLimit = 5

// TextStats holds basic counts computed from document content.
type TextStats struct {
	// WordCount is the number of whitespace-delimited tokens.
	WordCount int `json:"word_count"`

	// SentenceCount is the number of sentences.
	SentenceCount int `json:"sentence_count"`
}

// Analysis is the combined result of a full document analysis.
type Analysis struct {
	// ID is the analysed document's identifier.
	ID string `json:"id"`

	// Title is the analysed document's title.
	Title string `json:"title"`

	// Sentiment is one of the Sentiment* labels.
	Sentiment string `json:"sentiment"`

	// Keywords holds up to DefaultKeywordLimit extracted keywords.
	// Empty when extraction degraded.
	Keywords []string `json:"keywords"`

	// Readability is the Flesch-Kincaid grade level, or
	// ReadabilityFailed when the metric could not be computed.
	Readability float64 `json:"readability"`

	// Stats holds word and sentence counts.
	Stats TextStats `json:"stats"`
}
