package domain

import "strings"

// Document represents a stored text record with metadata.
// It is the unit of analysis and search, and the shape persisted
// in the JSON snapshot file.
type Document struct {
	// ID is the document identifier. Uniqueness is not enforced by the
	// store; lookups return the first match in insertion order.
	ID string `json:"id"`

	// Title is the human-readable display label.
	Title string `json:"title"`

	// Content is the analysable text body.
	Content string `json:"content"`

	// Source names where the document came from (e.g. "Wikipedia").
	// Opaque metadata, passed through unchanged.
	Source string `json:"source,omitempty"`

	// Category is an opaque grouping label.
	Category string `json:"category,omitempty"`

	// Date is an opaque timestamp string set by the producer.
	Date string `json:"date,omitempty"`

	// URL is the original location, when known.
	URL string `json:"url,omitempty"`

	// WordCount is the whitespace-token count of Content. It is
	// computed when the document is appended and not recomputed on read.
	WordCount int `json:"word_count"`

	// SentimentHint is an optional producer-supplied label. The store
	// never interprets it.
	SentimentHint string `json:"sentiment_hint,omitempty"`
}

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
