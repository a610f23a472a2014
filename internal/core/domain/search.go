package domain

// SearchMatch represents a single search hit.
//
// Two shapes exist on the wire: a query match carries a Snippet, while
// the list-everything response to an empty query carries only ID and
// Title. The omitempty tag preserves that distinction, since a match
// snippet always ends in "..." and is therefore never empty.
type SearchMatch struct {
	// ID is the matched document's identifier.
	ID string `json:"id"`

	// Title is the matched document's title.
	Title string `json:"title"`

	// Snippet is the first 100 characters of content with a "..."
	// suffix. The suffix is appended even when the content is shorter
	// than 100 characters; downstream consumers depend on the current
	// shape.
	Snippet string `json:"snippet,omitempty"`
}

// SnippetLength is the number of leading content characters in a
// snippet.
const SnippetLength = 100
