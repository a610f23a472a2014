package driven

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// DocumentStore is the single authoritative mutable document collection.
//
// Implementations must preserve insertion order, guard every operation
// with one mutual-exclusion guard, and hand out copies rather than
// references into internal state. The guard must never be held across
// a scorer call.
type DocumentStore interface {
	// All returns a copy of the full collection, taken at a single
	// consistent point in time.
	All(ctx context.Context) []domain.Document

	// Get returns the first document with the given id in insertion
	// order, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Append adds a document to the end of the collection and returns
	// its final id. A missing id is assigned as "user_<n+1>" where n is
	// the store size at the moment of assignment; the size read and the
	// push happen inside the same critical section so two concurrent
	// appends cannot compute the same id. WordCount is recomputed from
	// Content.
	Append(ctx context.Context, doc domain.Document) (string, error)

	// Search performs a case-insensitive substring match against title
	// and content. A whitespace-only query matches like any other. The
	// empty query, or a whitespace-only query that matches nothing,
	// returns every document as an {id, title} pair instead.
	Search(ctx context.Context, query string) []domain.SearchMatch

	// ReplaceAll swaps the entire collection, used by the startup
	// snapshot load and live reload.
	ReplaceAll(ctx context.Context, docs []domain.Document)

	// Len returns the current collection size.
	Len(ctx context.Context) int
}
