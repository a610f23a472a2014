// Package memory provides the in-memory implementation of the
// document store. The collection lives for the lifetime of the
// process; the only bulk write paths are the startup snapshot load and
// live reload.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
//
// Documents are held in a single ordered slice guarded by one RWMutex.
// Insertion order is the only ordering guarantee. Id uniqueness is not
// enforced on append; Get returns the first match in insertion order.
type DocumentStore struct {
	mu        sync.RWMutex
	documents []domain.Document
}

// NewDocumentStore creates an empty in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// All returns a snapshot copy of the full collection.
func (s *DocumentStore) All(_ context.Context) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// Get returns the first document with the given id, or domain.ErrNotFound.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.documents {
		if s.documents[i].ID == id {
			doc := s.documents[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Append adds a document to the end of the collection and returns its
// final id. The id assignment, word-count computation and push all run
// inside one critical section so concurrent appends cannot observe the
// same size and compute a duplicate "user_<n+1>" id.
func (s *DocumentStore) Append(_ context.Context, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = fmt.Sprintf("user_%d", len(s.documents)+1)
	}
	doc.WordCount = domain.CountWords(doc.Content)
	s.documents = append(s.documents, doc)

	return doc.ID, nil
}

// Search performs a case-insensitive substring match against title and
// content. Matches carry a snippet: the first 100 characters of content
// with a "..." suffix, appended regardless of content length.
//
// The empty query, or a whitespace-only query that matched nothing,
// returns every document as an {id, title} pair with no snippet. The
// two response shapes are deliberate and must not be merged.
func (s *DocumentStore) Search(_ context.Context, query string) []domain.SearchMatch {
	queryLower := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	// The empty query skips matching entirely and takes the listing
	// path below; every string contains the empty substring, so running
	// it through the match loop would return all documents with
	// snippets instead. Whitespace-only queries match like any other.
	results := []domain.SearchMatch{}
	if query != "" {
		for i := range s.documents {
			doc := &s.documents[i]
			title := strings.ToLower(doc.Title)
			content := strings.ToLower(doc.Content)

			if strings.Contains(title, queryLower) || strings.Contains(content, queryLower) {
				results = append(results, domain.SearchMatch{
					ID:      doc.ID,
					Title:   doc.Title,
					Snippet: snippet(doc.Content),
				})
			}
		}
	}

	if len(results) == 0 && strings.TrimSpace(query) == "" {
		for i := range s.documents {
			results = append(results, domain.SearchMatch{
				ID:    s.documents[i].ID,
				Title: s.documents[i].Title,
			})
		}
	}

	return results
}

// ReplaceAll swaps the entire collection for docs.
func (s *DocumentStore) ReplaceAll(_ context.Context, docs []domain.Document) {
	replacement := make([]domain.Document, len(docs))
	copy(replacement, docs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = replacement
}

// Len returns the current collection size.
func (s *DocumentStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// snippet returns the first SnippetLength characters of content with
// the literal "..." suffix. The suffix is always appended, even for
// short content; existing consumers depend on this shape. Truncation
// counts runes so multi-byte content is never cut mid-character.
func snippet(content string) string {
	if utf8.RuneCountInString(content) > domain.SnippetLength {
		runes := []rune(content)
		content = string(runes[:domain.SnippetLength])
	}
	return content + "..."
}
