// Package snapshot reads and writes the JSON document snapshot.
//
// The snapshot is a single indented UTF-8 JSON array of documents,
// produced offline by the corpus fetcher and loaded once at process
// start. An unreadable or malformed snapshot degrades to an empty
// corpus; it never fails startup.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// DefaultPath is the snapshot filename used when none is configured.
const DefaultPath = "sample_documents.json"

// Load reads a document snapshot from path.
//
// Any I/O or parse failure returns the error alongside an empty slice;
// callers log and continue with an empty corpus rather than aborting.
func Load(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return docs, nil
}

// Save writes docs to path as an indented JSON array.
func Save(path string, docs []domain.Document) error {
	if docs == nil {
		docs = []domain.Document{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
