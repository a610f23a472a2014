package cli

import (
	"context"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsight-cli/internal/analysis/keywords"
	"github.com/custodia-labs/docsight-cli/internal/analysis/readability"
	"github.com/custodia-labs/docsight-cli/internal/analysis/sentiment"
	"github.com/custodia-labs/docsight-cli/internal/analysis/textmetrics"
	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/core/services"
)

// setupTestServices wires real services over an in-memory store seeded
// with a few documents, bypassing config and snapshot loading. The
// returned cleanup restores the previous state.
func setupTestServices(docs ...domain.Document) func() {
	prevInitialized := initialized
	prevStore := documentStore
	prevAnalysis := analysisService
	prevDocument := documentService
	prevPath := snapshotPath

	store := memory.NewDocumentStore()
	for _, doc := range docs {
		_, _ = store.Append(context.Background(), doc)
	}

	documentStore = store
	analysisService = services.NewAnalysisService(
		store,
		sentiment.New(),
		keywords.New(),
		readability.New(),
		textmetrics.New(),
	)
	documentService = services.NewDocumentService(store)
	snapshotPath = ""
	initialized = true

	return func() {
		initialized = prevInitialized
		documentStore = prevStore
		analysisService = prevAnalysis
		documentService = prevDocument
		snapshotPath = prevPath
	}
}

// clearTestServices nils the service vars so nil-guard paths can be
// exercised. The returned cleanup restores the previous state.
func clearTestServices() func() {
	prevInitialized := initialized
	prevAnalysis := analysisService
	prevDocument := documentService

	analysisService = nil
	documentService = nil
	initialized = true

	return func() {
		initialized = prevInitialized
		analysisService = prevAnalysis
		documentService = prevDocument
	}
}
