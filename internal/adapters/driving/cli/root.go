// Package cli implements the docsight command line interface.
// Commands are thin adapters over the core services; all wiring
// happens here so the core stays free of cobra and file paths.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/snapshot"
	"github.com/custodia-labs/docsight-cli/internal/analysis/keywords"
	"github.com/custodia-labs/docsight-cli/internal/analysis/readability"
	"github.com/custodia-labs/docsight-cli/internal/analysis/sentiment"
	"github.com/custodia-labs/docsight-cli/internal/analysis/textmetrics"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsight-cli/internal/core/services"
	"github.com/custodia-labs/docsight-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services shared by the commands. Populated by initServices; tests
// inject their own and set initialized to skip the real wiring.
var (
	initialized     bool
	configStore     driven.ConfigStore
	documentStore   driven.DocumentStore
	analysisService driving.AnalysisService
	documentService driving.DocumentService
	snapshotPath    string
)

var rootCmd = &cobra.Command{
	Use:   "docsight",
	Short: "Analyze text documents for sentiment, keywords, and readability",
	Long: `docsight is a document analysis tool. It keeps a small in-memory
collection of documents, scores them for sentiment, keywords, and
readability, and exposes the same operations to AI assistants as an
MCP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices wires config, snapshot, store, and scorers together.
// A missing or unreadable snapshot degrades to an empty collection so
// the tools stay usable.
func initServices() error {
	if initialized {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store

	snapshotPath = configStore.GetString("snapshot.path")
	if snapshotPath == "" {
		snapshotPath = snapshot.DefaultPath
	}

	docs, err := snapshot.Load(snapshotPath)
	if err != nil {
		logger.Warn("loading snapshot %s: %v; starting with an empty collection", snapshotPath, err)
		docs = nil
	} else {
		logger.Info("loaded %d documents from %s", len(docs), snapshotPath)
	}

	docStore := memory.NewDocumentStore()
	docStore.ReplaceAll(context.Background(), docs)
	documentStore = docStore

	analysisService = services.NewAnalysisService(
		docStore,
		sentiment.New(),
		keywords.New(),
		readability.New(),
		textmetrics.New(),
	)
	documentService = services.NewDocumentService(docStore)

	initialized = true
	return nil
}
