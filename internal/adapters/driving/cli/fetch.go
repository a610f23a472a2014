package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/snapshot"
	"github.com/custodia-labs/docsight-cli/internal/corpus"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Build the sample document corpus",
	Long: `Fetches Wikipedia article summaries and combines them with embedded
news, short-text, and manual samples, then writes the result as a JSON
snapshot. Article titles and the request rate can be overridden via the
fetch.titles and fetch.rate config keys.

Failed article fetches are skipped, so the corpus always includes at
least the embedded samples.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "snapshot file to write (defaults to the configured snapshot path)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	titles := configStore.GetStringSlice("fetch.titles")

	opts := []corpus.FetcherOption{}
	if rate := configStore.GetInt("fetch.rate"); rate > 0 {
		opts = append(opts, corpus.WithRate(rate))
	}

	fetcher := corpus.NewFetcher(opts...)
	docs, err := fetcher.Build(cmd.Context(), titles)
	if err != nil {
		return fmt.Errorf("building corpus: %w", err)
	}

	output := fetchOutput
	if output == "" {
		output = snapshotPath
	}

	if err := snapshot.Save(output, docs); err != nil {
		return fmt.Errorf("saving corpus: %w", err)
	}

	cmd.Printf("Saved %d documents to %s\n", len(docs), output)
	return nil
}
