package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored documents",
	Long: `Performs a case-insensitive substring search across document titles
and content. An empty query lists every document without snippets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	matches, err := documentService.Search(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, matches)
	}
	return outputSearchList(cmd, matches)
}

func outputSearchJSON(cmd *cobra.Command, matches []domain.SearchMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, matches []domain.SearchMatch) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("%d result(s):\n\n", len(matches))
	for i := range matches {
		cmd.Printf("  [%s] %s\n", matches[i].ID, matches[i].Title)
		if matches[i].Snippet != "" {
			cmd.Printf("      %s\n", matches[i].Snippet)
		}
	}
	return nil
}
