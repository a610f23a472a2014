package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/snapshot"
	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the document collection",
	Long:  `List, view, and add documents in the in-memory collection.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [title] [content]",
	Short: "Add a document",
	Long: `Adds a document to the collection. Without --id the document is
assigned the next user_<n> id. Use --save to persist the updated
collection back to the snapshot file.`,
	Args: cobra.ExactArgs(2),
	RunE: runDocumentAdd,
}

var (
	documentAddID       string
	documentAddSource   string
	documentAddCategory string
	documentAddURL      string
	documentAddSave     bool
)

func init() {
	documentAddCmd.Flags().StringVar(&documentAddID, "id", "", "document id (generated as user_<n> when omitted)")
	documentAddCmd.Flags().StringVar(&documentAddSource, "source", "", "where the document came from")
	documentAddCmd.Flags().StringVar(&documentAddCategory, "category", "", "a free-form category label")
	documentAddCmd.Flags().StringVar(&documentAddURL, "url", "", "the document's source URL")
	documentAddCmd.Flags().BoolVar(&documentAddSave, "save", false, "write the collection back to the snapshot file")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentAddCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the collection.")
		return nil
	}

	cmd.Printf("%d document(s):\n\n", len(docs))
	for i := range docs {
		cmd.Printf("  [%s] %s (%d words)\n", docs[i].ID, docs[i].Title, docs[i].WordCount)
	}
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("document %q not found", args[0])
		}
		return fmt.Errorf("getting document: %w", err)
	}

	cmd.Printf("%s (%s)\n", doc.Title, doc.ID)
	if doc.Source != "" {
		cmd.Printf("  Source:   %s\n", doc.Source)
	}
	if doc.Category != "" {
		cmd.Printf("  Category: %s\n", doc.Category)
	}
	if doc.URL != "" {
		cmd.Printf("  URL:      %s\n", doc.URL)
	}
	cmd.Printf("  Words:    %d\n", doc.WordCount)
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	id, err := documentService.Add(ctx, domain.Document{
		ID:       documentAddID,
		Title:    args[0],
		Content:  args[1],
		Source:   documentAddSource,
		Category: documentAddCategory,
		URL:      documentAddURL,
	})
	if err != nil {
		return fmt.Errorf("adding document: %w", err)
	}

	cmd.Printf("Added document %s\n", id)

	if documentAddSave {
		docs, err := documentService.List(ctx)
		if err != nil {
			return fmt.Errorf("reading collection for save: %w", err)
		}
		if err := snapshot.Save(snapshotPath, docs); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		cmd.Printf("Saved %d documents to %s\n", len(docs), snapshotPath)
	}
	return nil
}
