package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/snapshot"
	"github.com/custodia-labs/docsight-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch to reload the document collection whenever the snapshot
file changes on disk.

Examples:
  # Stdio mode (default, for Claude Desktop)
  docsight mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  docsight mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "docsight": {
        "command": "/path/to/docsight",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "reload documents when the snapshot file changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Analysis: analysisService,
		Document: documentService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if watch {
		watcher, err := snapshot.NewWatcher(snapshotPath, func(docs []domain.Document) {
			documentStore.ReplaceAll(ctx, docs)
			logger.Info("reloaded %d documents from %s", len(docs), snapshotPath)
		})
		if err != nil {
			return fmt.Errorf("watching snapshot: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		go func() { _ = watcher.Run(ctx) }()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
