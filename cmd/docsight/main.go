// Command docsight is the document analysis CLI and MCP server.
package main

import (
	"github.com/custodia-labs/docsight-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
