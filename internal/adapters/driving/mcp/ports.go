package mcp

import (
	"github.com/custodia-labs/docsight-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis runs document and free-text analysis.
	Analysis driving.AnalysisService

	// Document manages the stored document collection.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
