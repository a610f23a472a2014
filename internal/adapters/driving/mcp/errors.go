// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docsight. It exposes the document analysis operations as tools
// that AI assistants can call over stdio or HTTP.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
