package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// AnalyzeInput is the input schema for the analyze_document tool.
type AnalyzeInput struct {
	DocumentID string `json:"document_id" jsonschema:"the id of the stored document to analyze"`
}

// AnalyzeOutput is the output schema for the analyze_document tool.
// An unknown id fills Error and leaves the analysis fields zeroed, so
// the caller always receives a structured reply. The analysis fields
// carry no omitempty: a grade of exactly 0 or an empty keyword list is
// a legitimate result and must stay on the wire.
type AnalyzeOutput struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title,omitempty"`
	Sentiment   string        `json:"sentiment"`
	Keywords    []string      `json:"keywords"`
	Readability float64       `json:"readability"`
	Stats       *AnalyzeStats `json:"stats"`
	Error       string        `json:"error,omitempty"`
}

// AnalyzeStats carries the text statistics of an analysis.
type AnalyzeStats struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}

// SentimentInput is the input schema for the get_sentiment tool.
type SentimentInput struct {
	Text string `json:"text" jsonschema:"the text to classify"`
}

// SentimentOutput is the output schema for the get_sentiment tool.
type SentimentOutput struct {
	Sentiment string `json:"sentiment"`
}

// KeywordsInput is the input schema for the extract_keywords tool.
type KeywordsInput struct {
	Text  string `json:"text" jsonschema:"the text to extract keywords from"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of keywords to return (default 5)"`
}

// KeywordsOutput is the output schema for the extract_keywords tool.
type KeywordsOutput struct {
	Keywords []string `json:"keywords"`
}

// AddDocumentInput is the input schema for the add_document tool. All
// document fields pass through; an omitted id is assigned by the store
// as the next user_<n>.
type AddDocumentInput struct {
	ID            string `json:"id,omitempty" jsonschema:"the document id; generated as user_<n> when omitted"`
	Title         string `json:"title" jsonschema:"the document title"`
	Content       string `json:"content" jsonschema:"the document body text"`
	Source        string `json:"source,omitempty" jsonschema:"where the document came from"`
	Category      string `json:"category,omitempty" jsonschema:"a free-form category label"`
	Date          string `json:"date,omitempty" jsonschema:"the document date, RFC 3339"`
	URL           string `json:"url,omitempty" jsonschema:"the document's source URL"`
	SentimentHint string `json:"sentiment_hint,omitempty" jsonschema:"the expected sentiment label, for eyeballing scorer output"`
}

// AddDocumentOutput is the output schema for the add_document tool.
type AddDocumentOutput struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the substring to search for in titles and content"`
}

// SearchResultOutput represents a single search result. Snippet is
// omitted when the query was empty and the reply is a bare listing.
type SearchResultOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
}

// SearchOutput is the output schema for the search_documents tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_document",
		Description: "Run full analysis (sentiment, keywords, readability, stats) on a stored document",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sentiment",
		Description: "Classify text as positive, negative, or neutral",
	}, s.handleSentiment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Extract the top keywords from text",
	}, s.handleKeywords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_document",
		Description: "Add a document to the collection",
	}, s.handleAddDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search documents by substring; an empty query lists all documents",
	}, s.handleSearch)
}

// handleAnalyze handles the analyze_document tool invocation. An
// unknown document id is reported inside the output rather than as a
// protocol error.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	analysis, err := s.ports.Analysis.Analyze(ctx, input.DocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, AnalyzeOutput{Error: "Document not found"}, nil
		}
		return nil, AnalyzeOutput{}, err
	}

	return nil, AnalyzeOutput{
		ID:          analysis.ID,
		Title:       analysis.Title,
		Sentiment:   analysis.Sentiment,
		Keywords:    analysis.Keywords,
		Readability: analysis.Readability,
		Stats: &AnalyzeStats{
			WordCount:     analysis.Stats.WordCount,
			SentenceCount: analysis.Stats.SentenceCount,
		},
	}, nil
}

// handleSentiment handles the get_sentiment tool invocation.
func (s *Server) handleSentiment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SentimentInput,
) (*mcp.CallToolResult, SentimentOutput, error) {
	sentiment, err := s.ports.Analysis.Sentiment(ctx, input.Text)
	if err != nil {
		return nil, SentimentOutput{}, err
	}
	return nil, SentimentOutput{Sentiment: sentiment}, nil
}

// handleKeywords handles the extract_keywords tool invocation.
func (s *Server) handleKeywords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input KeywordsInput,
) (*mcp.CallToolResult, KeywordsOutput, error) {
	keywords, err := s.ports.Analysis.Keywords(ctx, input.Text, input.Limit)
	if err != nil {
		return nil, KeywordsOutput{}, err
	}
	return nil, KeywordsOutput{Keywords: keywords}, nil
}

// handleAddDocument handles the add_document tool invocation.
func (s *Server) handleAddDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentInput,
) (*mcp.CallToolResult, AddDocumentOutput, error) {
	id, err := s.ports.Document.Add(ctx, domain.Document{
		ID:            input.ID,
		Title:         input.Title,
		Content:       input.Content,
		Source:        input.Source,
		Category:      input.Category,
		Date:          input.Date,
		URL:           input.URL,
		SentimentHint: input.SentimentHint,
	})
	if err != nil {
		return nil, AddDocumentOutput{}, err
	}
	return nil, AddDocumentOutput{Success: true, ID: id}, nil
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	matches, err := s.ports.Document.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		output.Results[i] = SearchResultOutput{
			ID:      matches[i].ID,
			Title:   matches[i].Title,
			Snippet: matches[i].Snippet,
		}
	}

	return nil, output, nil
}
