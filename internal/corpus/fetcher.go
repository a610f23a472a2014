package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
	"github.com/custodia-labs/docsight-cli/internal/logger"
)

const (
	// DefaultBaseURL is the Wikipedia REST API root.
	DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

	// DefaultRequestsPerSecond throttles summary fetches so the
	// public API is not hammered.
	DefaultRequestsPerSecond = 2

	userAgent = "docsight-cli (document analysis corpus builder)"
)

// summaryResponse is the subset of the page summary payload we use.
type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Fetcher retrieves Wikipedia article summaries and assembles the full
// sample corpus. All requests share one rate limiter.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	now     func() time.Time
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(url string) FetcherOption {
	return func(f *Fetcher) { f.baseURL = url }
}

// WithRate overrides the request throttle. Values below one fall back
// to the default.
func WithRate(requestsPerSecond int) FetcherOption {
	return func(f *Fetcher) {
		if requestsPerSecond < 1 {
			requestsPerSecond = DefaultRequestsPerSecond
		}
		f.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = client }
}

// NewFetcher creates a Fetcher with sensible defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		baseURL: DefaultBaseURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchWikipedia retrieves summaries for the given article titles.
// Failed or empty articles are logged and skipped; ids count only the
// successes, so the first fetched article is always wiki_1.
func (f *Fetcher) FetchWikipedia(ctx context.Context, titles []string) ([]domain.Document, error) {
	runID := uuid.NewString()
	logger.Info("corpus fetch %s: requesting %d Wikipedia summaries", runID, len(titles))

	date := f.now().Format(time.RFC3339)
	docs := make([]domain.Document, 0, len(titles))

	for _, title := range titles {
		if err := f.limiter.Wait(ctx); err != nil {
			return docs, fmt.Errorf("rate limiter: %w", err)
		}

		summary, err := f.fetchSummary(ctx, title)
		if err != nil {
			logger.Warn("corpus fetch %s: skipping %q: %v", runID, title, err)
			continue
		}
		if summary.Extract == "" {
			logger.Warn("corpus fetch %s: skipping %q: empty extract", runID, title)
			continue
		}

		resolvedTitle := summary.Title
		if resolvedTitle == "" {
			resolvedTitle = title
		}

		docs = append(docs, domain.Document{
			ID:        fmt.Sprintf("wiki_%d", len(docs)+1),
			Title:     resolvedTitle,
			Content:   summary.Extract,
			Source:    "Wikipedia",
			Category:  "Encyclopedia",
			Date:      date,
			URL:       summary.ContentURLs.Desktop.Page,
			WordCount: domain.CountWords(summary.Extract),
		})
		logger.Debug("corpus fetch %s: fetched %q", runID, resolvedTitle)
	}

	logger.Info("corpus fetch %s: %d of %d summaries fetched", runID, len(docs), len(titles))
	return docs, nil
}

func (f *Fetcher) fetchSummary(ctx context.Context, title string) (*summaryResponse, error) {
	url := fmt.Sprintf("%s/page/summary/%s", f.baseURL, title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting summary: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	return &summary, nil
}

// Build assembles the complete corpus: Wikipedia summaries followed by
// the embedded news, short-text, and manual samples. A fully failed
// Wikipedia pass still yields the embedded documents.
func (f *Fetcher) Build(ctx context.Context, titles []string) ([]domain.Document, error) {
	if len(titles) == 0 {
		titles = DefaultWikipediaTitles
	}

	wiki, err := f.FetchWikipedia(ctx, titles)
	if err != nil {
		return nil, err
	}

	now := f.now()
	docs := make([]domain.Document, 0, len(wiki)+len(newsSamples)+len(shortSamples)+2)
	docs = append(docs, wiki...)
	docs = append(docs, NewsDocuments(now)...)
	docs = append(docs, ShortDocuments(now)...)
	docs = append(docs, ManualDocuments(now)...)
	return docs, nil
}
