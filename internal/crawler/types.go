// Package crawler implements the bounded-depth site walker: a priority
// queue seeded with common corporate paths, batched concurrent fetches,
// and per-invocation visited-set state.
package crawler

import (
	"context"
	"net/http"
	"time"

	"github.com/corpgraph/corpgraph/internal/parser"
)

// Response is the raw outcome of a single page fetch.
type Response struct {
	URL        string
	FinalURL   string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// CrawlResult is the ordered page set for one crawl. Owned by the crawler
// and handed by value to the extractors.
type CrawlResult struct {
	Domain    string        `json:"domain"`
	Pages     []parser.Page `json:"pages"`
	ScrapedAt time.Time     `json:"scraped_at"`
}

// Fetcher retrieves a single page. Implementations must treat non-2xx
// statuses and transport failures as errors.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Response, error)
}

// Clock abstracts time.Now so crawl timestamps are testable.
type Clock interface {
	Now() time.Time
}

// Hasher fingerprints page bodies so URL aliases serving identical
// content count as one page.
type Hasher interface {
	Hash(data []byte) (string, error)
}
