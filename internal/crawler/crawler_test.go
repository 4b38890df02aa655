package crawler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/parser"
)

// stubFetcher serves canned HTML bodies keyed by URL and records every
// request, in order.
type stubFetcher struct {
	mu       sync.Mutex
	pages    map[string]string
	requests []string
}

func (f *stubFetcher) Fetch(_ context.Context, rawURL string) (Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, rawURL)
	body, ok := f.pages[rawURL]
	f.mu.Unlock()
	if !ok {
		return Response{}, fmt.Errorf("404 for %s", rawURL)
	}
	return Response{
		URL:        rawURL,
		FinalURL:   rawURL,
		StatusCode: http.StatusOK,
		Headers:    http.Header{},
		Body:       []byte(body),
	}, nil
}

func (f *stubFetcher) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type testHasher struct{}

func (testHasher) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func testConfig() Config {
	return Config{
		MaxPages:        6,
		Concurrency:     3,
		RequestTimeout:  time.Second,
		UserAgent:       "test-agent",
		SeedPaths:       []string{"/about", "/team", "/company", "/about-us", "/contact", "/leadership"},
		NavKeywords:     []string{"about", "team", "product", "service", "contact", "leadership", "people"},
		PeopleKeywords:  []string{"team", "people", "leadership", "founder"},
		ExcludeKeywords: []string{"blog", "news", "career", "press", "media", "event"},
	}
}

func newTestCrawler(fetcher Fetcher, cfg Config) *Crawler {
	return New(cfg, parser.DefaultConfig(), fetcher, fixedClock{now: time.Unix(1700000000, 0)}, testHasher{}, zap.NewNop())
}

func page(title, body string) string {
	return "<html><head><title>" + title + "</title></head><body>" + body + "</body></html>"
}

func TestCrawlSeedsDrainEvenWithoutLinks(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{pages: map[string]string{
		"https://acme.com": page("Acme", "<p>hello</p>"),
	}}
	c := newTestCrawler(fetcher, testConfig())

	result, err := c.Crawl(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Len(t, result.Pages, 1)

	// Homepage plus all six seed paths get a fetch attempt before the
	// queue drains, even though only the homepage resolves.
	require.Len(t, fetcher.requested(), 7)
}

func TestCrawlStopsAtMaxPages(t *testing.T) {
	t.Parallel()

	pages := map[string]string{"https://acme.com": page("Acme", `<a href="/about">About</a>`)}
	for _, p := range []string{"/about", "/team", "/company", "/about-us", "/contact", "/leadership"} {
		pages["https://acme.com"+p] = page("Acme"+p, "<p>distinct "+p+"</p>")
	}
	fetcher := &stubFetcher{pages: pages}

	cfg := testConfig()
	cfg.MaxPages = 3
	c := newTestCrawler(fetcher, cfg)

	result, err := c.Crawl(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Len(t, result.Pages, 3)
}

func TestCrawlNormalizesDomain(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{pages: map[string]string{
		"https://acme.com": page("Acme", "<p>hi</p>"),
	}}
	c := newTestCrawler(fetcher, testConfig())

	result, err := c.Crawl(context.Background(), "acme.com/")
	require.NoError(t, err)
	require.Equal(t, "https://acme.com", result.Domain)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), result.ScrapedAt)
}

func TestCrawlPrioritizesPeoplePages(t *testing.T) {
	t.Parallel()

	home := page("Acme", `
<a href="/products/widgets">Product Widgets</a>
<a href="/our-people">Meet our people</a>
<a href="/blog/team-news">Team blog</a>`)

	fetcher := &stubFetcher{pages: map[string]string{
		"https://acme.com":             home,
		"https://acme.com/our-people":  page("People", "<p>people body</p>"),
		"https://acme.com/products/widgets": page("Widgets", "<p>widgets body</p>"),
	}}

	cfg := testConfig()
	cfg.MaxPages = 2
	cfg.Concurrency = 1
	cfg.SeedPaths = nil
	c := newTestCrawler(fetcher, cfg)

	result, err := c.Crawl(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Len(t, result.Pages, 2)

	reqs := fetcher.requested()
	// The people page jumps the product page; the blog link is excluded.
	require.Equal(t, "https://acme.com/our-people", reqs[1])
	for _, r := range reqs {
		require.NotContains(t, r, "blog")
	}
}

func TestCrawlSkipsDuplicateBodies(t *testing.T) {
	t.Parallel()

	same := page("Acme About", "<p>identical body</p>")
	fetcher := &stubFetcher{pages: map[string]string{
		"https://acme.com":          page("Acme", "<p>home</p>"),
		"https://acme.com/about":    same,
		"https://acme.com/about-us": same,
	}}
	c := newTestCrawler(fetcher, testConfig())

	result, err := c.Crawl(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Len(t, result.Pages, 2)
}

func TestCrawlNeverRefetchesVisited(t *testing.T) {
	t.Parallel()

	// Every page links back to the homepage and to /about.
	loop := `<a href="https://acme.com">About Acme Home</a><a href="/about">About</a>`
	fetcher := &stubFetcher{pages: map[string]string{
		"https://acme.com":       page("Acme", loop+"<p>home</p>"),
		"https://acme.com/about": page("About", loop+"<p>about</p>"),
	}}
	c := newTestCrawler(fetcher, testConfig())

	_, err := c.Crawl(context.Background(), "acme.com")
	require.NoError(t, err)

	counts := map[string]int{}
	for _, r := range fetcher.requested() {
		counts[r]++
	}
	for url, n := range counts {
		require.Equal(t, 1, n, "URL %s fetched %d times", url, n)
	}
}

func TestCrawlAllFetchesFailReturnsEmpty(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{pages: map[string]string{}}
	c := newTestCrawler(fetcher, testConfig())

	// An unreachable site is not the crawler's error to raise: the result
	// simply carries zero pages.
	result, err := c.Crawl(context.Background(), "unreachable.example")
	require.NoError(t, err)
	require.Empty(t, result.Pages)
	require.Equal(t, "https://unreachable.example", result.Domain)
}

func TestNormalizeDomain(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"acme.com", "https://acme.com"},
		{"http://acme.com", "http://acme.com"},
		{"https://acme.com/", "https://acme.com"},
		{"  acme.com  ", "https://acme.com"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, NormalizeDomain(tc.in))
	}
}

func TestVisitTracker(t *testing.T) {
	t.Parallel()

	v := newVisitTracker()
	require.True(t, v.MarkIfNew("https://acme.com"))
	require.False(t, v.MarkIfNew("https://acme.com"))
	require.True(t, v.Seen("https://acme.com"))
	require.False(t, v.Seen("https://acme.com/other"))
	require.False(t, v.MarkIfNew(""))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := testConfig()
	require.NoError(t, valid.Validate())

	broken := valid
	broken.MaxPages = 0
	require.Error(t, broken.Validate())

	broken = valid
	broken.Concurrency = 0
	require.Error(t, broken.Validate())

	broken = valid
	broken.UserAgent = ""
	require.Error(t, broken.Validate())
}
