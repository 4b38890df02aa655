package crawler

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/metrics"
	"github.com/corpgraph/corpgraph/internal/parser"
)

// Crawler walks a single company site breadth-first with a people-page
// priority lane. It is safe for concurrent use; all per-crawl state lives
// in the Crawl call.
type Crawler struct {
	cfg       Config
	parserCfg parser.Config
	fetcher   Fetcher
	clock     Clock
	hasher    Hasher
	logger    *zap.Logger
}

// New builds a Crawler around the given fetcher, clock, and body hasher.
func New(cfg Config, parserCfg parser.Config, fetcher Fetcher, clock Clock, hasher Hasher, logger *zap.Logger) *Crawler {
	return &Crawler{
		cfg:       cfg,
		parserCfg: parserCfg,
		fetcher:   fetcher,
		clock:     clock,
		hasher:    hasher,
		logger:    logger,
	}
}

// fetched pairs a parsed page with its body fingerprint.
type fetched struct {
	page     parser.Page
	bodyHash string
}

// Crawl fetches up to MaxPages pages from the domain, starting with the
// homepage and the standard corporate seed paths. Pages that fail to
// fetch or parse are dropped; Crawl returns whatever succeeded, possibly
// an empty page set, and the caller decides whether that is fatal.
func (c *Crawler) Crawl(ctx context.Context, domain string) (CrawlResult, error) {
	if c.cfg.CrawlBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.CrawlBudget)
		defer cancel()
	}

	baseRaw := NormalizeDomain(domain)
	baseURL, err := url.Parse(baseRaw)
	if err != nil {
		return CrawlResult{}, err
	}

	visited := newVisitTracker()
	seenBodies := map[string]bool{}

	// Two lanes: priority holds the homepage, seeds, and any discovered
	// people pages; frontier holds everything else.
	priority := []string{baseRaw}
	for _, p := range c.cfg.SeedPaths {
		priority = append(priority, baseRaw+p)
	}
	var frontier []string

	var pages []parser.Page
	started := c.clock.Now()

	for len(pages) < c.cfg.MaxPages && ctx.Err() == nil {
		batch := c.nextBatch(&priority, &frontier, visited, c.cfg.MaxPages-len(pages))
		if len(batch) == 0 {
			break
		}

		for _, f := range c.fetchBatch(ctx, batch, baseURL) {
			if f == nil {
				continue
			}
			// /about and /about-us frequently alias the same document.
			if f.bodyHash != "" {
				if seenBodies[f.bodyHash] {
					continue
				}
				seenBodies[f.bodyHash] = true
			}
			pages = append(pages, f.page)
			pr, other := c.categorizeLinks(f.page.Links, visited)
			priority = append(priority, pr...)
			frontier = append(frontier, other...)
			if len(pages) >= c.cfg.MaxPages {
				break
			}
		}
	}

	elapsed := c.clock.Now().Sub(started)
	metrics.ObserveCrawl(len(pages), elapsed)

	c.logger.Info("crawl complete",
		zap.String("domain", baseRaw),
		zap.Int("pages", len(pages)),
		zap.Duration("elapsed", elapsed),
	)

	return CrawlResult{
		Domain:    baseRaw,
		Pages:     pages,
		ScrapedAt: c.clock.Now().UTC(),
	}, nil
}

// nextBatch pops up to min(Concurrency, remaining) unvisited URLs,
// draining the priority lane before the general frontier. URLs are
// marked visited here, before dispatch, so a batch cannot race itself.
func (c *Crawler) nextBatch(priority, frontier *[]string, visited *visitTracker, remaining int) []string {
	limit := c.cfg.Concurrency
	if remaining < limit {
		limit = remaining
	}

	var batch []string
	pop := func(queue *[]string) {
		for len(batch) < limit && len(*queue) > 0 {
			u := (*queue)[0]
			*queue = (*queue)[1:]
			if visited.MarkIfNew(u) {
				batch = append(batch, u)
			}
		}
	}
	pop(priority)
	pop(frontier)
	return batch
}

// fetchBatch fetches and parses a batch concurrently. Results come back
// in input order, so downstream "first page wins" heuristics stay
// deterministic regardless of response timing. Failed slots are nil.
func (c *Crawler) fetchBatch(ctx context.Context, urls []string, base *url.URL) []*fetched {
	results := make([]*fetched, len(urls))
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			resp, err := c.fetcher.Fetch(ctx, u)
			if err != nil {
				metrics.IncFetchError()
				c.logger.Debug("fetch failed", zap.String("url", u), zap.Error(err))
				return
			}
			page, err := parser.Parse(resp.Body, resp.Headers, resp.FinalURL, base, c.parserCfg)
			if err != nil {
				c.logger.Debug("parse failed", zap.String("url", u), zap.Error(err))
				return
			}
			bodyHash, err := c.hasher.Hash(resp.Body)
			if err != nil {
				bodyHash = ""
			}
			metrics.IncPagesCrawled()
			results[i] = &fetched{page: page, bodyHash: bodyHash}
		}(i, u)
	}
	wg.Wait()
	return results
}

// categorizeLinks routes discovered links: internal navigation links with
// a people keyword (and no excluded keyword) go to the priority lane,
// the rest of the internal nav links go to the frontier. Cross-domain
// links are recorded on the page but never followed.
func (c *Crawler) categorizeLinks(links []parser.Link, visited *visitTracker) (priority, frontier []string) {
	for _, link := range links {
		if !link.Internal || visited.Seen(link.URL) {
			continue
		}
		probe := strings.ToLower(link.URL + " " + link.Text)
		if !containsAnyFold(probe, c.cfg.NavKeywords) {
			continue
		}
		if containsAnyFold(probe, c.cfg.PeopleKeywords) && !containsAnyFold(probe, c.cfg.ExcludeKeywords) {
			priority = append(priority, link.URL)
			continue
		}
		frontier = append(frontier, link.URL)
	}
	return priority, frontier
}
