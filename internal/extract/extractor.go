// Package extract aggregates per-page candidates from a crawl into
// company-level heuristic data. Everything here is deterministic pattern
// matching; the only I/O is the location resolver's optional external
// lookup.
package extract

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/crawler"
	"github.com/corpgraph/corpgraph/internal/location"
	"github.com/corpgraph/corpgraph/internal/parser"
)

// Extractor turns a CrawlResult into company.Heuristics.
type Extractor struct {
	locations *location.Resolver
	logger    *zap.Logger
}

// New builds an Extractor. The location resolver is required; pass one
// built without a place client to stay fully offline.
func New(locations *location.Resolver, logger *zap.Logger) *Extractor {
	return &Extractor{locations: locations, logger: logger}
}

// Extract aggregates the crawled pages into heuristic company data.
func (e *Extractor) Extract(ctx context.Context, result crawler.CrawlResult) (company.Heuristics, error) {
	allText := combineText(result.Pages)
	name := ExtractCompanyName(result.Pages)

	locs, err := e.locations.Resolve(ctx, result, name)
	if err != nil {
		// Location failures degrade to an empty set, never abort.
		e.logger.Warn("location resolution failed", zap.Error(err))
		locs = company.LocationSet{Addresses: []string{}}
	}

	return company.Heuristics{
		Domain:      result.Domain,
		CompanyName: name,
		Emails:      ExtractEmails(allText),
		Phones:      ExtractPhones(allText),
		Social:      ExtractSocial(result.Pages),
		TechStack:   ExtractTechStack(result.Pages),
		LogoURL:     ExtractLogo(result.Pages, result.Domain),
		Products:    ExtractProducts(result.Pages),
		People:      ExtractPeople(result.Pages),
		Locations:   locs,
	}, nil
}

var titleSuffix = regexp.MustCompile(`(?i)\s*[|\-–—]\s*(Home|Official|Website).*$`)

// ExtractCompanyName returns the first cleaned, plausibly short page
// title across the page set. Pages are in crawl order, so the homepage
// title normally wins.
func ExtractCompanyName(pages []parser.Page) string {
	for _, page := range pages {
		if page.Title == "" {
			continue
		}
		title := strings.TrimSpace(titleSuffix.ReplaceAllString(page.Title, ""))
		if title != "" && len(title) < 100 {
			return title
		}
	}
	return ""
}

func combineText(pages []parser.Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// ExtractTechStack unions every per-page technology signal set.
func ExtractTechStack(pages []parser.Page) []string {
	seen := map[string]bool{}
	var out []string
	for _, page := range pages {
		for _, tech := range page.TechSignals {
			if !seen[tech] {
				seen[tech] = true
				out = append(out, tech)
			}
		}
	}
	return out
}
