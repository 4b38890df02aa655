package location

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/crawler"
	"github.com/corpgraph/corpgraph/internal/metrics"
)

// PlaceLookup resolves a company name to structured location data. A nil
// result with a nil error means "no match found".
type PlaceLookup interface {
	Lookup(ctx context.Context, companyName string) (*Place, error)
}

// Place is the structured result of an external lookup.
type Place struct {
	Headquarters string
	Addresses    []string
	Coordinates  *company.Coordinates
}

// Resolver reconciles pattern-derived location signals with an optional
// external place lookup. External structured data wins over regex
// inference; lookup failures are logged and ignored.
type Resolver struct {
	places PlaceLookup
	logger *zap.Logger
}

// NewResolver builds a Resolver. places may be nil for offline runs.
func NewResolver(places PlaceLookup, logger *zap.Logger) *Resolver {
	return &Resolver{places: places, logger: logger}
}

// Resolve produces the location set for a crawl. The pattern pass always
// runs; the external lookup, when configured and a company name is
// known, overrides its headquarters/address/coordinate fields.
func (r *Resolver) Resolve(ctx context.Context, result crawler.CrawlResult, companyName string) (company.LocationSet, error) {
	scraped := extractFromText(combinePageText(result))

	locs := company.LocationSet{
		Headquarters: scraped.Headquarters,
		Country:      CountryFromDomain(result.Domain),
		Addresses:    scraped.Addresses,
	}

	if r.places == nil || companyName == "" {
		return locs, nil
	}

	place, err := r.places.Lookup(ctx, companyName)
	if err != nil {
		metrics.ObservePlacesLookup("error")
		r.logger.Warn("place lookup failed",
			zap.String("company", companyName),
			zap.Error(err),
		)
		return locs, nil
	}
	if place == nil {
		metrics.ObservePlacesLookup("miss")
		return locs, nil
	}
	metrics.ObservePlacesLookup("hit")

	if place.Headquarters != "" {
		locs.Headquarters = place.Headquarters
	}
	if len(place.Addresses) > 0 {
		locs.Addresses = place.Addresses
	}
	if place.Coordinates != nil {
		locs.Coordinates = place.Coordinates
	}
	return locs, nil
}

func combinePageText(result crawler.CrawlResult) string {
	parts := make([]string, 0, len(result.Pages))
	for _, p := range result.Pages {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}
