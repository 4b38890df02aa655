package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source tags for category candidates.
const (
	categorySourceNavigation = "navigation"
	categorySourceSection    = "category-section"
)

var navSelectors = []string{
	`nav a, header a, [role="navigation"] a`,
	".nav a, .navbar a, .menu a, .header a",
	`[class*="nav"] a, [class*="menu"] a, [class*="category"] a`,
	`[id*="nav"] a, [id*="menu"] a`,
}

var categorySectionSelectors = []string{
	`.category, .categories, [class*="category"]`,
	`.collection, .collections, [class*="collection"]`,
	`.department, .departments, [class*="department"]`,
	`[class*="shop-by"]`,
}

// Generic navigation labels that are never product categories.
var genericNavLabel = regexp.MustCompile(`^(home|about|contact|login|sign ?in|sign ?up|cart|checkout|account|help|support|careers|blog|terms|privacy|search|wishlist)$`)

// ExtractCategoryCandidates scans nav/menu regions and category sections
// for taxonomy-like labels, a strong signal for marketplace product sets.
func ExtractCategoryCandidates(doc *goquery.Document, cfg Config) []CategoryCandidate {
	var out []CategoryCandidate
	seen := make(map[string]struct{})

	keep := func(name, source string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, CategoryCandidate{Name: name, Source: source})
	}

	for _, selector := range navSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if cfg.MaxCategoriesPerPage > 0 && len(out) >= cfg.MaxCategoriesPerPage {
				return
			}
			text := strings.TrimSpace(s.Text())
			href := s.AttrOr("href", "")
			if text == "" || len(text) <= 2 || len(text) >= 50 {
				return
			}
			if genericNavLabel.MatchString(strings.ToLower(text)) {
				return
			}
			looksLikeCategory := strings.Contains(href, "/category") ||
				strings.Contains(href, "/collection") ||
				strings.Contains(href, "/shop") ||
				(!strings.Contains(href, "/product/") && !strings.Contains(href, "/item/"))
			if looksLikeCategory || href == "#" || strings.HasPrefix(href, "javascript:") {
				keep(text, categorySourceNavigation)
			}
		})
	}

	for _, selector := range categorySectionSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if cfg.MaxCategoriesPerPage > 0 && len(out) >= cfg.MaxCategoriesPerPage {
				return
			}
			name := strings.TrimSpace(s.Find("h2, h3, h4, a").First().Text())
			if len(name) > 2 && len(name) < 50 {
				keep(name, categorySourceSection)
			}
		})
	}

	if cfg.MaxCategoriesPerPage > 0 && len(out) > cfg.MaxCategoriesPerPage {
		out = out[:cfg.MaxCategoriesPerPage]
	}
	return out
}
