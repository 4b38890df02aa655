package extract

import (
	"strings"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/parser"
)

const maxProducts = 20

var productPageHints = []string{"product", "service", "solution", "offering"}

// ExtractProducts unions per-page product candidates across the crawl.
// When the union is empty, a secondary text-pattern pass runs over pages
// whose URL suggests a product context. Dedup by lowercase name, minimum
// name length 4, capped at 20.
func ExtractProducts(pages []parser.Page) []company.Product {
	var products []company.Product
	for _, page := range pages {
		for _, c := range page.ProductCandidates {
			products = append(products, company.Product{
				Name:        c.Name,
				Description: c.Description,
				Source:      c.Source,
			})
		}
	}

	if len(products) == 0 {
		for _, page := range pages {
			if !urlSuggestsProducts(page.URL) {
				continue
			}
			products = append(products, textPatternProducts(page.Text)...)
		}
	}

	return DedupeProducts(products)
}

func urlSuggestsProducts(url string) bool {
	lower := strings.ToLower(url)
	for _, hint := range productPageHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// textPatternProducts splits page text into heading/description pairs
// using casing and trailing-colon cues. A short line ending with a colon
// (or in all caps) opens a heading; the next prose-length line closes it
// as the description.
func textPatternProducts(text string) []company.Product {
	var out []company.Product
	var heading string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if len(line) > 5 && len(line) < 100 {
			if strings.HasSuffix(line, ":") || line == strings.ToUpper(line) {
				heading = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			}
		}

		if heading != "" && len(line) > 20 && len(line) < 500 &&
			!strings.HasSuffix(line, ":") && line != strings.ToUpper(line) {
			out = append(out, company.Product{
				Name:        heading,
				Description: line,
				Source:      "text-pattern",
			})
			heading = ""
		}
	}
	return out
}

// DedupeProducts removes case-insensitive name duplicates, drops names of
// 3 characters or fewer, and caps the result. Idempotent.
func DedupeProducts(products []company.Product) []company.Product {
	seen := map[string]bool{}
	out := []company.Product{}
	for _, p := range products {
		key := strings.ToLower(p.Name)
		if seen[key] || len(p.Name) <= 3 {
			continue
		}
		seen[key] = true
		out = append(out, p)
		if len(out) >= maxProducts {
			break
		}
	}
	return out
}
