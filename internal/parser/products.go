package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source tags for product candidates.
const (
	productSourceStructured     = "structured"
	productSourceList           = "list"
	productSourceDefinitionList = "definition-list"
)

// Structured-card selectors, ordered roughly by specificity.
var productSelectors = []string{
	".product, .service, .solution, .offering, .feature",
	`[class*="product"], [class*="service"], [class*="solution"], [class*="feature"]`,
	"article, .card, .item, .feature-box, .offering-card",
	`[id*="product"], [id*="service"], [id*="feature"]`,
	"section, .section",
}

var listItemSplit = regexp.MustCompile(`^([^:\-]{3,100})[:\-]\s*(.+)$`)

// ExtractProductCandidates runs the three independent product strategies
// over the document and unions their results, deduplicated by
// case-insensitive name and capped per page.
func ExtractProductCandidates(doc *goquery.Document, pageURL string, cfg Config) []ProductCandidate {
	isProductPage := containsKeyword(pageURL, cfg.ProductKeywords)

	// Off dedicated product pages the heading threshold is stricter to
	// keep generic section titles out.
	minHeadingLen := 10
	if isProductPage {
		minHeadingLen = 3
	}

	var candidates []ProductCandidate
	candidates = append(candidates, structuredProducts(doc, minHeadingLen)...)
	candidates = append(candidates, listProducts(doc)...)
	candidates = append(candidates, definitionListProducts(doc)...)

	return dedupeProducts(candidates, cfg.MaxProductsPerPage)
}

func structuredProducts(doc *goquery.Document, minHeadingLen int) []ProductCandidate {
	var out []ProductCandidate
	for _, selector := range productSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			heading := strings.TrimSpace(s.Find(`h1, h2, h3, h4, h5, .title, .heading, .name, [class*="title"]`).First().Text())
			if heading == "" {
				heading = strings.TrimSpace(strings.SplitN(s.Text(), "\n", 2)[0])
			}

			description := strings.TrimSpace(s.Find("p, .description, .content, .summary, .text").First().Text())
			if description == "" {
				description = strings.TrimSpace(strings.Replace(s.Text(), heading, "", 1))
			}

			lowerHeading := strings.ToLower(heading)
			if len(heading) > minHeadingLen && len(heading) < 200 &&
				!strings.Contains(lowerHeading, "cookie") &&
				!strings.Contains(lowerHeading, "privacy") {
				out = append(out, ProductCandidate{
					Name:        heading,
					Description: capString(normalizeWhitespace(description), 500),
					Source:      productSourceStructured,
				})
			}
		})
	}
	return out
}

func listProducts(doc *goquery.Document) []ProductCandidate {
	var out []ProductCandidate
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		prevHeading := strings.ToLower(list.PrevAllFiltered("h1, h2, h3, h4").First().Text())
		isProductList := strings.Contains(prevHeading, "product") ||
			strings.Contains(prevHeading, "service") ||
			strings.Contains(prevHeading, "solution") ||
			strings.Contains(prevHeading, "offering")
		if !isProductList {
			return
		}

		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if m := listItemSplit.FindStringSubmatch(text); m != nil {
				out = append(out, ProductCandidate{
					Name:        strings.TrimSpace(m[1]),
					Description: capString(strings.TrimSpace(m[2]), 500),
					Source:      productSourceList,
				})
			} else if len(text) > 5 && len(text) < 200 {
				out = append(out, ProductCandidate{Name: text, Source: productSourceList})
			}
		})
	})
	return out
}

func definitionListProducts(doc *goquery.Document) []ProductCandidate {
	var out []ProductCandidate
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			name := strings.TrimSpace(dt.Text())
			description := strings.TrimSpace(dt.NextFiltered("dd").Text())
			if name != "" && len(name) > 3 && len(name) < 200 {
				out = append(out, ProductCandidate{
					Name:        name,
					Description: capString(description, 500),
					Source:      productSourceDefinitionList,
				})
			}
		})
	})
	return out
}

func dedupeProducts(in []ProductCandidate, limit int) []ProductCandidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]ProductCandidate, 0, len(in))
	for _, c := range in {
		key := strings.ToLower(c.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		if len(c.Name) <= 3 {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
