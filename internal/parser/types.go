// Package parser turns raw HTML and response headers into a structured,
// immutable page record: visible text, links, images, technology signals,
// and per-page product/category/people candidates.
package parser

// Link is a resolved anchor. Internal marks same-host links eligible for
// the crawl frontier; cross-domain links are kept for social detection.
type Link struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	Internal bool   `json:"internal"`
}

// Image is a resolved img element. Cross-domain sources are kept because
// logos frequently live on CDNs.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProductCandidate is one product/service guess with its source strategy.
type ProductCandidate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// CategoryCandidate is a navigation-derived product-taxonomy guess.
type CategoryCandidate struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// PersonCandidate is one person guess with its source strategy.
type PersonCandidate struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

// Page is the parse result for a single fetched page. Created once per
// fetch and immutable afterwards.
type Page struct {
	URL                string              `json:"url"`
	Title              string              `json:"title"`
	MetaDescription    string              `json:"meta_description"`
	MetaKeywords       string              `json:"meta_keywords"`
	Text               string              `json:"text"`
	Links              []Link              `json:"links"`
	Images             []Image             `json:"images"`
	TechSignals        []string            `json:"tech_signals"`
	ProductCandidates  []ProductCandidate  `json:"product_candidates"`
	CategoryCandidates []CategoryCandidate `json:"category_candidates"`
	PeopleCandidates   []PersonCandidate   `json:"people_candidates"`
	// HTML is a size-capped snapshot retained for downstream regex passes
	// (logo meta tags, schema.org markers).
	HTML string `json:"-"`
}
