// Package textract is the boundary to the external text-to-structured-data
// service. It builds the page-set summary sent out and validates the
// strict JSON document that comes back, substituting an empty document on
// any failure so the pipeline can proceed on heuristics alone.
package textract

import (
	"strings"

	"github.com/corpgraph/corpgraph/internal/crawler"
)

const maxSummaryBytes = 30000

// Summarize renders the crawled pages into the plain-text block the
// extraction service consumes, size-capped.
func Summarize(result crawler.CrawlResult) string {
	parts := make([]string, 0, len(result.Pages))
	for _, p := range result.Pages {
		var b strings.Builder
		b.WriteString("PAGE: ")
		b.WriteString(p.URL)
		b.WriteString("\nTITLE: ")
		b.WriteString(p.Title)
		b.WriteString("\nMETA: ")
		b.WriteString(p.MetaDescription)
		b.WriteString("\nCONTENT:\n")
		b.WriteString(p.Text)
		parts = append(parts, b.String())
	}
	summary := strings.Join(parts, "\n\n---\n\n")
	if len(summary) > maxSummaryBytes {
		summary = summary[:maxSummaryBytes]
	}
	return summary
}
