package parser

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Parse converts raw HTML plus response headers into a Page. It is a pure
// function: no I/O, deterministic for a given input.
func Parse(html []byte, headers http.Header, pageURL string, base *url.URL, cfg Config) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Page{}, fmt.Errorf("parse html for %s: %w", pageURL, err)
	}

	// Tech detection needs the unstripped markup; everything else works on
	// the cleaned document.
	tech := DetectTech(html, doc, headers)

	doc.Find("script, style, noscript, iframe, svg").Remove()

	page := Page{
		URL:             pageURL,
		Title:           normalizeWhitespace(doc.Find("title").First().Text()),
		MetaDescription: normalizeWhitespace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		MetaKeywords:    normalizeWhitespace(doc.Find(`meta[name="keywords"]`).AttrOr("content", "")),
		Text:            capString(normalizeWhitespace(doc.Find("body").Text()), cfg.MaxTextBytes),
		TechSignals:     tech,
		HTML:            capString(string(html), cfg.MaxHTMLBytes),
	}

	page.Links = extractLinks(doc, base)
	page.Images = extractImages(doc, base)
	page.ProductCandidates = ExtractProductCandidates(doc, pageURL, cfg)
	page.CategoryCandidates = ExtractCategoryCandidates(doc, cfg)
	page.PeopleCandidates = ExtractPeopleCandidates(doc, cfg)

	return page, nil
}

func extractLinks(doc *goquery.Document, base *url.URL) []Link {
	var links []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		resolved, ok := resolveRef(href, base)
		if !ok {
			return
		}
		links = append(links, Link{
			URL:      resolved.String(),
			Text:     normalizeWhitespace(s.Text()),
			Internal: strings.EqualFold(resolved.Hostname(), base.Hostname()),
		})
	})
	return links
}

func extractImages(doc *goquery.Document, base *url.URL) []Image {
	var images []Image
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		resolved, ok := resolveRef(src, base)
		if !ok {
			return
		}
		images = append(images, Image{
			URL: resolved.String(),
			Alt: strings.TrimSpace(s.AttrOr("alt", "")),
		})
	})
	return images
}

func resolveRef(ref string, base *url.URL) (*url.URL, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "javascript:") || strings.HasPrefix(ref, "mailto:") {
		return nil, false
	}
	u, err := base.Parse(ref)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func capString(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

func containsKeyword(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
