package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/corpgraph/corpgraph/internal/parser"
)

type logoCandidate struct {
	url   string
	score int
}

var (
	ogImagePattern    = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:image["'][^>]+content=["']([^"']+)["']`)
	schemaLogoPattern = regexp.MustCompile(`(?i)"logo"\s*:\s*["']([^"']+)["']`)
	iconLinkPattern   = regexp.MustCompile(`(?i)<link[^>]+rel=["'](?:icon|shortcut icon)["'][^>]+href=["']([^"']+)["']`)
	headerPathPattern = regexp.MustCompile(`header|nav|top`)
	dimensionPattern  = regexp.MustCompile(`(200|150|100|80)x(200|150|100|80)`)
	anyDimension      = regexp.MustCompile(`\d+x\d+`)
)

// ExtractLogo scores every image and meta/schema/icon hint across the
// page set and returns the best candidate URL. When nothing scores, it
// falls back to a conventional /logo.svg path under the domain. The
// fallback is a guess, not a confirmed asset.
func ExtractLogo(pages []parser.Page, domain string) string {
	var candidates []logoCandidate

	for _, page := range pages {
		for _, img := range page.Images {
			if img.URL == "" {
				continue
			}
			if score := scoreImage(img); score > 0 {
				candidates = append(candidates, logoCandidate{url: img.URL, score: score})
			}
		}
		candidates = append(candidates, metaLogoCandidates(page.HTML)...)
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		return candidates[0].url
	}

	if domain != "" {
		base := domain
		if !strings.HasPrefix(base, "http") {
			base = "https://" + base
		}
		return base + "/logo.svg"
	}
	return ""
}

func scoreImage(img parser.Image) int {
	alt := strings.ToLower(img.Alt)
	url := strings.ToLower(img.URL)
	score := 0

	if alt == "logo" || strings.HasSuffix(url, "/logo.png") || strings.HasSuffix(url, "/logo.svg") {
		score += 50
	}
	if strings.Contains(alt, "logo") && len(alt) < 20 {
		score += 30
	}
	if strings.Contains(url, "/logo") {
		score += 25
	}
	if strings.Contains(url, "/brand") {
		score += 20
	}
	if strings.Contains(alt, "brand") {
		score += 15
	}
	if headerPathPattern.MatchString(url) {
		score += 10
	}
	// Small square dimensions embedded in the filename usually mark an
	// actual logo asset rather than a hero image.
	if anyDimension.MatchString(url) && dimensionPattern.MatchString(url) {
		score += 15
	}
	if strings.HasSuffix(url, ".svg") {
		score += 10
	}
	if strings.HasSuffix(url, ".png") {
		score += 5
	}
	return score
}

func metaLogoCandidates(html string) []logoCandidate {
	if html == "" {
		return nil
	}
	var out []logoCandidate

	if m := ogImagePattern.FindStringSubmatch(html); m != nil {
		lower := strings.ToLower(m[1])
		if strings.Contains(lower, "logo") || strings.Contains(lower, "brand") {
			out = append(out, logoCandidate{url: m[1], score: 35})
		}
	}
	if m := schemaLogoPattern.FindStringSubmatch(html); m != nil {
		out = append(out, logoCandidate{url: m[1], score: 40})
	}
	if m := iconLinkPattern.FindStringSubmatch(html); m != nil {
		if strings.HasSuffix(m[1], ".svg") || strings.HasSuffix(m[1], ".png") {
			out = append(out, logoCandidate{url: m[1], score: 5})
		}
	}
	return out
}
