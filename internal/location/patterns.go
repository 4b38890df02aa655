// Package location extracts headquarters and address signals from page
// text and optionally reconciles them with an external place lookup.
package location

import (
	"regexp"
	"strings"
)

const (
	maxAddresses = 3
)

var (
	// City, Region, PostalCode: the classic footer address line.
	footerAddressPattern = regexp.MustCompile(`([A-Z][a-zA-Z\s]+),\s*([A-Z][a-zA-Z\s]+),\s*([A-Z]{2}\d{1,2}\s*\d[A-Z]{2}|\d{5,6})`)

	// The (?i:) groups fold case on the trigger phrases only; the capture
	// classes stay case-sensitive so a lowercase word run never passes as
	// a place name.
	dualHQPattern = regexp.MustCompile(`(?i:dual headquarters in)\s+([A-Z][a-zA-Z\s]+)\s+and\s+([A-Z][a-zA-Z\s]+)`)

	singleHQPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i:headquarters?|headquartered|head office|hq)(?i:\s+(?:is|are|located|in|at|:))?\s+(?:in\s+)?([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)?)`),
		regexp.MustCompile(`(?i:based in|located in)\s+([A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)?)`),
	}

	hqStopSplit = regexp.MustCompile(`(?i)\s+as\s+well\s+as|offices`)

	streetAddressPattern = regexp.MustCompile(`(?i)\d+[\w\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Place|Pl|House|Building)[^.]{10,150}`)

	cityFromAddressPattern = regexp.MustCompile(`([A-Z][a-zA-Z\s]+),\s*([A-Z][a-zA-Z\s]+)`)

	multiSpace = regexp.MustCompile(`\s+`)

	// Marketing copy that street-address shapes keep matching.
	addressJargon = []string{
		"data", "campaign", "email", "book a demo",
		"discovery", "proposal", "onboarding", "questions",
	}

	hqTrailingWords = []string{"with", "and", "in", "at"}
)

// patternPass is the offline half of location resolution.
type patternPass struct {
	Headquarters string
	Addresses    []string
}

// extractFromText runs every location pattern over the combined page
// text. Headquarters precedence: explicit dual-HQ phrase, then explicit
// single-HQ phrase, then footer-derived guess, then city derived from
// the first street address.
func extractFromText(text string) patternPass {
	result := patternPass{Addresses: []string{}}

	footerHQ := collectFooterAddresses(text, &result)

	if hq := matchDualHQ(text); hq != "" {
		result.Headquarters = hq
	}
	if result.Headquarters == "" {
		result.Headquarters = matchSingleHQ(text)
	}
	if result.Headquarters == "" {
		result.Headquarters = footerHQ
	}

	collectStreetAddresses(text, &result)

	if result.Headquarters == "" && len(result.Addresses) > 0 {
		if m := cityFromAddressPattern.FindStringSubmatch(result.Addresses[0]); m != nil {
			result.Headquarters = strings.TrimSpace(m[1]) + ", " + strings.TrimSpace(m[2])
		}
	}
	return result
}

// collectFooterAddresses appends footer-style address lines and returns
// the City, Region guess from the first one.
func collectFooterAddresses(text string, result *patternPass) string {
	matches := footerAddressPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	for _, m := range matches {
		addr := strings.TrimSpace(m[0])
		if len(addr) > 10 && !contains(result.Addresses, addr) {
			result.Addresses = append(result.Addresses, addr)
		}
	}
	city := strings.TrimSpace(matches[0][1])
	region := strings.TrimSpace(matches[0][2])
	if city == "" || region == "" {
		return ""
	}
	return city + ", " + region
}

func matchDualHQ(text string) string {
	m := dualHQPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	a, b := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if len(a) > 2 && len(a) < 50 && len(b) > 2 && len(b) < 50 {
		return a + " and " + b
	}
	return ""
}

func matchSingleHQ(text string) string {
	for _, pattern := range singleHQPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hq := multiSpace.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if loc := hqStopSplit.Split(hq, 2); len(loc) > 0 {
			hq = strings.TrimSpace(loc[0])
		}
		hq = trimTrailingWords(hq)
		if len(hq) > 3 && len(hq) < 100 {
			return hq
		}
	}
	return ""
}

// trimTrailingWords drops dangling connectives left behind by the
// stop-word split ("Mumbai, India with" -> "Mumbai, India").
func trimTrailingWords(hq string) string {
	for {
		trimmed := false
		for _, w := range hqTrailingWords {
			if strings.HasSuffix(strings.ToLower(hq), " "+w) {
				hq = strings.TrimSpace(hq[:len(hq)-len(w)-1])
				trimmed = true
			}
		}
		if !trimmed {
			return hq
		}
	}
}

func collectStreetAddresses(text string, result *patternPass) {
	for _, raw := range streetAddressPattern.FindAllString(text, -1) {
		if len(result.Addresses) >= maxAddresses {
			return
		}
		addr := strings.TrimSpace(raw)
		if !plausibleAddress(addr) || contains(result.Addresses, addr) {
			continue
		}
		result.Addresses = append(result.Addresses, addr)
	}
}

func plausibleAddress(addr string) bool {
	lower := strings.ToLower(addr)
	for _, jargon := range addressJargon {
		if strings.Contains(lower, jargon) {
			return false
		}
	}
	words := len(strings.Split(addr, " "))
	return words > 3 && words < 20
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
