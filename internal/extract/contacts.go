package extract

import (
	"regexp"
	"strings"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/parser"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Obvious placeholder domains that show up in markup samples and
	// form hints; never real contact data.
	placeholderDomains = []string{"example.com", "test.com", "domain.com"}
)

// ExtractEmails pulls deduplicated email addresses from page text,
// dropping placeholder domains.
func ExtractEmails(text string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, email := range emailPattern.FindAllString(text, -1) {
		if isPlaceholderEmail(email) || seen[email] {
			continue
		}
		seen[email] = true
		out = append(out, email)
	}
	return out
}

func isPlaceholderEmail(email string) bool {
	for _, d := range placeholderDomains {
		if strings.Contains(email, d) {
			return true
		}
	}
	return false
}

// ExtractPhones pulls deduplicated phone numbers in common formats.
// Very short matches are digit noise, not numbers.
func ExtractPhones(text string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, phone := range phonePattern.FindAllString(text, -1) {
		phone = strings.TrimSpace(phone)
		if len(phone) < 10 || seen[phone] {
			continue
		}
		seen[phone] = true
		out = append(out, phone)
	}
	return out
}

// ExtractSocial classifies every collected link into at most one profile
// URL per platform. Later matches overwrite earlier ones.
func ExtractSocial(pages []parser.Page) company.Social {
	var social company.Social
	for _, page := range pages {
		for _, link := range page.Links {
			url := link.URL
			switch {
			case strings.Contains(url, "linkedin.com/company/"):
				social.LinkedIn = url
			case strings.Contains(url, "twitter.com/") || strings.Contains(url, "x.com/"):
				social.Twitter = url
			case strings.Contains(url, "facebook.com/"):
				social.Facebook = url
			case strings.Contains(url, "instagram.com/"):
				social.Instagram = url
			}
		}
	}
	return social
}
