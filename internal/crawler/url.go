package crawler

import (
	"strings"
)

// NormalizeDomain turns user input into a canonical base URL: https is
// assumed when no scheme is present, trailing slashes are stripped.
func NormalizeDomain(domain string) string {
	u := strings.TrimSpace(domain)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimRight(u, "/")
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
