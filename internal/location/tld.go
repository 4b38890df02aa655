package location

import "strings"

// Country-specific TLDs. Multi-label entries must come before their
// shorter suffixes so ".co.in" is tested before ".in".
var tldCountries = []struct {
	suffix  string
	country string
}{
	{".co.in", "India"},
	{".in", "India"},
	{".co.uk", "United Kingdom"},
	{".uk", "United Kingdom"},
	{".us", "United States"},
	{".de", "Germany"},
	{".fr", "France"},
	{".jp", "Japan"},
	{".cn", "China"},
	{".au", "Australia"},
	{".ca", "Canada"},
	{".sg", "Singapore"},
	{".ae", "United Arab Emirates"},
}

// CountryFromDomain guesses a country from the domain's TLD. A best-effort
// hint for display, never a location source of record.
func CountryFromDomain(domain string) string {
	host := strings.TrimSuffix(strings.ToLower(domain), "/")
	for _, entry := range tldCountries {
		if strings.HasSuffix(host, entry.suffix) {
			return entry.country
		}
	}
	if strings.HasSuffix(host, ".com") {
		return "United States"
	}
	return "Unknown"
}
