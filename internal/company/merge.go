package company

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge combines a text-extractor document with heuristic data using a
// fixed per-field precedence:
//
//	heuristics win:   logo URL, emails, phones, social links, tech stack,
//	                  headquarters, addresses, coordinates
//	extractor wins:   descriptions, industry labels, products, people
//	name, domain:     extractor, then heuristics
//
// The back-fill step uses mergo so any field the extractor left at its
// zero value is populated from the heuristic view; the override step then
// re-asserts the verifiable heuristic fields on top.
func Merge(doc Document, h Heuristics) (Document, error) {
	merged := doc
	if err := mergo.Merge(&merged, h.Document()); err != nil {
		return Document{}, fmt.Errorf("merge heuristic data: %w", err)
	}

	if h.LogoURL != "" {
		merged.Company.LogoURL = h.LogoURL
	}
	if len(h.Emails) > 0 {
		merged.Contact.Emails = h.Emails
	}
	if len(h.Phones) > 0 {
		merged.Contact.Phones = h.Phones
	}
	if h.Social != (Social{}) {
		merged.Social = h.Social
	}
	if len(h.TechStack) > 0 {
		merged.TechStack = h.TechStack
	}
	if h.Locations.Headquarters != "" {
		merged.Locations.Headquarters = h.Locations.Headquarters
	}
	if h.Locations.Country != "" {
		merged.Locations.Country = h.Locations.Country
	}
	if len(h.Locations.Addresses) > 0 {
		merged.Locations.Addresses = h.Locations.Addresses
	}
	if h.Locations.Coordinates != nil {
		merged.Locations.Coordinates = h.Locations.Coordinates
	}
	if merged.Company.Domain == "" {
		merged.Company.Domain = h.Domain
	}
	return merged, nil
}
