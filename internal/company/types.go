// Package company defines the merged company document exchanged between
// pipeline stages, plus the merge and fallback rules that keep it valid.
package company

// RoleCategory buckets a person's title into a coarse organizational area.
type RoleCategory string

// Role categories exposed to downstream consumers.
const (
	RoleLeadership  RoleCategory = "Leadership"
	RoleEngineering RoleCategory = "Engineering"
	RoleSales       RoleCategory = "Sales"
	RoleMarketing   RoleCategory = "Marketing"
	RoleOperations  RoleCategory = "Operations"
	RoleOther       RoleCategory = "Other"
)

// Identity is the company-level block of the document.
type Identity struct {
	Name             string          `json:"name"`
	Domain           string          `json:"domain"`
	LogoURL          string          `json:"logo_url"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Industry         string          `json:"industry"`
	SubIndustry      string          `json:"sub_industry"`
	Classification   *Classification `json:"classification,omitempty"`
}

// Classification carries the full taxonomy row behind an industry match.
type Classification struct {
	Sector         string `json:"sector"`
	Industry       string `json:"industry"`
	SubIndustry    string `json:"sub_industry"`
	SICCode        string `json:"sic_code"`
	SICDescription string `json:"sic_description"`
	MatchScore     int    `json:"match_score"`
}

// Product is a single product or service offering.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
}

// Person is a named (or placeholder) member of the company. Placeholder
// entries synthesized by fallbacks carry an empty Name so they stay
// distinguishable from observed people.
type Person struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Category RoleCategory `json:"role_category"`
}

// Coordinates is an optional lat/lon pair from the place lookup.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationSet groups every location signal resolved for a company.
// Country is a TLD-derived display hint, not a verified location.
type LocationSet struct {
	Headquarters string       `json:"headquarters"`
	Country      string       `json:"country,omitempty"`
	Addresses    []string     `json:"addresses"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// Contact holds verifiable contact channels.
type Contact struct {
	Emails      []string `json:"emails"`
	Phones      []string `json:"phones"`
	ContactPage string   `json:"contact_page"`
}

// Social holds at most one profile URL per platform.
type Social struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// Document is the strict JSON shape produced by the pipeline and consumed
// by the graph assembler and the presentation layer.
type Document struct {
	Company   Identity    `json:"company"`
	Products  []Product   `json:"products_services"`
	Locations LocationSet `json:"locations"`
	People    []Person    `json:"people"`
	Contact   Contact     `json:"contact"`
	Social    Social      `json:"social_media"`
	TechStack []string    `json:"tech_stack"`
}

// Heuristics is the deterministic, pattern-derived view of a company
// produced by the heuristic extractor. It feeds the text extractor as
// hints and wins over free-text guesses for verifiable fields.
type Heuristics struct {
	Domain      string      `json:"domain"`
	CompanyName string      `json:"company_name"`
	Emails      []string    `json:"emails"`
	Phones      []string    `json:"phones"`
	Social      Social      `json:"social_media"`
	TechStack   []string    `json:"tech_stack"`
	LogoURL     string      `json:"logo_url"`
	Products    []Product   `json:"products"`
	People      []Person    `json:"people"`
	Locations   LocationSet `json:"locations"`
}

// Empty returns a structurally valid document with every collection
// present but empty. Used whenever the text extractor fails.
func Empty() Document {
	return Document{
		Products: []Product{},
		People:   []Person{},
		Contact:  Contact{Emails: []string{}, Phones: []string{}},
		Locations: LocationSet{
			Addresses: []string{},
		},
		TechStack: []string{},
	}
}

// Document projects the heuristic data into the document shape so it can
// back-fill gaps left by the text extractor.
func (h Heuristics) Document() Document {
	return Document{
		Company: Identity{
			Name:    h.CompanyName,
			Domain:  h.Domain,
			LogoURL: h.LogoURL,
		},
		Products:  h.Products,
		Locations: h.Locations,
		People:    h.People,
		Contact: Contact{
			Emails: h.Emails,
			Phones: h.Phones,
		},
		Social:    h.Social,
		TechStack: h.TechStack,
	}
}
