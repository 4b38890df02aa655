package parser

import "github.com/spf13/viper"

// Config caps candidate counts and snapshot sizes. The defaults mirror
// tuning constants that proved workable in production but have no deeper
// rationale, so every one of them is a knob.
type Config struct {
	MaxTextBytes         int
	MaxHTMLBytes         int
	MaxProductsPerPage   int
	MaxCategoriesPerPage int
	MaxPeoplePerPage     int
	// ProductKeywords mark a URL as a dedicated product/service page,
	// which relaxes the heading-length threshold.
	ProductKeywords []string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxTextBytes:         30000,
		MaxHTMLBytes:         100000,
		MaxProductsPerPage:   20,
		MaxCategoriesPerPage: 15,
		MaxPeoplePerPage:     20,
		ProductKeywords: []string{
			"product", "service", "solution", "offering", "feature",
			"what-we-do", "our-products", "our-services", "platform",
		},
	}
}

// Load reads the parser configuration from Viper, falling back to
// defaults for unset keys.
func Load(v *viper.Viper) Config {
	cfg := DefaultConfig()
	if v.IsSet("parser.max_text_bytes") {
		cfg.MaxTextBytes = v.GetInt("parser.max_text_bytes")
	}
	if v.IsSet("parser.max_html_bytes") {
		cfg.MaxHTMLBytes = v.GetInt("parser.max_html_bytes")
	}
	if v.IsSet("parser.max_products_per_page") {
		cfg.MaxProductsPerPage = v.GetInt("parser.max_products_per_page")
	}
	if v.IsSet("parser.max_categories_per_page") {
		cfg.MaxCategoriesPerPage = v.GetInt("parser.max_categories_per_page")
	}
	if v.IsSet("parser.max_people_per_page") {
		cfg.MaxPeoplePerPage = v.GetInt("parser.max_people_per_page")
	}
	if v.IsSet("parser.product_keywords") {
		cfg.ProductKeywords = v.GetStringSlice("parser.product_keywords")
	}
	return cfg
}
