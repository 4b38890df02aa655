// Package config initializes the application's configuration. It uses
// Viper to read settings from a config file and environment variables,
// layered over defaults, providing a unified configuration system.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Init initializes the global Viper configuration: defaults, search
// paths, and environment variable binding. cfgFile, when non-empty,
// points at an explicit config file and overrides the search paths.
// Returns the path of the config file used ("" when running purely on
// defaults and environment).
func Init(cfgFile string) (string, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/corpgraph/")
		viper.AddConfigPath("$HOME/.corpgraph")
	}

	setDefaults()

	viper.SetEnvPrefix("CORPGRAPH") // e.g. CORPGRAPH_CRAWLER_MAX_PAGES=10
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			// Defaults plus environment are a complete configuration.
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return viper.ConfigFileUsed(), nil
}

func setDefaults() {
	viper.SetDefault("logging.development", false)

	viper.SetDefault("crawler.max_pages", 6)
	viper.SetDefault("crawler.concurrency", 3)
	viper.SetDefault("crawler.request_timeout", "5s")
	viper.SetDefault("crawler.crawl_budget", "45s")
	viper.SetDefault("crawler.user_agent", browserUserAgent)
	viper.SetDefault("crawler.seed_paths", []string{
		"/about", "/team", "/company", "/about-us", "/contact", "/leadership",
	})
	viper.SetDefault("crawler.nav_keywords", []string{
		"about", "team", "company", "contact", "career", "product",
		"service", "solution", "leadership", "people", "mission", "story",
	})
	viper.SetDefault("crawler.people_keywords", []string{
		"team", "people", "leadership", "about", "founder", "management",
	})
	viper.SetDefault("crawler.exclude_keywords", []string{
		"blog", "news", "career", "press", "media", "event",
	})

	viper.SetDefault("parser.max_text_bytes", 30000)
	viper.SetDefault("parser.max_html_bytes", 100000)
	viper.SetDefault("parser.max_products_per_page", 20)
	viper.SetDefault("parser.max_categories_per_page", 15)
	viper.SetDefault("parser.max_people_per_page", 20)
	viper.SetDefault("parser.product_keywords", []string{
		"product", "service", "solution", "offering", "platform", "feature",
	})

	viper.SetDefault("location.places_api_key", "")
	viper.SetDefault("location.places_base_url", "")
	viper.SetDefault("location.places_timeout", "5s")

	viper.SetDefault("industry.csv_path", "data/sub_industry_classification.csv")
	viper.SetDefault("industry.score_threshold", 20)

	viper.SetDefault("textract.endpoint", "")
	viper.SetDefault("textract.api_key", "")
	viper.SetDefault("textract.timeout", "60s")
}
