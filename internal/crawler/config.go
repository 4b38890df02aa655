package crawler

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every knob that influences a crawl run. All values
// originate from Viper so the crawler can be configured via files, env
// vars, or CLI flags.
type Config struct {
	MaxPages       int
	Concurrency    int
	RequestTimeout time.Duration
	// CrawlBudget bounds the whole crawl wall-clock, independent of the
	// page cap, so slow targets cannot stall an analysis.
	CrawlBudget     time.Duration
	UserAgent       string
	SeedPaths       []string
	NavKeywords     []string
	PeopleKeywords  []string
	ExcludeKeywords []string
}

// Load constructs a Config by reading from Viper.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		MaxPages:        v.GetInt("crawler.max_pages"),
		Concurrency:     v.GetInt("crawler.concurrency"),
		RequestTimeout:  v.GetDuration("crawler.request_timeout"),
		CrawlBudget:     v.GetDuration("crawler.crawl_budget"),
		UserAgent:       v.GetString("crawler.user_agent"),
		SeedPaths:       v.GetStringSlice("crawler.seed_paths"),
		NavKeywords:     v.GetStringSlice("crawler.nav_keywords"),
		PeopleKeywords:  v.GetStringSlice("crawler.people_keywords"),
		ExcludeKeywords: v.GetStringSlice("crawler.exclude_keywords"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.MaxPages <= 0 {
		return fmt.Errorf("crawler.max_pages must be > 0")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("crawler.concurrency must be > 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("crawler.request_timeout must be > 0")
	}
	if c.CrawlBudget < 0 {
		return fmt.Errorf("crawler.crawl_budget must be >= 0")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("crawler.user_agent must be set")
	}
	return nil
}
