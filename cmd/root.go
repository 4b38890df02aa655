// Package cmd wires the CLI commands to the analysis pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	sysclock "github.com/corpgraph/corpgraph/internal/clock/system"
	"github.com/corpgraph/corpgraph/internal/config"
	"github.com/corpgraph/corpgraph/internal/crawler"
	"github.com/corpgraph/corpgraph/internal/extract"
	sha256hash "github.com/corpgraph/corpgraph/internal/hash/sha256"
	"github.com/corpgraph/corpgraph/internal/industry"
	"github.com/corpgraph/corpgraph/internal/location"
	"github.com/corpgraph/corpgraph/internal/logging"
	"github.com/corpgraph/corpgraph/internal/metrics"
	"github.com/corpgraph/corpgraph/internal/parser"
	"github.com/corpgraph/corpgraph/internal/pipeline"
	"github.com/corpgraph/corpgraph/internal/textract"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpgraph",
		Short: "Company website analyzer and knowledge-graph builder.",
		Long: `corpgraph crawls a company's public website, extracts structured
business facts (identity, products, people, locations, technology
signals), and assembles them into a knowledge graph.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() {
		if _, err := config.Init(cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		metrics.Init()
	})

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., /etc/corpgraph, $HOME/.corpgraph)")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newCrawlCmd())

	return cmd
}

// buildAnalyzer assembles the full pipeline from the loaded configuration.
func buildAnalyzer(logger *zap.Logger) (*pipeline.Analyzer, error) {
	crawlCfg, err := crawler.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("crawler config: %w", err)
	}
	parserCfg := parser.Load(viper.GetViper())

	fetcher, err := crawler.NewCollyFetcher(crawlCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build fetcher: %w", err)
	}
	walker := crawler.New(crawlCfg, parserCfg, fetcher, sysclock.New(), sha256hash.New(), logger)

	var places location.PlaceLookup
	if client := location.NewPlacesClient(location.PlacesConfig{
		APIKey:  viper.GetString("location.places_api_key"),
		BaseURL: viper.GetString("location.places_base_url"),
		Timeout: viper.GetDuration("location.places_timeout"),
	}); client != nil {
		places = client
	}
	resolver := location.NewResolver(places, logger)
	extractor := extract.New(resolver, logger)

	var matcher *industry.Matcher
	csvPath := viper.GetString("industry.csv_path")
	if csvPath != "" {
		matcher, err = industry.LoadCSV(csvPath)
		if err != nil {
			// The taxonomy is an enrichment, not a requirement.
			logger.Warn("industry taxonomy unavailable", zap.String("path", csvPath), zap.Error(err))
			matcher = nil
		}
	}

	var textExtractor textract.Extractor = textract.Disabled{}
	if client := textract.NewHTTPExtractor(textract.Config{
		Endpoint: viper.GetString("textract.endpoint"),
		APIKey:   viper.GetString("textract.api_key"),
		Timeout:  viper.GetDuration("textract.timeout"),
	}); client != nil {
		textExtractor = client
	}

	return pipeline.New(pipeline.Load(viper.GetViper()), walker, extractor, textExtractor, matcher, logger), nil
}

func newLogger() (*zap.Logger, error) {
	return logging.New(viper.GetBool("logging.development"))
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
