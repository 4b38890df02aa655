package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCrawlCmd runs the crawl stage alone and prints the raw page set.
// Useful for debugging which pages a domain actually yields before
// blaming an extractor.
func newCrawlCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "crawl <domain>",
		Short: "Crawl a company website and print the fetched page set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // best-effort flush

			analyzer, err := buildAnalyzer(logger)
			if err != nil {
				return err
			}

			result, err := analyzer.Crawl(cmd.Context(), args[0])
			if err != nil {
				logger.Error("crawl failed", zap.String("domain", args[0]), zap.Error(err))
				return fmt.Errorf("could not crawl %s: %w", args[0], err)
			}

			return writeJSON(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON result to file instead of stdout")
	return cmd
}
