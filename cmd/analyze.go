package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newAnalyzeCmd runs the full pipeline for one domain and prints the
// merged company document plus graph as JSON.
func newAnalyzeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <domain>",
		Short: "Crawl a company website and build its knowledge graph.",
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

			analysis, err := analyzer.Analyze(cmd.Context(), args[0])
			if err != nil {
				logger.Error("analysis failed", zap.String("domain", args[0]), zap.Error(err))
				return fmt.Errorf("could not analyze %s: %w", args[0], err)
			}

			return writeJSON(output, analysis)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON result to file instead of stdout")
	return cmd
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
