package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/corpgraph/corpgraph/internal/crawler"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	used, err := Init("")
	require.NoError(t, err)
	require.Empty(t, used, "no config file on disk, defaults carry the run")

	cfg, err := crawler.Load(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, 6, cfg.MaxPages)
	require.Equal(t, 3, cfg.Concurrency)
	require.NotEmpty(t, cfg.UserAgent)
	require.Contains(t, cfg.SeedPaths, "/about")
	require.Contains(t, cfg.ExcludeKeywords, "blog")

	require.Equal(t, "data/sub_industry_classification.csv", viper.GetString("industry.csv_path"))
	require.Equal(t, 20, viper.GetInt("industry.score_threshold"))
	require.Empty(t, viper.GetString("textract.endpoint"))
}

func TestInitExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crawler:\n  max_pages: 12\n"), 0o600))

	used, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, 12, viper.GetInt("crawler.max_pages"))
	// Unset keys still fall back to defaults.
	require.Equal(t, 3, viper.GetInt("crawler.concurrency"))
}

func TestInitMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
