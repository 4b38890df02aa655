package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/crawler"
	"github.com/corpgraph/corpgraph/internal/location"
	"github.com/corpgraph/corpgraph/internal/parser"
)

func TestExtractCompanyNameCleansTitleSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Acme Corp | Home", "Acme Corp"},
		{"Acme Corp - Official Site", "Acme Corp"},
		{"Acme Corp – Website for Widgets", "Acme Corp"},
		{"Acme Corp", "Acme Corp"},
	}
	for _, tc := range tests {
		got := ExtractCompanyName([]parser.Page{{Title: tc.title}})
		require.Equal(t, tc.want, got)
	}
}

func TestExtractCompanyNameSkipsUnusableTitles(t *testing.T) {
	t.Parallel()

	pages := []parser.Page{
		{Title: ""},
		{Title: strings.Repeat("x", 120)},
		{Title: "Acme Corp | Home"},
	}
	require.Equal(t, "Acme Corp", ExtractCompanyName(pages))

	require.Empty(t, ExtractCompanyName(nil))
}

func TestExtractAggregatesAcrossPages(t *testing.T) {
	t.Parallel()

	e := New(location.NewResolver(nil, zap.NewNop()), zap.NewNop())

	result := crawler.CrawlResult{
		Domain: "https://acme.com",
		Pages: []parser.Page{
			{
				URL:         "https://acme.com",
				Title:       "Acme Corp | Home",
				Text:        "Reach us at hello@acme.com. We are headquartered in Mumbai, India.",
				TechSignals: []string{"React", "Cloudflare"},
				Links:       []parser.Link{{URL: "https://linkedin.com/company/acme"}},
			},
			{
				URL:         "https://acme.com/about",
				Text:        "Also write support@acme.com.",
				TechSignals: []string{"React", "Google Analytics"},
			},
		},
	}

	h, err := e.Extract(context.Background(), result)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", h.CompanyName)
	require.Equal(t, []string{"hello@acme.com", "support@acme.com"}, h.Emails)
	require.Equal(t, []string{"React", "Cloudflare", "Google Analytics"}, h.TechStack)
	require.Equal(t, "https://linkedin.com/company/acme", h.Social.LinkedIn)
	require.Contains(t, h.Locations.Headquarters, "Mumbai")
}
