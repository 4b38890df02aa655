package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpgraph/corpgraph/internal/parser"
)

func TestExtractLogoPrefersExplicitLogoImage(t *testing.T) {
	t.Parallel()

	pages := []parser.Page{{
		Images: []parser.Image{
			{URL: "https://cdn.acme.com/hero-banner.jpg", Alt: "team at work"},
			{URL: "https://cdn.acme.com/logo.svg", Alt: "logo"},
			{URL: "https://cdn.acme.com/brand/partner.png", Alt: "partner brand"},
		},
	}}

	got := ExtractLogo(pages, "https://acme.com")
	require.Equal(t, "https://cdn.acme.com/logo.svg", got)
}

func TestExtractLogoSchemaBeatsOGImage(t *testing.T) {
	t.Parallel()

	pages := []parser.Page{{
		HTML: `<head>
<meta property="og:image" content="https://cdn.acme.com/og-logo.png">
<script type="application/ld+json">{"logo": "https://cdn.acme.com/schema-logo.png"}</script>
</head>`,
	}}

	got := ExtractLogo(pages, "https://acme.com")
	require.Equal(t, "https://cdn.acme.com/schema-logo.png", got)
}

func TestExtractLogoFallsBackToConventionalPath(t *testing.T) {
	t.Parallel()

	got := ExtractLogo([]parser.Page{{}}, "https://acme.com")
	require.Equal(t, "https://acme.com/logo.svg", got)

	got = ExtractLogo(nil, "acme.com")
	require.Equal(t, "https://acme.com/logo.svg", got)

	require.Empty(t, ExtractLogo(nil, ""))
}

func TestScoreImage(t *testing.T) {
	t.Parallel()

	// alt "logo" + /logo suffix + /logo path + svg bonus.
	perfect := parser.Image{URL: "https://a.com/logo.svg", Alt: "logo"}
	generic := parser.Image{URL: "https://a.com/photos/office.jpg", Alt: "our office"}
	require.Greater(t, scoreImage(perfect), scoreImage(generic))
	require.Zero(t, scoreImage(generic))

	headerPNG := parser.Image{URL: "https://a.com/header/brand-mark-100x100.png", Alt: "brand"}
	require.Greater(t, scoreImage(headerPNG), 0)
}
