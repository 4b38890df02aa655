package parser

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func detect(t *testing.T, html string, headers http.Header) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	require.NoError(t, err)
	return DetectTech([]byte(html), doc, headers)
}

func TestDetectTechFromHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Server", "nginx/1.25")
	headers.Set("X-Powered-By", "Express")
	headers.Set("Cf-Ray", "8a1b2c3d4e5f")

	tags := detect(t, "<html><body></body></html>", headers)
	require.Contains(t, tags, "Nginx")
	require.Contains(t, tags, "Express")
	require.Contains(t, tags, "Cloudflare")
}

func TestDetectTechFromHTMLSignatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"wordpress", `<link rel="stylesheet" href="/wp-content/themes/site/style.css">`, "WordPress"},
		{"react", `<div data-reactroot></div>`, "React"},
		{"nextjs", `<script src="/_next/static/chunks/main.js"></script>`, "Next.js"},
		{"vue", `<script src="/js/vue.runtime.min.js"></script>`, "Vue.js"},
		{"jquery", `<script src="https://ajax.googleapis.com/ajax/libs/jquery/3.6.0/jquery.min.js"></script>`, "jQuery"},
		{"bootstrap", `<link href="/css/bootstrap.min.css" rel="stylesheet">`, "Bootstrap"},
		{"analytics", `<script src="https://www.googletagmanager.com/gtag/js?id=G-ABC1234XYZ"></script>`, "Google Analytics"},
		{"shopify", `<img src="https://cdn.shopify.com/s/files/1/logo.png">`, "Shopify"},
		{"stripe", `<script src="https://js.stripe.com/v3/"></script>`, "Stripe"},
		{"rails", `<meta name="csrf-param" content="authenticity_token"><meta name="csrf-token" content="abc">`, "Ruby on Rails"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tags := detect(t, "<html><head>"+tc.html+"</head><body></body></html>", http.Header{})
			require.Contains(t, tags, tc.want)
		})
	}
}

func TestDetectTechCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Server", "cloudflare")
	headers.Set("Cf-Ray", "8a1b2c3d4e5f")

	tags := detect(t, "<html><body></body></html>", headers)
	count := 0
	for _, tag := range tags {
		if tag == "Cloudflare" {
			count++
		}
	}
	require.Equal(t, 1, count)
}
