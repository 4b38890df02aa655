package parser

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ga4MeasurementID   = regexp.MustCompile(`(?i)g-[a-z0-9]{10}`)
	universalGAID      = regexp.MustCompile(`(?i)ua-\d{4,9}-\d{1,4}`)
	ngAttribute        = regexp.MustCompile(`ng-[a-z]+=`)
	chunkScriptPattern = regexp.MustCompile(`\.chunk\.js`)
)

// DetectTech combines response-header inspection with HTML signature
// matching. Each rule contributes at most one tag; duplicates collapse.
func DetectTech(html []byte, doc *goquery.Document, headers http.Header) []string {
	var tags []string
	add := func(t string) { tags = append(tags, t) }
	lower := strings.ToLower(string(html))
	has := func(sub string) bool { return strings.Contains(lower, sub) }

	// Server-side signals from headers.
	if server := strings.ToLower(headers.Get("Server")); server != "" {
		if strings.Contains(server, "nginx") {
			add("Nginx")
		}
		if strings.Contains(server, "apache") {
			add("Apache")
		}
		if strings.Contains(server, "microsoft-iis") {
			add("IIS")
		}
		if strings.Contains(server, "cloudflare") {
			add("Cloudflare")
		}
	}
	if powered := strings.ToLower(headers.Get("X-Powered-By")); powered != "" {
		if strings.Contains(powered, "express") {
			add("Express")
		}
		if strings.Contains(powered, "php") {
			add("PHP")
		}
		if strings.Contains(powered, "asp.net") {
			add("ASP.NET")
		}
		if strings.Contains(powered, "next.js") {
			add("Next.js")
		}
	}
	if gen := headers.Get("X-Generator"); gen != "" {
		add(gen)
	}
	if headers.Get("X-Drupal-Cache") != "" {
		add("Drupal")
	}
	if headers.Get("Cf-Ray") != "" {
		add("Cloudflare")
	}
	if headers.Get("X-Amz-Cf-Id") != "" {
		add("AWS CloudFront")
	}
	if headers.Get("X-Fastly-Request-Id") != "" {
		add("Fastly")
	}

	generator := doc.Find(`meta[name="generator"]`).AttrOr("content", "")

	if has("wp-content/") || has("wp-includes/") || has("wp-json/") || has("wp-admin") || has("/wp-") ||
		strings.Contains(generator, "WordPress") ||
		strings.Contains(doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""), "wp-content") ||
		(has("wordpress") && has(".css")) {
		add("WordPress")
	}

	if doc.Find("[data-reactroot]").Length() > 0 ||
		doc.Find("[data-reactid]").Length() > 0 ||
		doc.Find("[data-react]").Length() > 0 ||
		(doc.Find("#root").Length() > 0 && (has("react") || has("bundle.js"))) ||
		doc.Find("#__next").Length() > 0 ||
		has("react-dom") || has("react.production") || has("react.development") ||
		(has("/static/js/") && has("react")) ||
		has("/_next/") || has("__next") || has("react-router") ||
		(chunkScriptPattern.MatchString(lower) && doc.Find("#root").Length() > 0) {
		add("React")
	}

	if doc.Find("[data-v-]").Length() > 0 ||
		has("vue.js") || has("vue.runtime") || has("nuxt.js") ||
		doc.Find("[v-cloak]").Length() > 0 {
		add("Vue.js")
	}

	if doc.Find("[ng-app]").Length() > 0 ||
		doc.Find("[ng-controller]").Length() > 0 ||
		doc.Find("[ng-version]").Length() > 0 ||
		has("angular.js") || has("angular.min.js") ||
		ngAttribute.MatchString(lower) || has("@angular/") {
		add("Angular")
	}

	if has("_next/static") || has("__next_data__") || doc.Find(`script[src*="_next"]`).Length() > 0 {
		add("Next.js")
	}

	if has("gatsby") || strings.Contains(generator, "Gatsby") {
		add("Gatsby")
	}

	if has("svelte") || doc.Find(`[class*="svelte-"]`).Length() > 0 {
		add("Svelte")
	}

	if has("jquery.min.js") || has("jquery.js") || has("ajax.googleapis.com/ajax/libs/jquery/") {
		add("jQuery")
	}

	if has("bootstrap.min.css") || has("bootstrap.css") || has("bootstrap.min.js") ||
		doc.Find(`[class*="col-md-"]`).Length() > 0 ||
		doc.Find(`[class*="col-sm-"]`).Length() > 0 {
		add("Bootstrap")
	}

	if has("tailwindcss") || has("tailwind.css") ||
		(doc.Find(`[class*="flex"]`).Length() > 10 && doc.Find(`[class*="sm:"]`).Length() > 5) {
		add("Tailwind CSS")
	}

	if has("google-analytics.com/analytics.js") ||
		has("googletagmanager.com/gtag/js") ||
		has("googletagmanager.com/gtm.js") ||
		has("gtag(") || has("ga('create')") ||
		ga4MeasurementID.MatchString(lower) ||
		universalGAID.MatchString(lower) ||
		has("_gaq") || has("analytics.google.com") {
		add("Google Analytics")
	}

	if has("js.hs-analytics.net") || has("js.hs-scripts.com") || has("js.hsforms.net") ||
		has("forms.hubspot.com") || has("hs-scripts.com") || has("hsforms.com") || has("_hsq") ||
		(has("hubspot.com") && has("script")) ||
		doc.Find("[data-hsjs-portal]").Length() > 0 ||
		doc.Find("[data-hs-form]").Length() > 0 {
		add("HubSpot")
	}

	if has("cdn.shopify.com") || has("shopify.com/s/files") ||
		doc.Find(`meta[name="shopify-checkout-api-token"]`).Length() > 0 {
		add("Shopify")
	}

	if has("wixsite.com") || has("static.wixstatic.com") {
		add("Wix")
	}

	if has("webflow.com") || has("webflow.io") || doc.Find("html").AttrOr("data-wf-page", "") != "" {
		add("Webflow")
	}

	if has("squarespace.com") || has("static.squarespace.com") {
		add("Squarespace")
	}

	if has("stripe.com/v3/") || has("js.stripe.com") {
		add("Stripe")
	}

	if (has("express") && has("node")) || strings.Contains(generator, "Node") {
		add("Node.js")
	}

	if has("csrfmiddlewaretoken") || has("__admin_media_prefix__") {
		add("Django")
	}

	if (has("csrf-param") && has("csrf-token")) || doc.Find(`meta[name="csrf-param"]`).Length() > 0 {
		add("Ruby on Rails")
	}

	if has("laravel") || (has("csrf-token") && has("laravel_session")) {
		add("Laravel")
	}

	if (has(".ts") && has("typescript")) || has("__typescript") {
		add("TypeScript")
	}

	return dedupeStrings(tags)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
