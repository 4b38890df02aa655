package parser

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	require.NoError(t, err)
	return doc
}

func TestStructuredProducts(t *testing.T) {
	t.Parallel()

	doc := docFrom(t, `<html><body>
<div class="product"><h3>Payment Gateway Suite</h3><p>Accept payments worldwide.</p></div>
<div class="product"><h3>Cookie Policy</h3><p>We use cookies.</p></div>
</body></html>`)

	got := ExtractProductCandidates(doc, "https://acme.com/products", DefaultConfig())
	require.NotEmpty(t, got)
	require.Equal(t, "Payment Gateway Suite", got[0].Name)
	require.Equal(t, "Accept payments worldwide.", got[0].Description)
	for _, c := range got {
		require.NotEqual(t, "Cookie Policy", c.Name)
	}
}

func TestListProductsSplitsNameDescription(t *testing.T) {
	t.Parallel()

	doc := docFrom(t, `<html><body>
<h2>Our Services</h2>
<ul>
<li>Fraud Detection: Real-time transaction scoring</li>
<li>Billing - Subscription invoicing for SaaS</li>
<li>Misc</li>
</ul>
</body></html>`)

	got := listProducts(doc)
	require.Len(t, got, 2)
	require.Equal(t, "Fraud Detection", got[0].Name)
	require.Equal(t, "Real-time transaction scoring", got[0].Description)
	require.Equal(t, "Billing", got[1].Name)
}

func TestListProductsIgnoresUnrelatedLists(t *testing.T) {
	t.Parallel()

	doc := docFrom(t, `<html><body>
<h2>Quick Links</h2>
<ul><li>Something: not a product</li></ul>
</body></html>`)

	require.Empty(t, listProducts(doc))
}

func TestDefinitionListProducts(t *testing.T) {
	t.Parallel()

	doc := docFrom(t, `<html><body>
<dl>
<dt>Ledger API</dt><dd>Double-entry accounting primitives.</dd>
<dt>Vault</dt><dd>Tokenized card storage.</dd>
</dl>
</body></html>`)

	got := definitionListProducts(doc)
	require.Len(t, got, 2)
	require.Equal(t, "Ledger API", got[0].Name)
	require.Equal(t, "Double-entry accounting primitives.", got[0].Description)
}

func TestProductHeadingThresholdRelaxedOnProductPages(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="product"><h3>Vault Pro</h3><p>Secure storage.</p></div></body></html>`
	cfg := DefaultConfig()

	onProductPage := ExtractProductCandidates(docFrom(t, html), "https://acme.com/products/vault", cfg)
	require.NotEmpty(t, onProductPage)

	// "Vault Pro" is 9 chars, below the off-page threshold of 10.
	offProductPage := ExtractProductCandidates(docFrom(t, html), "https://acme.com/blog/post", cfg)
	for _, c := range offProductPage {
		require.NotEqual(t, "Vault Pro", c.Name)
	}
}

func TestDedupeProductsCaseInsensitiveAndCapped(t *testing.T) {
	t.Parallel()

	var in []ProductCandidate
	in = append(in,
		ProductCandidate{Name: "Widgets"},
		ProductCandidate{Name: "widgets"},
		ProductCandidate{Name: "Gadgets"},
		ProductCandidate{Name: "abc"}, // too short
	)
	got := dedupeProducts(in, 20)
	require.Len(t, got, 2)

	// Idempotent: running dedupe on its own output changes nothing.
	again := dedupeProducts(got, 20)
	require.Equal(t, got, again)
}
