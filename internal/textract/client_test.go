package textract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corpgraph/corpgraph/internal/company"
)

func TestParseDocumentStripsFences(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"company\": {\"name\": \"Acme\", \"domain\": \"https://acme.com\"}}\n```"
	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "Acme", doc.Company.Name)

	raw = "```\n{\"company\": {\"name\": \"Acme\"}}\n```"
	doc, err = ParseDocument([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "Acme", doc.Company.Name)
}

func TestParseDocumentRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("not json at all"))
	require.Error(t, err)
}

func TestParseDocumentRejectsStructurallyEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte(`{"company": {}}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "structurally empty")
}

func TestDisabledExtractorReturnsEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := Disabled{}.ExtractDocument(context.Background(), "summary", company.Heuristics{})
	require.NoError(t, err)
	require.Empty(t, doc.Company.Name)
	require.NotNil(t, doc.Products)
	require.NotNil(t, doc.People)
}

func TestNewHTTPExtractorRequiresEndpoint(t *testing.T) {
	t.Parallel()

	require.Nil(t, NewHTTPExtractor(Config{}))
	require.NotNil(t, NewHTTPExtractor(Config{Endpoint: "https://extract.example/v1"}))
}

func TestHTTPExtractorRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req extractRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "the summary", req.Summary)
		require.Equal(t, "Acme", req.Hints.CompanyName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"company": {"name": "Acme Corp", "domain": "https://acme.com"}}`))
	}))
	t.Cleanup(srv.Close)

	e := NewHTTPExtractor(Config{Endpoint: srv.URL, Timeout: time.Second})
	doc, err := e.ExtractDocument(context.Background(), "the summary", company.Heuristics{CompanyName: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", doc.Company.Name)
}

func TestHTTPExtractorServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	e := NewHTTPExtractor(Config{Endpoint: srv.URL, Timeout: time.Second})
	_, err := e.ExtractDocument(context.Background(), "s", company.Heuristics{})
	require.Error(t, err)
}
