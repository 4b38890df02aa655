package textract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/corpgraph/corpgraph/internal/company"
)

// Extractor converts a page-set summary plus heuristic hints into a
// structured company document. Implementations may fail or return
// malformed output; callers substitute company.Empty() and proceed.
type Extractor interface {
	ExtractDocument(ctx context.Context, summary string, hints company.Heuristics) (company.Document, error)
}

// Disabled is the no-op Extractor used when no extraction service is
// configured. It always reports an empty document without error so the
// pipeline runs on heuristics alone.
type Disabled struct{}

func (Disabled) ExtractDocument(context.Context, string, company.Heuristics) (company.Document, error) {
	return company.Empty(), nil
}

// Config configures the HTTP extraction client.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// HTTPExtractor calls an external extraction endpoint that accepts the
// summary and hints and answers with the strict document JSON.
type HTTPExtractor struct {
	client   *resty.Client
	endpoint string
}

// NewHTTPExtractor builds the client, or nil when no endpoint is
// configured.
func NewHTTPExtractor(cfg Config) *HTTPExtractor {
	if cfg.Endpoint == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := resty.New().SetTimeout(timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &HTTPExtractor{client: client, endpoint: cfg.Endpoint}
}

type extractRequest struct {
	Summary string             `json:"summary"`
	Hints   company.Heuristics `json:"hints"`
}

// ExtractDocument posts the summary and hints and decodes the response
// body as a company document. Markdown code fences around the JSON are
// tolerated and stripped.
func (e *HTTPExtractor) ExtractDocument(ctx context.Context, summary string, hints company.Heuristics) (company.Document, error) {
	res, err := e.client.R().
		SetContext(ctx).
		SetBody(extractRequest{Summary: summary, Hints: hints}).
		SetHeader("content-type", "application/json").
		Post(e.endpoint)
	if err != nil {
		return company.Document{}, fmt.Errorf("text extraction request: %w", err)
	}
	if res.IsError() {
		return company.Document{}, fmt.Errorf("text extraction: status %d", res.StatusCode())
	}
	return ParseDocument(res.Body())
}

// ParseDocument decodes a strict company document from raw service
// output, stripping optional markdown fences first. The company block
// must be present for the document to count as valid.
func ParseDocument(raw []byte) (company.Document, error) {
	cleaned := stripFences(strings.TrimSpace(string(raw)))

	var doc company.Document
	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(&doc); err != nil {
		return company.Document{}, fmt.Errorf("decode document: %w", err)
	}
	if doc.Company.Name == "" && doc.Company.Domain == "" && len(doc.Products) == 0 && len(doc.People) == 0 {
		return company.Document{}, fmt.Errorf("document is structurally empty")
	}
	return doc, nil
}

func stripFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
