// Package pipeline wires the stages together: crawl, heuristic
// extraction, external text extraction, industry matching, merge,
// fallback finalization, and graph assembly. Each stage is also callable
// on its own so failures can be attributed precisely.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/corpgraph/corpgraph/internal/company"
	"github.com/corpgraph/corpgraph/internal/crawler"
	"github.com/corpgraph/corpgraph/internal/extract"
	"github.com/corpgraph/corpgraph/internal/graph"
	iduuid "github.com/corpgraph/corpgraph/internal/id/uuid"
	"github.com/corpgraph/corpgraph/internal/industry"
	"github.com/corpgraph/corpgraph/internal/metrics"
	"github.com/corpgraph/corpgraph/internal/textract"
)

// IndustryScoreThreshold is the default minimum taxonomy match score
// needed to override the text extractor's industry guess.
const IndustryScoreThreshold = 20

// Config carries the pipeline's tuning knobs.
type Config struct {
	IndustryScoreThreshold int
}

// DefaultConfig mirrors the defaults registered in internal/config.
func DefaultConfig() Config {
	return Config{IndustryScoreThreshold: IndustryScoreThreshold}
}

// Load constructs a Config by reading from Viper.
func Load(v *viper.Viper) Config {
	return Config{
		IndustryScoreThreshold: v.GetInt("industry.score_threshold"),
	}
}

// Analysis is the full result of one run.
type Analysis struct {
	RunID   string           `json:"run_id"`
	Company company.Document `json:"company"`
	Graph   graph.Graph      `json:"graph"`
}

// Analyzer runs the end-to-end pipeline for a domain.
type Analyzer struct {
	cfg       Config
	crawler   *crawler.Crawler
	extractor *extract.Extractor
	textract  textract.Extractor
	industry  *industry.Matcher
	ids       *iduuid.Generator
	logger    *zap.Logger
}

// New assembles an Analyzer. textExtractor may be textract.Disabled{};
// matcher may be nil when no taxonomy is loaded. A non-positive industry
// threshold falls back to the default.
func New(cfg Config, c *crawler.Crawler, e *extract.Extractor, textExtractor textract.Extractor, matcher *industry.Matcher, logger *zap.Logger) *Analyzer {
	if textExtractor == nil {
		textExtractor = textract.Disabled{}
	}
	if cfg.IndustryScoreThreshold <= 0 {
		cfg.IndustryScoreThreshold = IndustryScoreThreshold
	}
	return &Analyzer{
		cfg:       cfg,
		crawler:   c,
		extractor: e,
		textract:  textExtractor,
		industry:  matcher,
		ids:       iduuid.New(),
		logger:    logger,
	}
}

// Analyze runs the full pipeline. Only an empty crawl is fatal; every
// other stage degrades to best-effort output.
func (a *Analyzer) Analyze(ctx context.Context, domain string) (Analysis, error) {
	runID, err := a.ids.NewID()
	if err != nil {
		return Analysis{}, err
	}
	logger := a.logger.With(zap.String("run_id", runID), zap.String("domain", domain))

	result, err := a.Crawl(ctx, domain)
	if err != nil {
		metrics.ObserveAnalysis("crawl_failed")
		return Analysis{}, err
	}
	if len(result.Pages) == 0 {
		metrics.ObserveAnalysis("crawl_failed")
		return Analysis{}, fmt.Errorf("crawl %s: %w", domain, crawler.ErrNoPages)
	}

	heur, err := a.Extract(ctx, result)
	if err != nil {
		metrics.ObserveAnalysis("extract_failed")
		return Analysis{}, err
	}

	summary := textract.Summarize(result)

	doc, err := a.textract.ExtractDocument(ctx, summary, heur)
	if err != nil {
		// Text extraction is an optional oracle; fall back to a
		// structurally valid empty document.
		logger.Warn("text extraction failed, continuing on heuristics", zap.Error(err))
		doc = company.Empty()
	}

	a.applyIndustryMatch(&doc, summary, heur)

	doc, err = company.Merge(doc, heur)
	if err != nil {
		metrics.ObserveAnalysis("merge_failed")
		return Analysis{}, err
	}

	company.Finalize(&doc, pageContext(result))

	g := graph.Generate(doc)
	metrics.ObserveAnalysis("ok")
	logger.Info("analysis complete",
		zap.Int("pages", len(result.Pages)),
		zap.Int("nodes", g.Stats.TotalNodes),
		zap.Int("edges", g.Stats.TotalEdges),
	)

	return Analysis{RunID: runID, Company: doc, Graph: g}, nil
}

// Crawl exposes the crawl stage on its own.
func (a *Analyzer) Crawl(ctx context.Context, domain string) (crawler.CrawlResult, error) {
	return a.crawler.Crawl(ctx, domain)
}

// Extract exposes the heuristic extraction stage on its own.
func (a *Analyzer) Extract(ctx context.Context, result crawler.CrawlResult) (company.Heuristics, error) {
	return a.extractor.Extract(ctx, result)
}

// Generate exposes graph assembly on its own.
func (a *Analyzer) Generate(doc company.Document) graph.Graph {
	return graph.Generate(doc)
}

// applyIndustryMatch overrides the text extractor's industry guess with
// the taxonomy's top match when it scores above the confidence threshold.
func (a *Analyzer) applyIndustryMatch(doc *company.Document, summary string, heur company.Heuristics) {
	if a.industry == nil {
		return
	}
	best := a.industry.BestMatch(summary, heur.CompanyName, heur.Domain)
	if best == nil || best.Score <= a.cfg.IndustryScoreThreshold {
		return
	}
	doc.Company.Industry = best.Industry
	doc.Company.SubIndustry = best.SubIndustry
	doc.Company.Classification = &company.Classification{
		Sector:         best.Sector,
		Industry:       best.Industry,
		SubIndustry:    best.SubIndustry,
		SICCode:        best.SICCode,
		SICDescription: best.SICDescription,
		MatchScore:     best.Score,
	}
}

// pageContext gathers the crawl-derived signals the fallback generators
// consume.
func pageContext(result crawler.CrawlResult) company.PageContext {
	var texts []string
	var urls []string
	var navCategories []string
	var metaDescription string

	for _, p := range result.Pages {
		texts = append(texts, p.Text)
		urls = append(urls, p.URL)
		for _, c := range p.CategoryCandidates {
			navCategories = append(navCategories, c.Name)
		}
		if metaDescription == "" && p.MetaDescription != "" {
			metaDescription = p.MetaDescription
		}
	}

	return company.PageContext{
		Text:            strings.Join(texts, "\n\n"),
		URLs:            urls,
		NavCategories:   navCategories,
		MetaDescription: metaDescription,
	}
}
