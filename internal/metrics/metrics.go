// Package metrics exposes Prometheus collectors for the analyzer.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesCrawledTotal    prometheus.Counter
	fetchErrorsTotal     prometheus.Counter
	crawlPagesPerRun     prometheus.Histogram
	crawlDurationSeconds prometheus.Histogram
	analysesTotal        *prometheus.CounterVec
	placesLookupsTotal   *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		pagesCrawledTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "corpgraph_pages_crawled_total",
				Help: "Total number of pages successfully fetched and parsed.",
			},
		)

		fetchErrorsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "corpgraph_fetch_errors_total",
				Help: "Total number of page fetches that failed.",
			},
		)

		crawlPagesPerRun = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "corpgraph_crawl_pages_per_run",
				Help:    "Histogram of page counts per crawl run.",
				Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
			},
		)

		crawlDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "corpgraph_crawl_duration_seconds",
				Help:    "Histogram of crawl wall-clock durations.",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60},
			},
		)

		analysesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corpgraph_analyses_total",
				Help: "Total number of analyses, labeled by outcome.",
			},
			[]string{"status"},
		)

		placesLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corpgraph_places_lookups_total",
				Help: "Total number of external place lookups, labeled by outcome.",
			},
			[]string{"status"},
		)
	})
}

// IncPagesCrawled counts one successfully fetched and parsed page.
func IncPagesCrawled() {
	if pagesCrawledTotal == nil {
		return
	}
	pagesCrawledTotal.Inc()
}

// IncFetchError counts one failed page fetch.
func IncFetchError() {
	if fetchErrorsTotal == nil {
		return
	}
	fetchErrorsTotal.Inc()
}

// ObserveCrawl records the size and duration of a completed crawl run.
func ObserveCrawl(pages int, duration time.Duration) {
	if crawlPagesPerRun == nil {
		return
	}
	crawlPagesPerRun.Observe(float64(pages))
	crawlDurationSeconds.Observe(duration.Seconds())
}

// ObserveAnalysis counts one completed analysis with the given outcome.
func ObserveAnalysis(status string) {
	if analysesTotal == nil {
		return
	}
	analysesTotal.WithLabelValues(status).Inc()
}

// ObservePlacesLookup counts one external place lookup with the given outcome.
func ObservePlacesLookup(status string) {
	if placesLookupsTotal == nil {
		return
	}
	placesLookupsTotal.WithLabelValues(status).Inc()
}
