// Package prom defines the Prometheus collectors for the service and
// exposes the scrape handler.
package prom

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SearchesTotal       *prometheus.CounterVec
	PagesCrawledTotal   prometheus.Counter
	CrawlFailuresTotal  prometheus.Counter
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
}

// New creates and registers all collectors with reg. A nil reg falls
// back to the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitenav_http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitenav_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
			},
			[]string{"method", "path"},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitenav_searches_total",
				Help: "Total search requests by outcome (match, no_match, clarification, error).",
			},
			[]string{"outcome"},
		),
		PagesCrawledTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sitenav_pages_crawled_total",
				Help: "Total pages fetched by the crawler.",
			},
		),
		CrawlFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sitenav_crawl_failures_total",
				Help: "Total page fetches that failed and were skipped.",
			},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sitenav_index_cache_hits_total",
				Help: "Total index lookups served from the cache.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sitenav_index_cache_misses_total",
				Help: "Total index lookups that triggered a crawl.",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchesTotal,
		m.PagesCrawledTotal,
		m.CrawlFailuresTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler for the default
// registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
