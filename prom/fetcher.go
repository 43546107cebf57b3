package prom

import (
	"context"

	"github.com/sitenav/sitenav"
)

var _ sitenav.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a sitenav.Fetcher and counts fetched pages and fetch
// failures.
type Fetcher struct {
	next    sitenav.Fetcher
	metrics *Metrics
}

// NewFetcher creates an instrumented Fetcher.
func NewFetcher(next sitenav.Fetcher, metrics *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: metrics}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.metrics.CrawlFailuresTotal.Inc()
		return "", err
	}
	f.metrics.PagesCrawledTotal.Inc()
	return html, nil
}
