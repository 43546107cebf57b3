package sitenav

import (
	"context"
	"time"
)

// Crawler builds the full section index for one origin.
type Crawler interface {
	// CrawlOrigin traverses the origin breadth-first from its root,
	// bounded by page-count and depth caps, and returns the sections of
	// every reachable page in discovery order. Individual page failures
	// are skipped; an origin whose root cannot be fetched yields an
	// empty (non-nil error-free) section list.
	CrawlOrigin(ctx context.Context, origin string) ([]Section, error)
}

// SitemapSource discovers the page URLs an origin advertises through
// robots.txt Sitemap directives or a /sitemap.xml document. Crawlers use
// these as additional breadth-first seeds; discovery failure is soft and
// yields an empty list.
type SitemapSource interface {
	DiscoverSeeds(ctx context.Context, origin string) ([]string, error)
}

// IndexEntry is one cached origin index.
type IndexEntry struct {
	Origin    string    `json:"origin"`
	Sections  []Section `json:"sections"`
	IndexedAt time.Time `json:"indexedAt"`
}

// IndexService memoizes crawl results per origin with a time-to-live.
type IndexService interface {
	// Get returns the sections for an origin, crawling on a miss or
	// when the cached entry is older than the TTL. Concurrent calls for
	// the same stale origin share one crawl.
	Get(ctx context.Context, origin string) ([]Section, error)

	// Invalidate drops the cached entry for an origin, forcing the next
	// Get to crawl.
	Invalidate(origin string)

	// Origins returns the currently cached origin keys.
	Origins() []string
}
