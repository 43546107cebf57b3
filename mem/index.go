// Package mem implements an in-memory origin index cache with a
// time-to-live. Entries live for the TTL and are recrawled lazily on
// the first access after expiry.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sitenav/sitenav"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a cached origin index stays fresh.
const DefaultTTL = 10 * time.Minute

// Ensure Index implements sitenav.IndexService at compile time.
var _ sitenav.IndexService = (*Index)(nil)

// Index caches crawl results per origin. Concurrent Gets for the same
// missing or stale origin are collapsed into a single crawl, so a burst
// of searches never triggers duplicate traffic against the target site.
type Index struct {
	crawler sitenav.Crawler
	ttl     time.Duration

	// Now returns the current time. Overridable in tests.
	Now func() time.Time

	// OnHit and OnMiss, when set, are invoked for cache hits and for
	// lookups that trigger a crawl. Used for metrics.
	OnHit  func()
	OnMiss func()

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*sitenav.IndexEntry
}

// NewIndex creates an Index backed by the given crawler. A non-positive
// ttl falls back to DefaultTTL.
func NewIndex(crawler sitenav.Crawler, ttl time.Duration) *Index {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Index{
		crawler: crawler,
		ttl:     ttl,
		Now:     time.Now,
		entries: make(map[string]*sitenav.IndexEntry),
	}
}

// Get returns the sections for an origin, crawling on a cache miss or
// when the cached entry has outlived the TTL.
func (idx *Index) Get(ctx context.Context, origin string) ([]sitenav.Section, error) {
	origin, err := sitenav.NormalizeOrigin(origin)
	if err != nil {
		return nil, err
	}

	if sections, ok := idx.fresh(origin); ok {
		if idx.OnHit != nil {
			idx.OnHit()
		}
		return sections, nil
	}

	v, err, _ := idx.group.Do(origin, func() (any, error) {
		// A concurrent caller may have refreshed the entry while this
		// call waited on the flight group.
		if sections, ok := idx.fresh(origin); ok {
			return sections, nil
		}

		if idx.OnMiss != nil {
			idx.OnMiss()
		}
		sections, err := idx.crawler.CrawlOrigin(ctx, origin)
		if err != nil {
			return nil, err
		}

		idx.mu.Lock()
		idx.entries[origin] = &sitenav.IndexEntry{
			Origin:    origin,
			Sections:  sections,
			IndexedAt: idx.Now(),
		}
		idx.mu.Unlock()
		return sections, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]sitenav.Section), nil
}

// Invalidate drops the cached entry for an origin. Unknown or malformed
// origins are a no-op.
func (idx *Index) Invalidate(origin string) {
	origin, err := sitenav.NormalizeOrigin(origin)
	if err != nil {
		return
	}
	idx.mu.Lock()
	delete(idx.entries, origin)
	idx.mu.Unlock()
}

// Origins returns the cached origin keys in lexical order.
func (idx *Index) Origins() []string {
	idx.mu.RLock()
	origins := make([]string, 0, len(idx.entries))
	for origin := range idx.entries {
		origins = append(origins, origin)
	}
	idx.mu.RUnlock()

	sort.Strings(origins)
	return origins
}

// fresh returns the cached sections if the entry exists and is younger
// than the TTL.
func (idx *Index) fresh(origin string) ([]sitenav.Section, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry, ok := idx.entries[origin]
	if !ok {
		return nil, false
	}
	if idx.Now().Sub(entry.IndexedAt) >= idx.ttl {
		return nil, false
	}
	return entry.Sections, true
}
