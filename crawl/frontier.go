package crawl

import (
	"strings"
	"sync"

	"github.com/sitenav/sitenav"
	"github.com/sitenav/sitenav/bloom"
)

// Frontier is a FIFO crawl queue with Bloom filter deduplication.
// Strict FIFO order is what makes the traversal breadth-first: pages
// closer to the origin root are dequeued, and therefore indexed, first.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.URLSet
	queue []sitenav.CrawlItem
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewURLSet(n, fpRate),
	}
}

// Push enqueues a crawl item. Returns false if the URL has already been
// seen. Fragments are stripped before deduplication, so URLs differing
// only by fragment are duplicates.
func (f *Frontier) Push(item sitenav.CrawlItem) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	item.URL = stripFragment(item.URL)
	if f.seen.Contains(item.URL) {
		return false
	}
	f.seen.Add(item.URL)

	f.queue = append(f.queue, item)
	return true
}

// Pop dequeues the oldest item. The bool result is false if the
// frontier is empty.
func (f *Frontier) Pop() (sitenav.CrawlItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return sitenav.CrawlItem{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued at some point.
// The fragment is stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Contains(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
