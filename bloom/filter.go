// Package bloom provides probabilistic URL-set membership for crawl
// deduplication. False positives make the crawler skip a URL it has not
// actually visited; false negatives never happen, so a URL is never
// fetched twice. With the crawl's small page budget the configured
// false positive rate is effectively zero.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet tracks which URLs a crawl has already seen.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (s *URLSet) Add(url string) {
	s.f.AddString(url)
}

// Contains reports whether the URL has been seen. May return a false
// positive, never a false negative.
func (s *URLSet) Contains(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
