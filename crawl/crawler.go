// Package crawl implements the bounded breadth-first origin crawler.
// It coordinates fetching, section extraction and link discovery for
// one origin, enforcing hard page-count and depth caps.
package crawl

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/sitenav/sitenav"
	"golang.org/x/sync/errgroup"
)

// Crawl bounds. MaxPages caps the number of distinct URLs fetched per
// origin; MaxDepth caps hop distance from the origin root. Both are
// hard limits, never best-effort.
const (
	DefaultMaxPages    = 12
	DefaultMaxDepth    = 2
	DefaultConcurrency = 3
	DefaultRPS         = 4.0

	// frontierExpectedURLs sizes the Bloom filter used for URL dedup.
	frontierExpectedURLs = 4096
	// frontierFalsePositiveRate is the acceptable false positive rate.
	frontierFalsePositiveRate = 0.001
)

// Ensure Crawler implements sitenav.Crawler at compile time.
var _ sitenav.Crawler = (*Crawler)(nil)

// Crawler performs a breadth-first traversal of one origin. Fetches run
// on a small bounded worker pool; dispatch, the page budget, and link
// admission are owned by a single coordinator goroutine, so the caps
// hold exactly under concurrency. Extracted sections are reassembled in
// dispatch (BFS) order, so shallower pages are indexed first when the
// page budget runs out.
type Crawler struct {
	Fetcher  sitenav.Fetcher
	Sections sitenav.SectionExtractor
	Links    sitenav.LinkExtractor

	// Sitemaps optionally seeds the frontier with the origin's
	// advertised page URLs at depth 1. May be nil.
	Sitemaps sitenav.SitemapSource

	// Limiter bounds the outbound request rate. May be nil.
	Limiter *OriginLimiter

	// MaxPages, MaxDepth and Concurrency default to the package
	// constants when zero.
	MaxPages    int
	MaxDepth    int
	Concurrency int
}

// pageResult holds the outcome of fetching and extracting one URL.
type pageResult struct {
	index    int
	item     sitenav.CrawlItem
	sections []sitenav.Section
	links    []sitenav.CrawlItem
	hash     uint64
	err      error
}

// CrawlOrigin traverses the origin from its root and returns the
// sections of every reachable page in BFS discovery order. Individual
// page failures are skipped; an origin whose root cannot be fetched
// yields an empty section list and a nil error.
func (c *Crawler) CrawlOrigin(ctx context.Context, origin string) ([]sitenav.Section, error) {
	origin, err := sitenav.NormalizeOrigin(origin)
	if err != nil {
		return nil, err
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(sitenav.CrawlItem{URL: origin + "/", Depth: 0})

	dispatched := 0

	// Sitemap seeds join the frontier at depth 1, behind the root,
	// subject to the same admission rule as discovered links.
	if c.Sitemaps != nil {
		if seeds, err := c.Sitemaps.DiscoverSeeds(ctx, origin); err == nil {
			for _, seed := range seeds {
				if dispatched+frontier.Len() >= maxPages {
					break
				}
				frontier.Push(sitenav.CrawlItem{URL: seed, Depth: 1})
			}
		}
	}

	workCh := make(chan pageResult) // err/sections unset on the way in
	resultCh := make(chan pageResult)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for work := range workCh {
				res := c.processPage(gctx, origin, work.index, work.item, maxDepth)
				select {
				case resultCh <- res:
				case <-gctx.Done():
					return nil
				}
			}
			return nil
		})
	}

	results := make([]pageResult, 0, maxPages)
	seenContent := make(map[uint64]bool)
	pending := 0
	var next *sitenav.CrawlItem

	handleResult := func(res pageResult) {
		pending--
		if res.err != nil {
			return
		}
		// A page whose content hash was already seen is a mirror URL;
		// its sections would duplicate the index.
		if seenContent[res.hash] {
			res.sections = nil
		}
		seenContent[res.hash] = true
		results = append(results, res)

		for _, link := range res.links {
			if link.Depth > maxDepth {
				continue
			}
			// Admission rule: never enqueue once the queued and
			// dispatched URLs together exhaust the page budget.
			if dispatched+frontier.Len() >= maxPages {
				break
			}
			frontier.Push(link)
		}
	}

	if item, ok := frontier.Pop(); ok {
		next = &item
	}

	for (next != nil || pending > 0) && gctx.Err() == nil {
		if next != nil && dispatched < maxPages {
			select {
			case workCh <- pageResult{index: dispatched, item: *next}:
				dispatched++
				pending++
				next = nil
			case res := <-resultCh:
				handleResult(res)
			case <-gctx.Done():
			}
		} else {
			select {
			case res := <-resultCh:
				handleResult(res)
			case <-gctx.Done():
			}
		}

		if next == nil && dispatched < maxPages {
			if item, ok := frontier.Pop(); ok {
				next = &item
			}
		}
	}

	close(workCh)
	go func() {
		_ = g.Wait()
		close(resultCh)
	}()
	for res := range resultCh {
		handleResult(res)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reassemble in dispatch order so the index preserves BFS order
	// even though fetches completed concurrently.
	ordered := make([]pageResult, dispatched)
	for _, res := range results {
		ordered[res.index] = res
	}
	var sections []sitenav.Section
	for _, res := range ordered {
		sections = append(sections, res.sections...)
	}
	return sections, nil
}

// processPage fetches one URL and extracts its sections and links.
// Links are only extracted when children could still be admitted.
func (c *Crawler) processPage(ctx context.Context, origin string, index int, item sitenav.CrawlItem, maxDepth int) pageResult {
	res := pageResult{index: index, item: item}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, origin); err != nil {
			res.err = err
			return res
		}
	}

	html, err := c.Fetcher.Fetch(ctx, item.URL)
	if err != nil {
		res.err = err
		return res
	}

	res.hash = xxhash.Sum64String(html)
	res.sections = c.Sections.ExtractSections(html, item.URL)
	if item.Depth < maxDepth {
		res.links = c.Links.ExtractLinks(html, item.URL, item.Depth)
	}
	return res
}
