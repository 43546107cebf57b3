package mock

import (
	"context"

	"github.com/sitenav/sitenav"
)

var _ sitenav.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of sitenav.Crawler.
type Crawler struct {
	CrawlOriginFn func(ctx context.Context, origin string) ([]sitenav.Section, error)
}

func (c *Crawler) CrawlOrigin(ctx context.Context, origin string) ([]sitenav.Section, error) {
	return c.CrawlOriginFn(ctx, origin)
}

var _ sitenav.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of sitenav.IndexService.
type IndexService struct {
	GetFn        func(ctx context.Context, origin string) ([]sitenav.Section, error)
	InvalidateFn func(origin string)
	OriginsFn    func() []string
}

func (s *IndexService) Get(ctx context.Context, origin string) ([]sitenav.Section, error) {
	return s.GetFn(ctx, origin)
}

func (s *IndexService) Invalidate(origin string) {
	s.InvalidateFn(origin)
}

func (s *IndexService) Origins() []string {
	return s.OriginsFn()
}
