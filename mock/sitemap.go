package mock

import (
	"context"

	"github.com/sitenav/sitenav"
)

var _ sitenav.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of sitenav.SitemapSource.
type SitemapSource struct {
	DiscoverSeedsFn func(ctx context.Context, origin string) ([]string, error)
}

func (s *SitemapSource) DiscoverSeeds(ctx context.Context, origin string) ([]string, error) {
	return s.DiscoverSeedsFn(ctx, origin)
}
