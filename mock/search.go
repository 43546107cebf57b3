package mock

import (
	"context"

	"github.com/sitenav/sitenav"
)

var _ sitenav.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of sitenav.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, req sitenav.SearchRequest) (*sitenav.SearchResponse, error)
}

func (s *SearchService) Search(ctx context.Context, req sitenav.SearchRequest) (*sitenav.SearchResponse, error) {
	return s.SearchFn(ctx, req)
}
