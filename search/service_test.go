package search_test

import (
	"context"
	"testing"

	"github.com/sitenav/sitenav"
	"github.com/sitenav/sitenav/mock"
	"github.com/sitenav/sitenav/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(sections []sitenav.Section) *mock.IndexService {
	return &mock.IndexService{
		GetFn: func(_ context.Context, _ string) ([]sitenav.Section, error) {
			return sections, nil
		},
	}
}

func TestService_Search_ranks_sections(t *testing.T) {
	t.Parallel()

	idx := indexOf([]sitenav.Section{
		{PageURL: "https://example.com/about", Title: "About us", Summary: "who we are", Type: sitenav.SectionH1},
		{PageURL: "https://example.com/pricing", Title: "Pricing", Summary: "plans and costs", Type: sitenav.SectionH1},
	})
	svc := search.NewService(idx, nil)

	resp, err := svc.Search(context.Background(), sitenav.SearchRequest{
		Query:  "pricing",
		Origin: "https://example.com",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "https://example.com/pricing", resp.Results[0].PageURL)
	assert.False(t, resp.NeedsClarification)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "pricing", resp.Query)
}

func TestService_Search_empty_query_skips_index(t *testing.T) {
	t.Parallel()

	idx := &mock.IndexService{
		GetFn: func(_ context.Context, _ string) ([]sitenav.Section, error) {
			t.Fatal("index must not be consulted for an empty query")
			return nil, nil
		},
	}
	svc := search.NewService(idx, nil)

	resp, err := svc.Search(context.Background(), sitenav.SearchRequest{Query: "   "})
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
	assert.Equal(t, "Empty query.", resp.Message)
	assert.False(t, resp.NeedsClarification)
}

func TestService_Search_no_matches_message(t *testing.T) {
	t.Parallel()

	idx := indexOf(nil)
	svc := search.NewService(idx, nil)

	resp, err := svc.Search(context.Background(), sitenav.SearchRequest{
		Query:  "pricing",
		Origin: "https://example.com",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
	assert.Equal(t, "No relevant matches found.", resp.Message)
}

func TestService_Search_clarification_message(t *testing.T) {
	t.Parallel()

	// Two sections hitting the same single keyword with equal weight.
	idx := indexOf([]sitenav.Section{
		{PageURL: "https://example.com/a", Title: "Docs for widgets", Summary: "x", Type: sitenav.SectionH2},
		{PageURL: "https://example.com/b", Title: "Docs for gadgets", Summary: "y", Type: sitenav.SectionH2},
	})
	svc := search.NewService(idx, nil)

	resp, err := svc.Search(context.Background(), sitenav.SearchRequest{
		Query:  "docs",
		Origin: "https://example.com",
	})
	require.NoError(t, err)

	assert.True(t, resp.NeedsClarification)
	assert.NotEmpty(t, resp.Message)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestService_Search_origin_resolution_order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        sitenav.SearchRequest
		wantOrigin string
	}{
		{
			name:       "explicit origin wins",
			req:        sitenav.SearchRequest{Origin: "https://a.example.com/x", Website: "b.example.com", Referrer: "https://c.example.com/"},
			wantOrigin: "https://a.example.com",
		},
		{
			name:       "bare website coerced to https",
			req:        sitenav.SearchRequest{Website: "b.example.com", Referrer: "https://c.example.com/"},
			wantOrigin: "https://b.example.com",
		},
		{
			name:       "origin header next",
			req:        sitenav.SearchRequest{OriginHeader: "https://c.example.com", Referrer: "https://d.example.com/"},
			wantOrigin: "https://c.example.com",
		},
		{
			name:       "referrer last",
			req:        sitenav.SearchRequest{Referrer: "https://d.example.com/docs/page"},
			wantOrigin: "https://d.example.com",
		},
		{
			name:       "invalid origin param falls through",
			req:        sitenav.SearchRequest{Origin: "not a url", Website: "b.example.com"},
			wantOrigin: "https://b.example.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotOrigin string
			idx := &mock.IndexService{
				GetFn: func(_ context.Context, origin string) ([]sitenav.Section, error) {
					gotOrigin = origin
					return nil, nil
				},
			}
			svc := search.NewService(idx, nil)

			req := tt.req
			req.Query = "docs"
			_, err := svc.Search(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrigin, gotOrigin)
		})
	}
}

func TestService_Search_unresolvable_origin(t *testing.T) {
	t.Parallel()

	svc := search.NewService(indexOf(nil), nil)

	_, err := svc.Search(context.Background(), sitenav.SearchRequest{Query: "docs"})
	require.Error(t, err)
	assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
}

func TestService_Search_propagates_index_errors(t *testing.T) {
	t.Parallel()

	idx := &mock.IndexService{
		GetFn: func(_ context.Context, _ string) ([]sitenav.Section, error) {
			return nil, sitenav.Errorf(sitenav.EINTERNAL, "boom")
		},
	}
	svc := search.NewService(idx, nil)

	_, err := svc.Search(context.Background(), sitenav.SearchRequest{
		Query:  "docs",
		Origin: "https://example.com",
	})
	require.Error(t, err)
	assert.Equal(t, sitenav.EINTERNAL, sitenav.ErrorCode(err))
}
