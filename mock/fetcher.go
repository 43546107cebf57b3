// Package mock provides hand-rolled test doubles for the sitenav
// domain interfaces. Each double delegates to a function field.
package mock

import (
	"context"

	"github.com/sitenav/sitenav"
)

var _ sitenav.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitenav.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
