package crawl

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// OriginLimiter bounds the outbound request rate per crawled origin
// using token buckets. Each origin gets its own limiter with a burst of
// 1, so the crawl never hits a target site faster than the configured
// rate even when fetches run concurrently.
type OriginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewOriginLimiter creates an OriginLimiter allowing rps requests per
// second to each origin.
func NewOriginLimiter(rps float64) *OriginLimiter {
	return &OriginLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the origin.
// Returns an error if the context is canceled before the wait completes.
func (l *OriginLimiter) Wait(ctx context.Context, origin string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[origin]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[origin] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
