package sitenav

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET and returns the page HTML. It fails with an
	// EUNAVAILABLE error when the page cannot be used as index input:
	// network failure, non-success status, or a non-HTML content type.
	// Callers treat that as data-not-available rather than a fault.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
