// Package http provides the HTTP implementations of sitenav.Fetcher and
// sitenav.SitemapSource for retrieving pages and sitemap seeds from the
// crawled origin.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/sitenav/sitenav"
)

// DefaultFetchTimeout bounds a single page fetch. The transport default
// alone would let one hanging server stall a crawl indefinitely.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to the target site.
const DefaultUserAgent = "sitenav/1.0 (+https://github.com/sitenav/sitenav)"

// Ensure Fetcher implements sitenav.Fetcher at compile time.
var _ sitenav.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs over plain HTTP, following redirects.
// It does not execute JavaScript; the index covers server-rendered
// content only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content of a URL. Any failure mode that makes
// the page unusable as index input (transport error, non-2xx status,
// non-HTML content type) returns an EUNAVAILABLE error; callers skip the
// page rather than propagate the failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", sitenav.Errorf(sitenav.EUNAVAILABLE, "invalid page URL %q", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", sitenav.Errorf(sitenav.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", sitenav.Errorf(sitenav.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if !isHTML(resp.Header.Get("Content-Type")) {
		return "", sitenav.Errorf(sitenav.EUNAVAILABLE, "non-HTML content type %q for %s", resp.Header.Get("Content-Type"), url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", sitenav.Errorf(sitenav.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// isHTML reports whether a Content-Type header names an HTML document.
// An absent or unparseable header counts as non-HTML.
func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
