package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/sitenav/sitenav"
)

// maxSitemapDepth bounds nested sitemap-index recursion.
const maxSitemapDepth = 2

// Ensure SitemapSource implements sitenav.SitemapSource at compile time.
var _ sitenav.SitemapSource = (*SitemapSource)(nil)

// SitemapSource discovers crawl seeds from an origin's published
// sitemaps: robots.txt Sitemap directives first, /sitemap.xml as a
// fallback. All failures are soft; an origin without sitemaps simply
// contributes no seeds.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a new SitemapSource with the given HTTP
// client. If client is nil, a client with DefaultFetchTimeout is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapSource{client: client}
}

// DiscoverSeeds returns the same-origin page URLs advertised by the
// origin's sitemaps, deduplicated, in document order. A nil error with
// an empty slice means the origin publishes no usable sitemap.
func (s *SitemapSource) DiscoverSeeds(ctx context.Context, origin string) ([]string, error) {
	base, err := url.Parse(origin)
	if err != nil || base.Host == "" {
		return nil, sitenav.Errorf(sitenav.EINVALID, "invalid origin %q", origin)
	}

	sitemapURLs := s.fromRobots(ctx, base)
	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
	}

	seen := make(map[string]struct{})
	var seeds []string
	for _, sitemapURL := range sitemapURLs {
		for _, u := range s.readSitemap(ctx, sitemapURL, 0) {
			parsed, err := url.Parse(u)
			if err != nil {
				continue
			}
			if parsed.Scheme != base.Scheme || parsed.Host != base.Host {
				continue
			}
			parsed.Fragment = ""
			resolved := parsed.String()
			if _, ok := seen[resolved]; ok {
				continue
			}
			seen[resolved] = struct{}{}
			seeds = append(seeds, resolved)
		}
	}

	return seeds, nil
}

// fromRobots extracts Sitemap: directives from the origin's robots.txt.
func (s *SitemapSource) fromRobots(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	return sitemaps
}

// readSitemap parses one sitemap document, recursing into sitemap
// indexes up to maxSitemapDepth.
func (s *SitemapSource) readSitemap(ctx context.Context, sitemapURL string, depth int) []string {
	if depth > maxSitemapDepth || ctx.Err() != nil {
		return nil
	}

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	var urls []string
	switch root.Tag {
	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			if loc := sm.SelectElement("loc"); loc != nil {
				urls = append(urls, s.readSitemap(ctx, strings.TrimSpace(loc.Text()), depth+1)...)
			}
		}
	case "urlset":
		for _, u := range root.SelectElements("url") {
			if loc := u.SelectElement("loc"); loc != nil {
				if text := strings.TrimSpace(loc.Text()); text != "" {
					urls = append(urls, text)
				}
			}
		}
	}
	return urls
}

func (s *SitemapSource) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, sitenav.Errorf(sitenav.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return resp.Body, nil
}
