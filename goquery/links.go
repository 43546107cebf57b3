package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitenav/sitenav"
)

// Ensure LinkExtractor implements sitenav.LinkExtractor at compile time.
var _ sitenav.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts same-origin crawl targets from page HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks scans anchor href values, resolves them against baseURL
// and returns the same-origin, fragment-stripped, deduplicated targets
// at depth+1. Malformed URLs and non-HTTP schemes (mailto:, javascript:,
// tel:, data:) are silently dropped.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string, depth int) []sitenav.CrawlItem {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var items []sitenav.CrawlItem

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameOrigin(base, resolved) {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		items = append(items, sitenav.CrawlItem{URL: resolved, Depth: depth + 1})
	})

	return items
}

// resolveURL resolves a relative URL against a base URL with the
// fragment stripped. Returns empty string for unparseable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isSameOrigin checks scheme and host:port equality between the base
// URL and a resolved target. Subdomains are different origins.
func isSameOrigin(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Scheme == base.Scheme && u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
