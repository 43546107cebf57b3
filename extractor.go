package sitenav

// SectionExtractor converts a page's raw HTML into section records.
type SectionExtractor interface {
	// ExtractSections returns one section per non-empty h1-h3 heading
	// plus a single aggregate body section. Text is sanitized (scripts
	// and styles removed, tags stripped, entities decoded, whitespace
	// collapsed) and length-capped.
	ExtractSections(html string, pageURL string) []Section
}

// LinkExtractor parses crawlable hyperlink targets from HTML.
type LinkExtractor interface {
	// ExtractLinks returns the same-origin link targets of a page,
	// resolved against baseURL, fragment-stripped and deduplicated,
	// each carrying depth+1. Malformed and non-HTTP targets (mailto:,
	// javascript:, ...) are silently dropped.
	ExtractLinks(html string, baseURL string, depth int) []CrawlItem
}
