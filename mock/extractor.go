package mock

import "github.com/sitenav/sitenav"

var _ sitenav.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of sitenav.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(html string, pageURL string) []sitenav.Section
}

func (e *SectionExtractor) ExtractSections(html string, pageURL string) []sitenav.Section {
	return e.ExtractSectionsFn(html, pageURL)
}

var _ sitenav.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitenav.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string, depth int) []sitenav.CrawlItem
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string, depth int) []sitenav.CrawlItem {
	return e.ExtractLinksFn(html, baseURL, depth)
}
