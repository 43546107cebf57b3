package sitenav

// SectionType identifies what kind of page element a section came from.
type SectionType string

// Section types produced by the content extractor. H1-H3 map to the
// corresponding heading elements; Body is the single aggregate section
// covering the whole page text.
const (
	SectionH1   SectionType = "h1"
	SectionH2   SectionType = "h2"
	SectionH3   SectionType = "h3"
	SectionBody SectionType = "body"
)

// Section is one indexable unit of page content: a heading or the page
// body. Sections are immutable once produced by the extractor; title and
// summary hold sanitized, length-capped text.
type Section struct {
	PageURL string      `json:"pageURL"`
	Title   string      `json:"sectionTitle"`
	Summary string      `json:"sectionSummary"`
	Type    SectionType `json:"sectionType"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.PageURL == "" {
		return Errorf(EINVALID, "section page URL required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	switch s.Type {
	case SectionH1, SectionH2, SectionH3, SectionBody:
	default:
		return Errorf(EINVALID, "unknown section type %q", s.Type)
	}
	return nil
}

// ScoredSection pairs a section with its relevance score for one query.
// Scored sections are transient: computed per query, never stored.
type ScoredSection struct {
	Section
	Score int `json:"score"`
}

// CrawlItem is a queued crawl target: a resolved absolute URL and its
// hop distance from the origin root. Items live only for the duration
// of one crawl pass.
type CrawlItem struct {
	URL   string
	Depth int
}
