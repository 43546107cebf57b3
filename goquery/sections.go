// Package goquery provides HTML section and link extraction built on a
// tolerant HTML parser. It implements sitenav.SectionExtractor and
// sitenav.LinkExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitenav/sitenav"
)

// Text caps for extracted sections, in runes.
const (
	maxTitleLen   = 120
	maxHeadingLen = 160
	maxBodyLen    = 600
)

// Ensure SectionExtractor implements sitenav.SectionExtractor at compile time.
var _ sitenav.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor extracts heading and body sections from page HTML.
type SectionExtractor struct{}

// NewSectionExtractor creates a new SectionExtractor.
func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{}
}

// ExtractSections returns one section per non-empty h1-h3 heading plus a
// single aggregate body section. Script and style subtrees are removed
// before any text is read; the parser handles tag stripping and entity
// decoding; whitespace is collapsed and text is length-capped.
// Unparseable input yields no sections rather than an error.
func (e *SectionExtractor) ExtractSections(html string, pageURL string) []sitenav.Section {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	doc.Find("script, style").Remove()

	pageTitle := truncate(sanitize(doc.Find("title").First().Text()), maxTitleLen)

	var sections []sitenav.Section
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := truncate(sanitize(sel.Text()), maxHeadingLen)
		if text == "" {
			return
		}
		sections = append(sections, sitenav.Section{
			PageURL: pageURL,
			Title:   text,
			Summary: text,
			Type:    headingType(goquery.NodeName(sel)),
		})
	})

	// One aggregate section for the whole page text. The parser
	// synthesizes a body element even when the markup has none, so its
	// text covers the whole document.
	bodyText := truncate(sanitize(doc.Find("body").Text()), maxBodyLen)
	if bodyText != "" {
		bodyTitle := pageTitle
		if bodyTitle == "" {
			bodyTitle = "Page"
		}
		sections = append(sections, sitenav.Section{
			PageURL: pageURL,
			Title:   bodyTitle,
			Summary: bodyText,
			Type:    sitenav.SectionBody,
		})
	}

	return sections
}

func headingType(nodeName string) sitenav.SectionType {
	switch nodeName {
	case "h1":
		return sitenav.SectionH1
	case "h2":
		return sitenav.SectionH2
	default:
		return sitenav.SectionH3
	}
}

// sanitize collapses runs of whitespace to single spaces and trims.
// Tag stripping and entity decoding already happened during parsing.
func sanitize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncate caps text at n runes.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
