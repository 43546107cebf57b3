package sitenav

import (
	"sort"
	"strings"
)

// Scoring weights. Title matches dominate, summaries count a little,
// URL matches act as a tie-breaker, and a full-phrase hit earns a bonus
// on top of the per-field points.
const (
	titleWeight   = 6
	summaryWeight = 2
	urlWeight     = 1
	phraseBonus   = 3
)

// ScoreSections ranks sections against a query using the expanded
// keyword set. Sections scoring zero are dropped; the rest are sorted by
// descending score with a stable sort, so input (BFS discovery) order
// breaks ties. The boolean result reports whether the caller should ask
// the user to disambiguate: true iff at least two sections remain and
// the top two scores are equal.
func ScoreSections(sections []Section, query string) ([]ScoredSection, bool) {
	keywords := ExpandKeywords(query)
	phrase := strings.ToLower(strings.TrimSpace(query))

	var scored []ScoredSection
	for _, section := range sections {
		title := strings.ToLower(section.Title)
		summary := strings.ToLower(section.Summary)
		pageURL := strings.ToLower(section.PageURL)
		combined := title + " " + summary + " " + pageURL

		score := 0
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				score += titleWeight
			}
			if strings.Contains(summary, kw) {
				score += summaryWeight
			}
			if strings.Contains(pageURL, kw) {
				score += urlWeight
			}
			if kw == phrase && strings.Contains(combined, kw) {
				score += phraseBonus
			}
		}

		if score > 0 {
			scored = append(scored, ScoredSection{Section: section, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	needsClarification := len(scored) >= 2 && scored[0].Score == scored[1].Score
	return scored, needsClarification
}
