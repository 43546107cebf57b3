package sitenav_test

import (
	"testing"

	"github.com/sitenav/sitenav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(title, summary, pageURL string, typ sitenav.SectionType) sitenav.Section {
	return sitenav.Section{PageURL: pageURL, Title: title, Summary: summary, Type: typ}
}

func TestScoreSections_title_match_scores_at_least_six(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("CSS Introduction", "CSS Introduction", "https://x/", sitenav.SectionH2),
	}

	results, _ := sitenav.ScoreSections(sections, "css")

	require.Len(t, results, 1)
	assert.Equal(t, "CSS Introduction", results[0].Title)
	assert.GreaterOrEqual(t, results[0].Score, 6)
}

func TestScoreSections_alias_expansion_matches_titles(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("JS Introduction", "JS Introduction", "https://x/js.html", sitenav.SectionH2),
	}

	for _, query := range []string{"javascript", "js"} {
		results, _ := sitenav.ScoreSections(sections, query)
		require.Len(t, results, 1, "query %q", query)
		assert.GreaterOrEqual(t, results[0].Score, 6, "query %q", query)
	}
}

func TestScoreSections_zero_score_sections_are_dropped(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("CSS Grid", "grid layout", "https://x/css", sitenav.SectionH2),
		section("Privacy Policy", "legal terms", "https://x/legal", sitenav.SectionH2),
	}

	results, _ := sitenav.ScoreSections(sections, "grid")

	require.Len(t, results, 1)
	assert.Equal(t, "CSS Grid", results[0].Title)
	for _, r := range results {
		assert.Positive(t, r.Score)
	}
}

func TestScoreSections_sorted_by_descending_score(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("About", "selectors everywhere", "https://x/about", sitenav.SectionH3),
		section("Selectors", "Selectors guide", "https://x/sel", sitenav.SectionH1),
	}

	results, _ := sitenav.ScoreSections(sections, "selectors")

	require.Len(t, results, 2)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "Selectors", results[0].Title)
}

func TestScoreSections_equal_top_scores_need_clarification(t *testing.T) {
	t.Parallel()

	// Two distinctly titled sections each containing the keyword once
	// with identical weight.
	sections := []sitenav.Section{
		section("Grid Basics", "", "https://x/a", sitenav.SectionH2),
		section("Grid Advanced", "", "https://x/b", sitenav.SectionH2),
	}

	results, needsClarification := sitenav.ScoreSections(sections, "grid")

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.True(t, needsClarification)
}

func TestScoreSections_distinct_top_scores_do_not_need_clarification(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("Grid", "grid grid", "https://x/grid", sitenav.SectionH1),
		section("Other", "mentions grid once", "https://x/other", sitenav.SectionH2),
	}

	results, needsClarification := sitenav.ScoreSections(sections, "grid")

	require.Len(t, results, 2)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.False(t, needsClarification)
}

func TestScoreSections_single_result_does_not_need_clarification(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("Grid", "", "https://x/", sitenav.SectionH1),
	}

	_, needsClarification := sitenav.ScoreSections(sections, "grid")

	assert.False(t, needsClarification)
}

func TestScoreSections_phrase_bonus_applies_once_per_section(t *testing.T) {
	t.Parallel()

	with := []sitenav.Section{
		section("flex guide", "", "https://x/flex", sitenav.SectionH2),
	}
	without := []sitenav.Section{
		section("flex", "", "https://x/flex", sitenav.SectionH2),
	}

	// "flex guide" appears verbatim in the first title: phrase keyword
	// earns title weight plus the bonus on top of the token matches.
	withResults, _ := sitenav.ScoreSections(with, "flex guide")
	withoutResults, _ := sitenav.ScoreSections(without, "flex guide")

	require.Len(t, withResults, 1)
	require.Len(t, withoutResults, 1)
	assert.Greater(t, withResults[0].Score, withoutResults[0].Score)
}

func TestScoreSections_stable_on_ties(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		section("Grid One", "", "https://x/1", sitenav.SectionH2),
		section("Grid Two", "", "https://x/2", sitenav.SectionH2),
		section("Grid Three", "", "https://x/3", sitenav.SectionH2),
	}

	results, _ := sitenav.ScoreSections(sections, "grid")

	require.Len(t, results, 3)
	assert.Equal(t, "Grid One", results[0].Title)
	assert.Equal(t, "Grid Two", results[1].Title)
	assert.Equal(t, "Grid Three", results[2].Title)
}

func TestScoreSections_no_sections_yields_empty_results(t *testing.T) {
	t.Parallel()

	results, needsClarification := sitenav.ScoreSections(nil, "grid")

	assert.Empty(t, results)
	assert.False(t, needsClarification)
}
