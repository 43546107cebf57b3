package sitenav

import (
	"sort"
	"strings"
)

// aliasGroups lists domain synonym families for query expansion. Every
// member of a group is an alias for every other member. The families
// cover the vocabulary of typical website navigation queries.
var aliasGroups = [][]string{
	{"javascript", "js", "script", "node", "typescript"},
	{"css", "style", "design", "layout"},
	{"html", "markup"},
	{"intro", "introduction", "getting started", "overview"},
	{"docs", "documentation", "guide", "manual"},
	{"api", "reference"},
	{"help", "support", "faq"},
	{"contact", "email", "address"},
	{"price", "pricing", "cost", "plans"},
	{"download", "install", "setup"},
	{"login", "signin", "sign in"},
	{"signup", "register", "sign up"},
	{"tutorial", "lesson", "howto", "how to"},
	{"blog", "news", "articles"},
	{"search", "find", "lookup"},
	{"home", "start", "main"},
}

// aliases maps a normalized token to its synonyms.
var aliases = buildAliases(aliasGroups)

func buildAliases(groups [][]string) map[string][]string {
	m := make(map[string][]string)
	for _, group := range groups {
		for _, word := range group {
			for _, other := range group {
				if other != word {
					m[word] = append(m[word], other)
				}
			}
		}
	}
	return m
}

// ExpandKeywords normalizes a raw query into an expanded keyword set:
// lowercased tokens, their stems, fixed-table synonyms with their stems,
// and (for queries longer than two characters) the whole trimmed query
// as one phrase keyword. The result is deduplicated and sorted so
// callers and tests see a deterministic order; scoring is additive, so
// order never affects scores.
func ExpandKeywords(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	set := make(map[string]struct{})
	add := func(kw string) {
		if kw != "" {
			set[kw] = struct{}{}
		}
	}

	for _, token := range tokenize(q) {
		// Single characters match almost everything and rank nothing.
		if len(token) <= 1 {
			continue
		}
		add(token)
		add(Stem(token))
		for _, alias := range aliases[token] {
			add(alias)
			add(Stem(alias))
		}
	}

	if len(q) > 2 {
		add(q)
	}

	keywords := make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// tokenize splits a lowercased query into alphanumeric tokens. Every
// character outside [a-z0-9] acts as a separator.
func tokenize(q string) []string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, q)
	return strings.Fields(mapped)
}

// Stem strips one common English suffix from a token. Rules are ordered
// and at most one applies: "ing" when at least four characters remain,
// then "ed" and "es" when more than three remain, then "s" when more
// than two remain. This is a deliberately crude heuristic ("styling"
// stems to "styl") that widens substring matching, not a linguistic
// stemmer.
func Stem(token string) string {
	switch {
	case strings.HasSuffix(token, "ing") && len(token)-3 >= 4:
		return token[:len(token)-3]
	case strings.HasSuffix(token, "ed") && len(token)-2 > 3:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "es") && len(token)-2 > 3:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && len(token)-1 > 2:
		return token[:len(token)-1]
	}
	return token
}
