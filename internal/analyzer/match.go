package analyzer

import (
	"slices"
	"strings"

	"github.com/ibeckermayer/judgmentroutingbot/internal/taxonomy"
)

// MatchResult is the set of categories found in a text and the total number
// of keyword hits across them
type MatchResult struct {
	Categories []taxonomy.Category `json:"categories"`
	Hits       int                 `json:"hits"`
}

// Has reports whether c was matched
func (m MatchResult) Has(c taxonomy.Category) bool {
	return slices.Contains(m.Categories, c)
}

// All reports whether every one of cs was matched
func (m MatchResult) All(cs ...taxonomy.Category) bool {
	for _, c := range cs {
		if !m.Has(c) {
			return false
		}
	}
	return true
}

// Any reports whether at least one of cs was matched
func (m MatchResult) Any(cs ...taxonomy.Category) bool {
	return slices.ContainsFunc(cs, m.Has)
}

// Empty reports whether nothing matched
func (m MatchResult) Empty() bool {
	return len(m.Categories) == 0
}

// Matcher tests text against every category of a taxonomy
type Matcher struct {
	taxonomy *taxonomy.Taxonomy
}

// NewMatcher creates a matcher over tx
func NewMatcher(tx *taxonomy.Taxonomy) *Matcher {
	return &Matcher{taxonomy: tx}
}

// Match returns the categories with at least one keyword occurring in text.
// Keywords are plain substrings: "ai" matches inside "maintain". Each
// matching keyword counts once toward Hits regardless of how often it repeats.
// Categories come back in taxonomy order.
func (m *Matcher) Match(text string) MatchResult {
	folded := strings.ToLower(text)

	var res MatchResult
	for _, entry := range m.taxonomy.Entries() {
		hits := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(folded, kw) {
				hits++
			}
		}
		if hits > 0 {
			res.Categories = append(res.Categories, entry.Category)
			res.Hits += hits
		}
	}
	return res
}
