package analyzer

import (
	"slices"
	"strings"
)

// Tier estimates how much human oversight a decision described in a post
// would need, from 0 (none) to 4 (senior authority).
type Tier int

const (
	TierRoutine  Tier = 1
	TierComplex  Tier = 2
	TierCritical Tier = 4
)

var (
	criticalKeywords = []string{"critical", "dangerous", "life", "safety", "irreversible", "legal"}
	complexKeywords  = []string{"complex", "nuanced", "uncertain", "ambiguous", "novel"}
	routineKeywords  = []string{"simple", "standard", "routine", "typical", "common"}
)

// InferTier checks critical, complex and routine keywords in that order and
// returns the first tier that hits, or nil when none do.
func InferTier(text string) *Tier {
	folded := strings.ToLower(text)
	contains := func(kw string) bool { return strings.Contains(folded, kw) }

	var t Tier
	switch {
	case slices.ContainsFunc(criticalKeywords, contains):
		t = TierCritical
	case slices.ContainsFunc(complexKeywords, contains):
		t = TierComplex
	case slices.ContainsFunc(routineKeywords, contains):
		t = TierRoutine
	default:
		return nil
	}
	return &t
}
