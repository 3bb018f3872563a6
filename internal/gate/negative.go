package gate

import (
	"time"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// RuleNegativeScope is the rule id of the section-G hard gate.
const RuleNegativeScope = "negative_scope"

// negativeScopeGate hard-excludes items matching a non-expired exclusion
// entry when enforcement is set to hard_exclusion. Expired entries are
// treated as absent.
type negativeScopeGate struct {
	enabled    bool
	exclusions []ucr.Exclusion
}

func newNegativeScopeGate(ns *ucr.NegativeScope, now time.Time) *negativeScopeGate {
	g := &negativeScopeGate{}
	if ns == nil || !ns.Enforcement.HardExclusion {
		return g
	}
	for _, ex := range ns.AllExclusions() {
		if ex.Value == "" {
			continue
		}
		if ex.ExpiresAt != nil && ex.ExpiresAt.Before(now) {
			continue
		}
		g.exclusions = append(g.exclusions, ex)
	}
	g.enabled = len(g.exclusions) > 0
	return g
}

// check returns a hard trace entry for the first matching exclusion, or an
// info entry recording that the gate ran without firing.
func (g *negativeScopeGate) check(item types.CandidateItem) (types.TraceEntry, bool) {
	if !g.enabled {
		return types.TraceEntry{
			RuleID:   RuleNegativeScope,
			Section:  string(ucr.SectionNegativeScope),
			Reason:   types.ReasonNoMatch,
			Severity: types.SeverityInfo,
			Evidence: "hard exclusion not enforced",
		}, false
	}

	for _, ex := range g.exclusions {
		matched := false
		switch ex.MatchType {
		case ucr.MatchSemantic:
			matched = containsAllTokens(item.Keyword, ex.Value)
		default: // exact is the default match type
			matched = containsPhrase(item.Keyword, ex.Value)
		}
		if matched {
			return types.TraceEntry{
				RuleID:   RuleNegativeScope,
				Section:  string(ucr.SectionNegativeScope),
				Reason:   types.ReasonNegativeScopeMatch,
				Severity: types.SeverityHard,
				Evidence: ex.Value,
			}, true
		}
	}

	return types.TraceEntry{
		RuleID:   RuleNegativeScope,
		Section:  string(ucr.SectionNegativeScope),
		Reason:   types.ReasonNoMatch,
		Severity: types.SeverityInfo,
	}, false
}
