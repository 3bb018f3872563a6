package gate

import (
	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// RuleCategoryFence is the rule id of the section-B soft gate.
const RuleCategoryFence = "category_fence"

// fenceGate flags items outside the category fence. The fence is advisory:
// an outside item is carried forward, never excluded, and a sufficiently
// high capability score still yields a Pass downstream.
type fenceGate struct {
	enabled  bool
	inScope  []string
	excluded []string
}

func newFenceGate(cat *ucr.CategoryDefinition) *fenceGate {
	g := &fenceGate{}
	if cat == nil || cat.Primary == "" {
		return g
	}
	g.enabled = true
	g.inScope = append(g.inScope, cat.Primary)
	g.inScope = append(g.inScope, cat.Included...)
	g.excluded = append(g.excluded, cat.Excluded...)
	return g
}

// check returns (entry, outsideFence). The entry severity is soft when the
// item falls outside the fence and info otherwise; it is never hard.
func (g *fenceGate) check(item types.CandidateItem) (types.TraceEntry, bool) {
	if !g.enabled {
		return types.TraceEntry{
			RuleID:   RuleCategoryFence,
			Section:  string(ucr.SectionCategory),
			Reason:   types.ReasonNoMatch,
			Severity: types.SeverityInfo,
			Evidence: "no category fence configured",
		}, false
	}

	for _, ex := range g.excluded {
		if containsPhrase(item.Keyword, ex) {
			return types.TraceEntry{
				RuleID:   RuleCategoryFence,
				Section:  string(ucr.SectionCategory),
				Reason:   types.ReasonOutsideFence,
				Severity: types.SeveritySoft,
				Evidence: "excluded concept: " + ex,
			}, true
		}
	}
	for _, concept := range g.inScope {
		if containsAllTokens(item.Keyword, concept) || containsPhrase(item.Keyword, concept) {
			return types.TraceEntry{
				RuleID:   RuleCategoryFence,
				Section:  string(ucr.SectionCategory),
				Reason:   types.ReasonNoMatch,
				Severity: types.SeverityInfo,
				Evidence: "in scope: " + concept,
			}, false
		}
	}

	return types.TraceEntry{
		RuleID:   RuleCategoryFence,
		Section:  string(ucr.SectionCategory),
		Reason:   types.ReasonOutsideFence,
		Severity: types.SeveritySoft,
	}, true
}
