package classify

import (
	"fmt"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Rule ids emitted by the capability scorer.
const (
	RuleCapabilityBooster = "capability_booster"
	RuleCapabilityPenalty = "capability_penalty"
	RuleCapabilityAvoid   = "capability_avoid"
	RuleCapabilityScore   = "capability_score"
)

// DefaultAvoidPenalty is subtracted once per matching strategic avoid-list
// term when no explicit weight is configured.
const DefaultAvoidPenalty = 0.2

// CapabilityScorer evaluates the data-driven capability model against a
// keyword: base score, additive boosters capped at 1.0, subtractive
// penalties floored at 0. Strategic avoid-list terms act as penalties.
type CapabilityScorer struct {
	model        ucr.CapabilityModel
	avoid        []string
	avoidPenalty float64
}

// NewCapabilityScorer builds a scorer. avoidPenalty <= 0 selects the
// default weight.
func NewCapabilityScorer(model ucr.CapabilityModel, avoid []string, avoidPenalty float64) *CapabilityScorer {
	if avoidPenalty <= 0 {
		avoidPenalty = DefaultAvoidPenalty
	}
	return &CapabilityScorer{model: model, avoid: avoid, avoidPenalty: avoidPenalty}
}

func matchesAny(keyword string, terms []string) (string, bool) {
	for _, t := range terms {
		if t == "" {
			continue
		}
		if containsFold(keyword, t) {
			return t, true
		}
	}
	return "", false
}

// Score returns the capability score in [0,1] plus the trace entries of
// every fired booster and penalty, in declared order, closed by a summary
// entry carrying the final score.
func (s *CapabilityScorer) Score(item types.CandidateItem) (float64, []types.TraceEntry) {
	score := s.model.Base
	var trace []types.TraceEntry

	for _, b := range s.model.Boosters {
		if term, ok := matchesAny(item.Keyword, b.Terms); ok {
			score += b.Weight
			trace = append(trace, types.TraceEntry{
				RuleID:   RuleCapabilityBooster,
				Section:  string(ucr.SectionGovernance),
				Reason:   "booster:" + b.Name,
				Severity: types.SeveritySoft,
				Evidence: term,
			})
		}
	}
	if score > 1 {
		score = 1
	}

	for _, p := range s.model.Penalties {
		if term, ok := matchesAny(item.Keyword, p.Terms); ok {
			score -= p.Weight
			trace = append(trace, types.TraceEntry{
				RuleID:   RuleCapabilityPenalty,
				Section:  string(ucr.SectionGovernance),
				Reason:   "penalty:" + p.Name,
				Severity: types.SeveritySoft,
				Evidence: term,
			})
		}
	}
	for _, term := range s.avoid {
		if term == "" {
			continue
		}
		if containsFold(item.Keyword, term) {
			score -= s.avoidPenalty
			trace = append(trace, types.TraceEntry{
				RuleID:   RuleCapabilityAvoid,
				Section:  string(ucr.SectionStrategy),
				Reason:   "penalty:avoid_list",
				Severity: types.SeveritySoft,
				Evidence: term,
			})
		}
	}
	if score < 0 {
		score = 0
	}

	trace = append(trace, types.TraceEntry{
		RuleID:   RuleCapabilityScore,
		Section:  string(ucr.SectionGovernance),
		Reason:   "capability_scored",
		Severity: types.SeverityInfo,
		Evidence: fmt.Sprintf("%.3f", score),
	})
	return score, trace
}
