package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

var now = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func recordWithExclusions(hard bool, exclusions ...ucr.Exclusion) *ucr.ContextRecord {
	return &ucr.ContextRecord{
		NegativeScope: &ucr.NegativeScope{
			ExcludedKeywords: exclusions,
			Enforcement:      ucr.EnforcementRules{HardExclusion: hard},
		},
	}
}

func TestNegativeScope_HardGate(t *testing.T) {
	chain := NewChain(recordWithExclusions(true,
		ucr.Exclusion{Value: "customer service", MatchType: ucr.MatchExact},
	), Options{Now: now})

	t.Run("exact substring match blocks regardless of volume", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "brand Customer   Service phone number", SearchVolume: 100000})
		assert.True(t, v.Blocked)
		assert.Equal(t, types.ReasonNegativeScopeMatch, v.Reason)
		require.Len(t, v.Trace, 1, "fail-fast: no later gate may run")
		assert.Equal(t, types.SeverityHard, v.Trace[0].Severity)
		assert.Equal(t, "customer service", v.Trace[0].Evidence)
	})

	t.Run("non-matching item passes with info trace", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "recovery sandals"})
		assert.False(t, v.Blocked)
		assert.Equal(t, types.ReasonNoMatch, v.Trace[0].Reason)
	})
}

func TestNegativeScope_DisabledWithoutHardExclusion(t *testing.T) {
	chain := NewChain(recordWithExclusions(false,
		ucr.Exclusion{Value: "jobs"},
	), Options{Now: now})

	v := chain.Evaluate(types.CandidateItem{Keyword: "jobs at acme"})
	assert.False(t, v.Blocked)
}

func TestNegativeScope_ExpiredEntriesAreAbsent(t *testing.T) {
	expired := now.Add(-24 * time.Hour)
	live := now.Add(24 * time.Hour)

	t.Run("expired entry does not fire", func(t *testing.T) {
		chain := NewChain(recordWithExclusions(true,
			ucr.Exclusion{Value: "jobs", ExpiresAt: &expired},
		), Options{Now: now})
		v := chain.Evaluate(types.CandidateItem{Keyword: "jobs at acme"})
		assert.False(t, v.Blocked)
	})

	t.Run("unexpired entry fires", func(t *testing.T) {
		chain := NewChain(recordWithExclusions(true,
			ucr.Exclusion{Value: "jobs", ExpiresAt: &live},
		), Options{Now: now})
		v := chain.Evaluate(types.CandidateItem{Keyword: "jobs at acme"})
		assert.True(t, v.Blocked)
	})
}

func TestNegativeScope_SemanticMatch(t *testing.T) {
	chain := NewChain(recordWithExclusions(true,
		ucr.Exclusion{Value: "free sample", MatchType: ucr.MatchSemantic},
	), Options{Now: now})

	t.Run("all tokens anywhere in the keyword", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "sample pack free shipping"})
		assert.True(t, v.Blocked)
	})

	t.Run("partial token set does not fire", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "free shipping"})
		assert.False(t, v.Blocked)
	})
}

func TestEntityGate(t *testing.T) {
	record := &ucr.ContextRecord{
		Category: &ucr.CategoryDefinition{Primary: "recovery footwear", Included: []string{"sandals"}},
		Competitors: []ucr.Competitor{
			{Domain: "www.rivalbrand.com", Status: ucr.ApprovalApproved},
			{Domain: "rejected.com", Status: ucr.ApprovalRejected},
		},
	}
	chain := NewChain(record, Options{Now: now})

	t.Run("competitor token with domain term blocks", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "rivalbrand sandals"})
		assert.True(t, v.Blocked)
		assert.Equal(t, types.ReasonCompetitorBrand, v.Reason)
	})

	t.Run("competitor token without domain term passes", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "rivalbrand careers"})
		assert.False(t, v.Blocked, "entity gate needs a domain-relevant term to fire")
	})

	t.Run("rejected competitor entries are ignored", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "rejected sandals"})
		assert.False(t, v.Blocked)
	})

	t.Run("irrelevant entity with domain term blocks", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "lakers sandals"})
		assert.True(t, v.Blocked)
		assert.Equal(t, types.ReasonIrrelevantEntity, v.Reason)
	})
}

func TestFence_AdvisoryOnly(t *testing.T) {
	record := &ucr.ContextRecord{
		Category: &ucr.CategoryDefinition{
			Primary:  "recovery footwear",
			Included: []string{"sandals", "slides"},
			Excluded: []string{"running shoes"},
		},
	}
	chain := NewChain(record, Options{Now: now})

	t.Run("outside fence is flagged, never blocked", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "compression socks"})
		assert.False(t, v.Blocked)
		assert.True(t, v.OutsideFence)
		last := v.Trace[len(v.Trace)-1]
		assert.Equal(t, types.ReasonOutsideFence, last.Reason)
		assert.Equal(t, types.SeveritySoft, last.Severity)
	})

	t.Run("excluded concept is outside fence", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "best running shoes"})
		assert.False(t, v.Blocked)
		assert.True(t, v.OutsideFence)
	})

	t.Run("in-scope concept is inside fence", func(t *testing.T) {
		v := chain.Evaluate(types.CandidateItem{Keyword: "best slides for plantar fasciitis"})
		assert.False(t, v.Blocked)
		assert.False(t, v.OutsideFence)
	})
}

func TestChain_EveryGateTraced(t *testing.T) {
	record := &ucr.ContextRecord{
		Category: &ucr.CategoryDefinition{Primary: "footwear"},
		NegativeScope: &ucr.NegativeScope{
			ExcludedKeywords: []ucr.Exclusion{{Value: "jobs"}},
			Enforcement:      ucr.EnforcementRules{HardExclusion: true},
		},
	}
	chain := NewChain(record, Options{Now: now})

	v := chain.Evaluate(types.CandidateItem{Keyword: "footwear store"})
	require.Len(t, v.Trace, 3, "each gate logs exactly one entry per item")
	assert.Equal(t, RuleNegativeScope, v.Trace[0].RuleID)
	assert.Equal(t, RuleCategoryFence, v.Trace[2].RuleID)
}

func TestBrandToken(t *testing.T) {
	assert.Equal(t, "acme-corp", brandToken("https://www.acme-corp.com/about"))
	assert.Equal(t, "rival", brandToken("RIVAL.co.uk"))
	assert.Equal(t, "", brandToken(""))
}
