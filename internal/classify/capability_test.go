package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

func model() ucr.CapabilityModel {
	return ucr.CapabilityModel{
		Base: 0.5,
		Boosters: []ucr.ModelRule{
			{Name: "recovery", Terms: []string{"recovery", "comfort"}, Weight: 0.2},
			{Name: "transactional", Terms: []string{"buy", "price"}, Weight: 0.4},
		},
		Penalties: []ucr.ModelRule{
			{Name: "medical", Terms: []string{"prescription"}, Weight: 0.3},
		},
	}
}

func TestCapabilityScorer(t *testing.T) {
	s := NewCapabilityScorer(model(), nil, 0)

	t.Run("base score when nothing fires", func(t *testing.T) {
		score, trace := s.Score(types.CandidateItem{Keyword: "generic sandals"})
		assert.InDelta(t, 0.5, score, 1e-9)
		require.Len(t, trace, 1)
		assert.Equal(t, RuleCapabilityScore, trace[0].RuleID)
	})

	t.Run("booster is additive", func(t *testing.T) {
		score, trace := s.Score(types.CandidateItem{Keyword: "recovery sandals"})
		assert.InDelta(t, 0.7, score, 1e-9)
		assert.Equal(t, "booster:recovery", trace[0].Reason)
	})

	t.Run("boosters cap at 1.0", func(t *testing.T) {
		score, _ := s.Score(types.CandidateItem{Keyword: "buy recovery sandals best price"})
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("penalty is subtractive", func(t *testing.T) {
		score, _ := s.Score(types.CandidateItem{Keyword: "prescription sandals"})
		assert.InDelta(t, 0.2, score, 1e-9)
	})

	t.Run("score floors at zero", func(t *testing.T) {
		low := NewCapabilityScorer(ucr.CapabilityModel{
			Base:      0.1,
			Penalties: []ucr.ModelRule{{Name: "heavy", Terms: []string{"bad"}, Weight: 0.9}},
		}, nil, 0)
		score, _ := low.Score(types.CandidateItem{Keyword: "bad fit"})
		assert.Zero(t, score)
	})
}

func TestCapabilityScorer_AvoidList(t *testing.T) {
	s := NewCapabilityScorer(model(), []string{"gambling"}, 0.25)
	score, trace := s.Score(types.CandidateItem{Keyword: "gambling sandals"})
	assert.InDelta(t, 0.25, score, 1e-9)
	assert.Equal(t, "penalty:avoid_list", trace[0].Reason)
	assert.Equal(t, string(ucr.SectionStrategy), trace[0].Section)
}

func TestResolveModel(t *testing.T) {
	presets := map[string]ucr.CapabilityModel{"Footwear": {Base: 0.6}}

	t.Run("governance model wins", func(t *testing.T) {
		record := &ucr.ContextRecord{
			Brand:      &ucr.BrandIdentity{Industry: "footwear"},
			Governance: &ucr.Governance{CapabilityModel: &ucr.CapabilityModel{Base: 0.9}},
		}
		assert.InDelta(t, 0.9, ResolveModel(record, presets).Base, 1e-9)
	})

	t.Run("vertical preset by industry, case-insensitive", func(t *testing.T) {
		record := &ucr.ContextRecord{Brand: &ucr.BrandIdentity{Industry: "FOOTWEAR"}}
		assert.InDelta(t, 0.6, ResolveModel(record, presets).Base, 1e-9)
	})

	t.Run("default model as last resort", func(t *testing.T) {
		got := ResolveModel(nil, nil)
		assert.InDelta(t, DefaultModel().Base, got.Base, 1e-9)
	})
}
