package ucr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSections_NilRecord(t *testing.T) {
	set := AvailableSections(nil)
	assert.Empty(t, set.Sorted())
}

func TestAvailableSections_Predicates(t *testing.T) {
	tests := []struct {
		name    string
		record  *ContextRecord
		section Section
		want    bool
	}{
		{"brand needs domain", &ContextRecord{Brand: &BrandIdentity{Name: "Acme"}}, SectionBrand, false},
		{"brand with domain", &ContextRecord{Brand: &BrandIdentity{Domain: "acme.com"}}, SectionBrand, true},
		{"category needs primary", &ContextRecord{Category: &CategoryDefinition{Included: []string{"x"}}}, SectionCategory, false},
		{"category with primary", &ContextRecord{Category: &CategoryDefinition{Primary: "footwear"}}, SectionCategory, true},
		{"competitors empty list", &ContextRecord{Competitors: []Competitor{}}, SectionCompetitors, false},
		{"competitors one entry", &ContextRecord{Competitors: []Competitor{{Domain: "rival.com"}}}, SectionCompetitors, true},
		{"demand needs terms", &ContextRecord{Demand: &DemandDefinition{}}, SectionDemand, false},
		{"demand with category terms", &ContextRecord{Demand: &DemandDefinition{CategoryTerms: []string{"sandals"}}}, SectionDemand, true},
		{"strategy needs growth priority", &ContextRecord{Strategy: &StrategicIntent{RiskTolerance: "low"}}, SectionStrategy, false},
		{"strategy with priority", &ContextRecord{Strategy: &StrategicIntent{GrowthPriority: "expand"}}, SectionStrategy, true},
		{"channels paid media only", &ContextRecord{Channels: &ChannelContext{PaidMedia: true}}, SectionChannels, true},
		{"channels all empty", &ContextRecord{Channels: &ChannelContext{}}, SectionChannels, false},
		{"negative scope empty sub-record", &ContextRecord{NegativeScope: &NegativeScope{Enforcement: EnforcementRules{HardExclusion: true}}}, SectionNegativeScope, false},
		{"negative scope with exclusion", &ContextRecord{NegativeScope: &NegativeScope{
			ExcludedKeywords: []Exclusion{{Value: "jobs"}},
		}}, SectionNegativeScope, true},
		{"governance with thresholds", &ContextRecord{Governance: &Governance{Thresholds: ScoringThresholds{Pass: 0.7}}}, SectionGovernance, true},
		{"governance empty", &ContextRecord{Governance: &Governance{}}, SectionGovernance, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := AvailableSections(tt.record)
			assert.Equal(t, tt.want, set.Has(tt.section))
		})
	}
}

func TestSectionSet_SortedCanonicalOrder(t *testing.T) {
	set := NewSectionSet(SectionGovernance, SectionBrand, SectionDemand)
	assert.Equal(t, []Section{SectionBrand, SectionDemand, SectionGovernance}, set.Sorted())
}

func TestFingerprint(t *testing.T) {
	base := func() *ContextRecord {
		return &ContextRecord{
			ID:        "ucr-1",
			Version:   3,
			UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
			Brand:     &BrandIdentity{Domain: "acme.com", Name: "Acme"},
		}
	}

	t.Run("deterministic for unchanged record", func(t *testing.T) {
		require.Equal(t, Fingerprint(base()), Fingerprint(base()))
	})

	t.Run("changes with content", func(t *testing.T) {
		changed := base()
		changed.Brand.Name = "Acme Inc"
		assert.NotEqual(t, Fingerprint(base()), Fingerprint(changed))
	})

	t.Run("changes with updated timestamp", func(t *testing.T) {
		changed := base()
		changed.UpdatedAt = changed.UpdatedAt.Add(time.Minute)
		assert.NotEqual(t, Fingerprint(base()), Fingerprint(changed))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.Equal(t, "v0-empty", Fingerprint(nil))
	})
}
