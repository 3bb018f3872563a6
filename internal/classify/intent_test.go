package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

func classifierFixture() *IntentClassifier {
	return NewIntentClassifier(&ucr.ContextRecord{
		Brand: &ucr.BrandIdentity{Domain: "acme.com", Name: "Acme"},
		Category: &ucr.CategoryDefinition{
			Primary:  "recovery footwear",
			Included: []string{"recovery sandals"},
		},
		Demand: &ucr.DemandDefinition{
			BrandTerms:    []string{"acme slides"},
			CategoryTerms: []string{"recovery shoes"},
			Themes:        []ucr.DemandTheme{{Name: "comfort", Terms: []string{"plantar fasciitis shoes"}}},
		},
	})
}

func TestIntentClassifier_Table(t *testing.T) {
	c := classifierFixture()

	tests := []struct {
		keyword string
		want    types.Intent
	}{
		{"acme slides sale", types.IntentBrandCapture},
		{"Acme discount code", types.IntentBrandCapture},
		{"sandals size 11", types.IntentVariantOrSize},
		{"slides mens wide", types.IntentVariantOrSize},
		{"how to fix heel pain", types.IntentProblemSolution},
		{"plantar fasciitis relief", types.IntentProblemSolution},
		{"recovery shoes reviews", types.IntentCategoryCapture},
		{"best plantar fasciitis shoes", types.IntentCategoryCapture},
		{"comfortable sandals", types.IntentProductGeneric},
		{"", types.IntentProductGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, entry := c.Classify(tt.keyword)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, entry.Reason, string(tt.want))
		})
	}
}

func TestIntentClassifier_FirstMatchWins(t *testing.T) {
	// "acme slides size 10" matches both the brand rule and the variant
	// rule; the brand rule is ordered first.
	got, entry := classifierFixture().Classify("acme slides size 10")
	assert.Equal(t, types.IntentBrandCapture, got)
	assert.Equal(t, RuleIntentBrand, entry.RuleID)
}

func TestIntentClassifier_WholeTokenMatch(t *testing.T) {
	// "ml" is a variant term but must not fire inside another word.
	got, _ := NewIntentClassifier(nil).Classify("html tutorials")
	assert.Equal(t, types.IntentProductGeneric, got)
}

func TestIntentClassifier_NilRecord(t *testing.T) {
	got, entry := NewIntentClassifier(nil).Classify("anything at all")
	assert.Equal(t, types.IntentProductGeneric, got)
	assert.Equal(t, RuleIntentDefault, entry.RuleID)
}
