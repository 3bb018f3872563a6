// Package classify assigns an intent category and a capability-fit score
// to items that survive the gate chain. Intent rules are ordered and
// deterministic: the first matching rule wins and the default is
// product_generic. The capability model is pure data, supplied by the
// governance section or a named vertical preset.
package classify

import (
	"strings"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Rule ids emitted into item traces by this package.
const (
	RuleIntentBrand    = "intent_brand"
	RuleIntentVariant  = "intent_variant"
	RuleIntentProblem  = "intent_problem"
	RuleIntentCategory = "intent_category"
	RuleIntentDefault  = "intent_default"
)

// variantTerms signal a size or variant refinement query.
var variantTerms = []string{
	"size", "sizes", "ml", "oz", "xl", "xxl", "xs",
	"small", "medium", "large", "wide", "narrow",
	"color", "colour", "mens", "womens", "kids", "pack of",
}

// problemTerms signal problem/solution demand.
var problemTerms = []string{
	"how to", "why does", "relief", "remedy", "treatment",
	"prevent", "repair", "hurts", "pain", "problem", "help with",
	"best for", "alternative to",
}

// intentRule is one ordered pattern rule.
type intentRule struct {
	id      string
	intent  types.Intent
	section ucr.Section
	terms   []string
}

// IntentClassifier applies the ordered rule list to a keyword.
type IntentClassifier struct {
	rules []intentRule
}

// NewIntentClassifier derives the rule list from a record snapshot. Brand
// terms come from sections A and D; category terms from sections B and D
// including named demand themes.
func NewIntentClassifier(record *ucr.ContextRecord) *IntentClassifier {
	var brand, category []string
	if record != nil {
		if record.Brand != nil && record.Brand.Name != "" {
			brand = append(brand, record.Brand.Name)
		}
		if record.Demand != nil {
			brand = append(brand, record.Demand.BrandTerms...)
			category = append(category, record.Demand.CategoryTerms...)
			for _, theme := range record.Demand.Themes {
				category = append(category, theme.Terms...)
			}
		}
		if record.Category != nil {
			category = append(category, record.Category.Primary)
			category = append(category, record.Category.Included...)
		}
	}

	return &IntentClassifier{rules: []intentRule{
		{id: RuleIntentBrand, intent: types.IntentBrandCapture, section: ucr.SectionDemand, terms: brand},
		{id: RuleIntentVariant, intent: types.IntentVariantOrSize, terms: variantTerms},
		{id: RuleIntentProblem, intent: types.IntentProblemSolution, terms: problemTerms},
		{id: RuleIntentCategory, intent: types.IntentCategoryCapture, section: ucr.SectionCategory, terms: category},
	}}
}

// Classify returns the keyword's intent and the trace entry recording
// which rule decided it.
func (c *IntentClassifier) Classify(keyword string) (types.Intent, types.TraceEntry) {
	normalized := " " + strings.Join(strings.Fields(strings.ToLower(keyword)), " ") + " "

	for _, rule := range c.rules {
		for _, term := range rule.terms {
			t := strings.Join(strings.Fields(strings.ToLower(term)), " ")
			if t == "" {
				continue
			}
			// Whole-token phrase match: "ml" must not fire on "html".
			if strings.Contains(normalized, " "+t+" ") {
				return rule.intent, types.TraceEntry{
					RuleID:   rule.id,
					Section:  string(rule.section),
					Reason:   "intent:" + string(rule.intent),
					Severity: types.SeverityInfo,
					Evidence: t,
				}
			}
		}
	}

	return types.IntentProductGeneric, types.TraceEntry{
		RuleID:   RuleIntentDefault,
		Reason:   "intent:" + string(types.IntentProductGeneric),
		Severity: types.SeverityInfo,
	}
}
