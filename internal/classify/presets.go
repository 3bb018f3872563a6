package classify

import (
	"strings"

	"brandscope/internal/ucr"
)

// containsFold is a case-insensitive, whitespace-normalized substring test.
func containsFold(haystack, needle string) bool {
	h := strings.Join(strings.Fields(strings.ToLower(haystack)), " ")
	n := strings.Join(strings.Fields(strings.ToLower(needle)), " ")
	if n == "" {
		return false
	}
	return strings.Contains(h, n)
}

// DefaultModel is the fallback capability model used when neither the
// governance section nor a vertical preset supplies one: a neutral base
// with a transactional booster and an informational penalty.
func DefaultModel() ucr.CapabilityModel {
	return ucr.CapabilityModel{
		Base: 0.5,
		Boosters: []ucr.ModelRule{
			{Name: "transactional", Terms: []string{"buy", "price", "shop", "order", "near me"}, Weight: 0.15},
		},
		Penalties: []ucr.ModelRule{
			{Name: "informational_only", Terms: []string{"wikipedia", "definition", "meaning of"}, Weight: 0.2},
		},
	}
}

// ResolveModel picks the capability model for a run: the governance
// section's model when present, else the vertical preset matching the
// brand industry, else the built-in default. Preset keys are matched
// case-insensitively.
func ResolveModel(record *ucr.ContextRecord, presets map[string]ucr.CapabilityModel) ucr.CapabilityModel {
	if record != nil && record.Governance != nil && record.Governance.CapabilityModel != nil {
		return *record.Governance.CapabilityModel
	}
	if record != nil && record.Brand != nil && record.Brand.Industry != "" {
		industry := strings.ToLower(record.Brand.Industry)
		for name, model := range presets {
			if strings.ToLower(name) == industry {
				return model
			}
		}
	}
	return DefaultModel()
}
