// Package registry holds the module contract table: for each analysis
// module, which context sections it requires or optionally uses, and the
// strategic question it answers. The registry is an explicitly constructed
// immutable lookup passed into the gateway, so tests can substitute
// fixtures instead of relying on process-wide state.
package registry

import (
	"fmt"

	"brandscope/internal/ucr"
)

// Contract declares a module's context requirements.
type Contract struct {
	ModuleID          string
	Name              string
	StrategicQuestion string
	Required          []ucr.Section
	Optional          []ucr.Section
}

// ExecCheck is the result of a contract satisfaction check.
type ExecCheck struct {
	CanExecute      bool
	MissingSections []ucr.Section
	Warnings        []string
}

// Registry is an immutable module_id -> Contract lookup.
type Registry struct {
	contracts map[string]Contract
}

// New builds a registry from the given contracts. Later duplicates of a
// module id overwrite earlier ones.
func New(contracts ...Contract) *Registry {
	m := make(map[string]Contract, len(contracts))
	for _, c := range contracts {
		m[c.ModuleID] = c
	}
	return &Registry{contracts: m}
}

// Default returns the built-in analysis module table.
func Default() *Registry {
	return New(
		Contract{
			ModuleID:          "keyword_opportunities",
			Name:              "Keyword Opportunities",
			StrategicQuestion: "Which keywords can the brand realistically win next?",
			Required:          []ucr.Section{ucr.SectionBrand, ucr.SectionCategory, ucr.SectionDemand},
			Optional:          []ucr.Section{ucr.SectionNegativeScope, ucr.SectionGovernance, ucr.SectionStrategy},
		},
		Contract{
			ModuleID:          "competitor_gap",
			Name:              "Competitor Gap",
			StrategicQuestion: "Where are competitors capturing demand the brand is missing?",
			Required:          []ucr.Section{ucr.SectionBrand, ucr.SectionCompetitors},
			Optional:          []ucr.Section{ucr.SectionCategory, ucr.SectionNegativeScope},
		},
		Contract{
			ModuleID:          "demand_landscape",
			Name:              "Demand Landscape",
			StrategicQuestion: "What does the demand around the category look like?",
			Required:          []ucr.Section{ucr.SectionBrand, ucr.SectionDemand},
			Optional:          []ucr.Section{ucr.SectionCategory, ucr.SectionStrategy},
		},
		Contract{
			ModuleID:          "brand_protection",
			Name:              "Brand Protection",
			StrategicQuestion: "Which branded queries leak to competitors or out-of-scope results?",
			Required:          []ucr.Section{ucr.SectionBrand, ucr.SectionNegativeScope},
			Optional:          []ucr.Section{ucr.SectionCompetitors},
		},
		Contract{
			ModuleID:          "content_themes",
			Name:              "Content Themes",
			StrategicQuestion: "Which demand themes deserve dedicated content investment?",
			Required:          []ucr.Section{ucr.SectionCategory, ucr.SectionDemand, ucr.SectionStrategy},
			Optional:          []ucr.Section{ucr.SectionGovernance},
		},
		Contract{
			ModuleID:          "channel_mix",
			Name:              "Channel Mix",
			StrategicQuestion: "How should effort split across paid, organic and marketplace channels?",
			Required:          []ucr.Section{ucr.SectionBrand, ucr.SectionChannels},
			Optional:          []ucr.Section{ucr.SectionStrategy},
		},
	)
}

// Lookup returns the contract for a module id.
func (r *Registry) Lookup(moduleID string) (Contract, bool) {
	c, ok := r.contracts[moduleID]
	return c, ok
}

// ModuleIDs returns all registered module ids in unspecified order.
func (r *Registry) ModuleIDs() []string {
	ids := make([]string, 0, len(r.contracts))
	for id := range r.contracts {
		ids = append(ids, id)
	}
	return ids
}

// CanModuleExecute checks contract satisfaction against the available
// sections. Pure function, fails closed: an unknown module id yields
// CanExecute=false with a "module not found" warning rather than an error.
func (r *Registry) CanModuleExecute(moduleID string, available ucr.SectionSet) ExecCheck {
	contract, ok := r.contracts[moduleID]
	if !ok {
		return ExecCheck{
			CanExecute: false,
			Warnings:   []string{fmt.Sprintf("module not found: %s", moduleID)},
		}
	}

	check := ExecCheck{CanExecute: true}
	for _, s := range contract.Required {
		if !available.Has(s) {
			check.MissingSections = append(check.MissingSections, s)
		}
	}
	if len(check.MissingSections) > 0 {
		check.CanExecute = false
	}
	for _, s := range contract.Optional {
		if !available.Has(s) {
			check.Warnings = append(check.Warnings,
				fmt.Sprintf("optional section %s unavailable: %s", s, s.Role()))
		}
	}
	return check
}
