// Package ucr defines the unified context record: the versioned,
// eight-section brand configuration that every analysis module is
// validated and scored against. The record is a passive snapshot supplied
// by the configuration store; this package never mutates it.
package ucr

import "time"

// ContextRecord is the full brand context aggregate. Every section is
// independently optional; section availability (not mere presence of the
// sub-record) gates module execution. See AvailableSections.
type ContextRecord struct {
	ID        string    `json:"id" yaml:"id"`
	Version   int       `json:"version" yaml:"version"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	Brand         *BrandIdentity      `json:"brand,omitempty" yaml:"brand,omitempty"`                   // A
	Category      *CategoryDefinition `json:"category,omitempty" yaml:"category,omitempty"`             // B
	Competitors   []Competitor        `json:"competitors,omitempty" yaml:"competitors,omitempty"`       // C
	Demand        *DemandDefinition   `json:"demand,omitempty" yaml:"demand,omitempty"`                 // D
	Strategy      *StrategicIntent    `json:"strategy,omitempty" yaml:"strategy,omitempty"`             // E
	Channels      *ChannelContext     `json:"channels,omitempty" yaml:"channels,omitempty"`             // F
	NegativeScope *NegativeScope      `json:"negative_scope,omitempty" yaml:"negative_scope,omitempty"` // G
	Governance    *Governance         `json:"governance,omitempty" yaml:"governance,omitempty"`         // H
}

// BrandIdentity is section A, the minimal identifying anchor.
type BrandIdentity struct {
	Domain   string `json:"domain" yaml:"domain"`
	Name     string `json:"name" yaml:"name"`
	Industry string `json:"industry,omitempty" yaml:"industry,omitempty"`
}

// CategoryDefinition is section B, the semantic fence.
type CategoryDefinition struct {
	Primary  string   `json:"primary" yaml:"primary"`
	Included []string `json:"included,omitempty" yaml:"included,omitempty"`
	Excluded []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// ApprovalStatus of a competitor entry.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Competitor is one entry in section C.
type Competitor struct {
	Domain string         `json:"domain" yaml:"domain"`
	Tier   string         `json:"tier,omitempty" yaml:"tier,omitempty"`
	Status ApprovalStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// DemandTheme names a cluster of demand terms.
type DemandTheme struct {
	Name  string   `json:"name" yaml:"name"`
	Terms []string `json:"terms" yaml:"terms"`
}

// DemandDefinition is section D.
type DemandDefinition struct {
	BrandTerms    []string      `json:"brand_terms,omitempty" yaml:"brand_terms,omitempty"`
	CategoryTerms []string      `json:"category_terms,omitempty" yaml:"category_terms,omitempty"`
	Themes        []DemandTheme `json:"themes,omitempty" yaml:"themes,omitempty"`
}

// StrategicIntent is section E.
type StrategicIntent struct {
	GrowthPriority string   `json:"growth_priority" yaml:"growth_priority"`
	RiskTolerance  string   `json:"risk_tolerance,omitempty" yaml:"risk_tolerance,omitempty"`
	Themes         []string `json:"themes,omitempty" yaml:"themes,omitempty"`
	AvoidList      []string `json:"avoid_list,omitempty" yaml:"avoid_list,omitempty"`
}

// ChannelContext is section F.
type ChannelContext struct {
	PaidMedia             bool   `json:"paid_media" yaml:"paid_media"`
	SEOInvestment         string `json:"seo_investment,omitempty" yaml:"seo_investment,omitempty"`
	MarketplaceDependence string `json:"marketplace_dependence,omitempty" yaml:"marketplace_dependence,omitempty"`
}

// MatchType of a negative-scope exclusion entry.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchSemantic MatchType = "semantic"
)

// Provenance of an exclusion entry.
type Provenance string

const (
	ProvenanceHuman Provenance = "human"
	ProvenanceAI    Provenance = "ai"
)

// Exclusion is one negative-scope entry. An entry whose ExpiresAt is in
// the past is treated as absent by the gate chain.
type Exclusion struct {
	Value       string     `json:"value" yaml:"value"`
	MatchType   MatchType  `json:"match_type,omitempty" yaml:"match_type,omitempty"` // defaults to exact
	Sensitivity string     `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Source      Provenance `json:"source,omitempty" yaml:"source,omitempty"`
}

// EnforcementRules controls how the negative scope is applied.
type EnforcementRules struct {
	HardExclusion        bool `json:"hard_exclusion" yaml:"hard_exclusion"`
	AllowModelSuggestion bool `json:"allow_model_suggestion" yaml:"allow_model_suggestion"`
	RequireHumanOverride bool `json:"require_human_override" yaml:"require_human_override"`
}

// NegativeScope is section G.
type NegativeScope struct {
	ExcludedCategories  []Exclusion      `json:"excluded_categories,omitempty" yaml:"excluded_categories,omitempty"`
	ExcludedKeywords    []Exclusion      `json:"excluded_keywords,omitempty" yaml:"excluded_keywords,omitempty"`
	ExcludedUseCases    []Exclusion      `json:"excluded_use_cases,omitempty" yaml:"excluded_use_cases,omitempty"`
	ExcludedCompetitors []Exclusion      `json:"excluded_competitors,omitempty" yaml:"excluded_competitors,omitempty"`
	Enforcement         EnforcementRules `json:"enforcement,omitempty" yaml:"enforcement,omitempty"`
}

// AllExclusions returns every exclusion list concatenated, tagged with its
// originating list name. Order is fixed so trace output is deterministic.
func (ns *NegativeScope) AllExclusions() []Exclusion {
	if ns == nil {
		return nil
	}
	out := make([]Exclusion, 0,
		len(ns.ExcludedCategories)+len(ns.ExcludedKeywords)+len(ns.ExcludedUseCases)+len(ns.ExcludedCompetitors))
	out = append(out, ns.ExcludedCategories...)
	out = append(out, ns.ExcludedKeywords...)
	out = append(out, ns.ExcludedUseCases...)
	out = append(out, ns.ExcludedCompetitors...)
	return out
}

// ModelRule is one booster or penalty in a capability model. A rule fires
// when any of its trigger terms appears in the keyword.
type ModelRule struct {
	Name   string   `json:"name" yaml:"name"`
	Terms  []string `json:"terms" yaml:"terms"`
	Weight float64  `json:"weight" yaml:"weight"`
}

// CapabilityModel is the data-driven capability configuration: a base
// score plus additive boosters (capped at 1.0) and subtractive penalties
// (floored at 0). Adding a vertical is a data change, never a code change.
type CapabilityModel struct {
	Base      float64     `json:"base" yaml:"base"`
	Boosters  []ModelRule `json:"boosters,omitempty" yaml:"boosters,omitempty"`
	Penalties []ModelRule `json:"penalties,omitempty" yaml:"penalties,omitempty"`
}

// ScoringThresholds is the section-H scoring configuration. Zero values
// fall back to the documented defaults at the point of use.
type ScoringThresholds struct {
	Pass             float64 `json:"pass_threshold" yaml:"pass_threshold"`
	Review           float64 `json:"review_threshold" yaml:"review_threshold"`
	DifficultyWeight float64 `json:"difficulty_weight" yaml:"difficulty_weight"`
	PositionWeight   float64 `json:"position_weight" yaml:"position_weight"`
}

// Governance is section H.
type Governance struct {
	CapabilityModel *CapabilityModel  `json:"capability_model,omitempty" yaml:"capability_model,omitempty"`
	Thresholds      ScoringThresholds `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
	QualityScore    float64           `json:"quality_score,omitempty" yaml:"quality_score,omitempty"`
	Lifecycle       string            `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`
}
