// Package types defines the value types shared across the classification
// pipeline: candidate items as delivered by the keyword data provider,
// classified items as produced by a full pipeline pass, and the per-item
// trace entries that record every rule application.
package types

// CandidateItem is one keyword record from the data provider.
// Items are immutable once fetched; the pipeline never writes back to them.
type CandidateItem struct {
	Keyword      string  `json:"keyword" yaml:"keyword"`
	SearchVolume int     `json:"search_volume" yaml:"search_volume"`
	Position     int     `json:"position,omitempty" yaml:"position,omitempty"` // 1-100, 0 = unranked
	CPC          float64 `json:"cpc" yaml:"cpc"`
	Difficulty   int     `json:"difficulty,omitempty" yaml:"difficulty,omitempty"` // 0-100, 0 = unknown
}

// Intent is the demand category assigned to a keyword.
type Intent string

const (
	IntentCategoryCapture Intent = "category_capture"
	IntentProblemSolution Intent = "problem_solution"
	IntentProductGeneric  Intent = "product_generic"
	IntentBrandCapture    Intent = "brand_capture"
	IntentVariantOrSize   Intent = "variant_or_size"
)

// Disposition is the three-tier outcome assigned to each item.
type Disposition string

const (
	DispositionPass      Disposition = "pass"
	DispositionReview    Disposition = "review"
	DispositionOutOfPlay Disposition = "out_of_play"
)

// Confidence expresses how far a capability score sits from the nearest
// disposition threshold.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Severity of a trace entry. Hard entries carry a terminal disposition,
// soft entries are advisory flags, info entries record that a rule ran
// without firing.
type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
	SeverityInfo Severity = "info"
)

// Reason codes attached to dispositions and trace entries.
const (
	ReasonNegativeScopeMatch = "negative_scope_match"
	ReasonCompetitorBrand    = "competitor_brand"
	ReasonIrrelevantEntity   = "irrelevant_entity"
	ReasonOutsideFence       = "outside_fence"
	ReasonLowCapability      = "low_capability"
	ReasonNoMatch            = "no_match"
)

// TraceEntry is one rule application in an item's evidence trail.
// Entries are appended in the order rules executed; the trace is the
// literal execution log, not a reconstruction.
type TraceEntry struct {
	RuleID   string   `json:"rule_id"`
	Section  string   `json:"ucr_section,omitempty"` // A-H, empty for built-in rules
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
	Evidence string   `json:"evidence,omitempty"`
}

// ClassifiedItem is a CandidateItem after one full pass through the gate
// chain, classifier and scorer. Items are recomputed from scratch on every
// run and never partially updated.
type ClassifiedItem struct {
	CandidateItem

	Disposition      Disposition  `json:"disposition"`
	ReasonCodes      []string     `json:"reason_codes,omitempty"`
	Intent           Intent       `json:"intent,omitempty"`
	CapabilityScore  float64      `json:"capability_score"`
	OpportunityScore float64      `json:"opportunity_score"`
	Confidence       Confidence   `json:"confidence,omitempty"`
	OutsideFence     bool         `json:"outside_fence,omitempty"`
	Trace            []TraceEntry `json:"trace"`
}
