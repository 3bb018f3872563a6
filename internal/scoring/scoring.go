// Package scoring combines volume, monetary value, intent weight,
// capability, difficulty and rank position into the opportunity score and
// the three-tier disposition. Capability, not the category fence, is the
// deciding signal; fence flags never downgrade a disposition.
package scoring

import (
	"fmt"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Documented defaults, applied wherever section H leaves a value unset.
const (
	DefaultPassThreshold    = 0.60
	DefaultReviewThreshold  = 0.30
	DefaultDifficultyWeight = 0.5
	DefaultPositionWeight   = 1.0
	DefaultConfidenceBand   = 0.15
	DefaultNearBand         = 0.05
	DefaultUnrankedFactor   = 0.7
)

// Rule ids emitted into item traces by the scorer.
const (
	RuleOpportunityScore = "opportunity_score"
	RuleDisposition      = "disposition"
)

// defaultIntentWeights ranks demand categories by strategic value:
// category capture and problem/solution demand are worth the most,
// defending already-owned brand queries the least.
var defaultIntentWeights = map[types.Intent]float64{
	types.IntentCategoryCapture: 1.0,
	types.IntentProblemSolution: 0.9,
	types.IntentProductGeneric:  0.7,
	types.IntentVariantOrSize:   0.5,
	types.IntentBrandCapture:    0.3,
}

// PositionBand maps an inclusive rank range to a position factor.
type PositionBand struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Factor float64 `yaml:"factor"`
}

// defaultPositionCurve rewards striking distance (11-20) over both top-3
// rankings (little incremental value) and deep rankings. Unranked items
// get a separate factor reflecting their higher uncertainty.
var defaultPositionCurve = []PositionBand{
	{From: 1, To: 3, Factor: 0.5},
	{From: 4, To: 10, Factor: 1.0},
	{From: 11, To: 20, Factor: 1.3},
	{From: 21, To: 50, Factor: 0.8},
	{From: 51, To: 100, Factor: 0.6},
}

// Config tunes the engine. Zero values select the documented defaults.
type Config struct {
	Thresholds     ucr.ScoringThresholds    `yaml:"thresholds"`
	IntentWeights  map[types.Intent]float64 `yaml:"intent_weights"`
	PositionCurve  []PositionBand           `yaml:"position_curve"`
	UnrankedFactor float64                  `yaml:"unranked_factor"`
	ConfidenceBand float64                  `yaml:"confidence_band"`
	NearBand       float64                  `yaml:"near_band"`
}

// Result of scoring a single item.
type Result struct {
	OpportunityScore float64
	Disposition      types.Disposition
	ReasonCode       string
	Confidence       types.Confidence
	Trace            []types.TraceEntry
}

// Engine is the configured scorer. Construct once per run; Evaluate is
// safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine applies defaults to cfg and returns the engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Thresholds.Pass <= 0 {
		cfg.Thresholds.Pass = DefaultPassThreshold
	}
	if cfg.Thresholds.Review <= 0 {
		cfg.Thresholds.Review = DefaultReviewThreshold
	}
	if cfg.Thresholds.DifficultyWeight <= 0 {
		cfg.Thresholds.DifficultyWeight = DefaultDifficultyWeight
	}
	if cfg.Thresholds.PositionWeight <= 0 {
		cfg.Thresholds.PositionWeight = DefaultPositionWeight
	}
	if cfg.ConfidenceBand <= 0 {
		cfg.ConfidenceBand = DefaultConfidenceBand
	}
	if cfg.NearBand <= 0 {
		cfg.NearBand = DefaultNearBand
	}
	if cfg.UnrankedFactor <= 0 {
		cfg.UnrankedFactor = DefaultUnrankedFactor
	}
	if len(cfg.PositionCurve) == 0 {
		cfg.PositionCurve = defaultPositionCurve
	}
	if cfg.IntentWeights == nil {
		cfg.IntentWeights = defaultIntentWeights
	}
	return &Engine{cfg: cfg}
}

// Thresholds returns the effective thresholds after defaulting.
func (e *Engine) Thresholds() ucr.ScoringThresholds { return e.cfg.Thresholds }

func (e *Engine) intentWeight(intent types.Intent) float64 {
	if w, ok := e.cfg.IntentWeights[intent]; ok {
		return w
	}
	if w, ok := defaultIntentWeights[intent]; ok {
		return w
	}
	return defaultIntentWeights[types.IntentProductGeneric]
}

// positionFactor looks up the table-driven curve and interpolates toward
// neutral by the configured position weight: factor = 1 + w*(curve-1).
func (e *Engine) positionFactor(position int) float64 {
	curve := e.cfg.UnrankedFactor
	if position > 0 {
		curve = 1.0
		for _, band := range e.cfg.PositionCurve {
			if position >= band.From && position <= band.To {
				curve = band.Factor
				break
			}
		}
	}
	return 1 + e.cfg.Thresholds.PositionWeight*(curve-1)
}

// difficultyFactor scales the score down proportionally to keyword
// difficulty. Unknown difficulty (0) leaves the score untouched.
func (e *Engine) difficultyFactor(difficulty int) float64 {
	if difficulty <= 0 {
		return 1
	}
	if difficulty > 100 {
		difficulty = 100
	}
	f := 1 - e.cfg.Thresholds.DifficultyWeight*float64(difficulty)/100
	if f < 0 {
		return 0
	}
	return f
}

// Score computes the opportunity score. Missing volume or position have
// already been normalized to 0/unranked by the item type; the formula is
// total over any item.
func (e *Engine) Score(item types.CandidateItem, intent types.Intent, capability float64) float64 {
	return float64(item.SearchVolume) * item.CPC * e.intentWeight(intent) * capability *
		e.difficultyFactor(item.Difficulty) * e.positionFactor(item.Position)
}

// Disposition applies the capability thresholds. The pass bound is
// inclusive: capability exactly at pass_threshold is a Pass.
func (e *Engine) Disposition(capability float64) (types.Disposition, string) {
	switch {
	case capability >= e.cfg.Thresholds.Pass:
		return types.DispositionPass, ""
	case capability >= e.cfg.Thresholds.Review:
		return types.DispositionReview, ""
	default:
		return types.DispositionOutOfPlay, types.ReasonLowCapability
	}
}

// Confidence derives from the margin between the capability score and the
// nearest threshold: High beyond the configured band, Low inside the
// near-boundary band, Medium between.
func (e *Engine) Confidence(capability float64) types.Confidence {
	margin := abs(capability - e.cfg.Thresholds.Pass)
	if m := abs(capability - e.cfg.Thresholds.Review); m < margin {
		margin = m
	}
	switch {
	case margin >= e.cfg.ConfidenceBand:
		return types.ConfidenceHigh
	case margin < e.cfg.NearBand:
		return types.ConfidenceLow
	default:
		return types.ConfidenceMedium
	}
}

// Evaluate scores one item and returns the full result with its trace
// entries in execution order.
func (e *Engine) Evaluate(item types.CandidateItem, intent types.Intent, capability float64) Result {
	score := e.Score(item, intent, capability)
	disposition, reason := e.Disposition(capability)
	confidence := e.Confidence(capability)

	trace := []types.TraceEntry{{
		RuleID:   RuleOpportunityScore,
		Section:  string(ucr.SectionGovernance),
		Reason:   "scored",
		Severity: types.SeverityInfo,
		Evidence: fmt.Sprintf("%.2f", score),
	}}
	severity := types.SeverityInfo
	if disposition == types.DispositionOutOfPlay {
		severity = types.SeverityHard
	}
	dispositionEntry := types.TraceEntry{
		RuleID:   RuleDisposition,
		Section:  string(ucr.SectionGovernance),
		Reason:   "disposition:" + string(disposition),
		Severity: severity,
		Evidence: fmt.Sprintf("capability=%.3f pass=%.2f review=%.2f", capability, e.cfg.Thresholds.Pass, e.cfg.Thresholds.Review),
	}
	trace = append(trace, dispositionEntry)

	return Result{
		OpportunityScore: score,
		Disposition:      disposition,
		ReasonCode:       reason,
		Confidence:       confidence,
		Trace:            trace,
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
