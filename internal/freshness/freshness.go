// Package freshness computes age-based confidence decay and refresh
// urgency for analysis results. It is a pure function of elapsed time and
// a decay configuration, applied at the consuming-module boundary and
// never used to block execution.
package freshness

import (
	"fmt"
	"math"
	"time"
)

// Status of a result's data age.
type Status string

const (
	StatusFresh    Status = "fresh"
	StatusModerate Status = "moderate"
	StatusStale    Status = "stale"
	StatusExpired  Status = "expired"
)

// Urgency is the advisory refresh signal derived from status.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Decay floor and cap applied to decayed confidence.
const (
	confidenceFloor = 0.1
	confidenceCap   = 1.0
)

// Config is a module-specific decay configuration.
type Config struct {
	FreshDays    int     `yaml:"fresh_days"`
	ModerateDays int     `yaml:"moderate_days"`
	StaleDays    int     `yaml:"stale_days"`
	DecayRate    float64 `yaml:"decay_rate"`
}

// Default returns the fallback decay configuration.
func Default() Config {
	return Config{FreshDays: 7, ModerateDays: 30, StaleDays: 90, DecayRate: 0.05}
}

// withDefaults fills unset fields so the functions below are total.
func (c Config) withDefaults() Config {
	d := Default()
	if c.FreshDays <= 0 {
		c.FreshDays = d.FreshDays
	}
	if c.ModerateDays <= c.FreshDays {
		c.ModerateDays = max(d.ModerateDays, c.FreshDays+1)
	}
	if c.StaleDays <= c.ModerateDays {
		c.StaleDays = max(d.StaleDays, c.ModerateDays+1)
	}
	if c.DecayRate <= 0 {
		c.DecayRate = d.DecayRate
	}
	return c
}

// Result of a freshness check.
type Result struct {
	Status  Status `json:"status"`
	AgeDays int    `json:"age_days"`
	Warning string `json:"warning,omitempty"`
}

// StatusAt evaluates freshness against an explicit clock.
func StatusAt(dataTimestamp time.Time, cfg Config, now time.Time) Result {
	cfg = cfg.withDefaults()
	age := ageDays(dataTimestamp, now)
	days := int(age)

	switch {
	case age <= float64(cfg.FreshDays):
		return Result{Status: StatusFresh, AgeDays: days}
	case age <= float64(cfg.ModerateDays):
		return Result{Status: StatusModerate, AgeDays: days}
	case age <= float64(cfg.StaleDays):
		return Result{
			Status:  StatusStale,
			AgeDays: days,
			Warning: fmt.Sprintf("data is %d days old; refresh recommended", days),
		}
	default:
		return Result{
			Status:  StatusExpired,
			AgeDays: days,
			Warning: fmt.Sprintf("data is %d days old and past its useful life", days),
		}
	}
}

// CalculateFreshnessStatus evaluates freshness against the wall clock.
func CalculateFreshnessStatus(dataTimestamp time.Time, cfg Config) Result {
	return StatusAt(dataTimestamp, cfg, time.Now().UTC())
}

// DecayAt computes the decayed confidence against an explicit clock.
// Confidence is unchanged while fresh, then decays exponentially with age
// beyond the fresh window, floored at 0.1 and capped at 1.0. For a fixed
// base confidence the result is non-increasing in age.
func DecayAt(baseConfidence float64, dataTimestamp time.Time, cfg Config, now time.Time) float64 {
	cfg = cfg.withDefaults()
	if baseConfidence > confidenceCap {
		baseConfidence = confidenceCap
	}
	age := ageDays(dataTimestamp, now)
	if age <= float64(cfg.FreshDays) {
		return baseConfidence
	}
	decayed := baseConfidence * math.Exp(-cfg.DecayRate*(age-float64(cfg.FreshDays)))
	if decayed < confidenceFloor {
		return confidenceFloor
	}
	return decayed
}

// ApplyTimeDecay computes the decayed confidence against the wall clock.
func ApplyTimeDecay(baseConfidence float64, dataTimestamp time.Time, cfg Config) float64 {
	return DecayAt(baseConfidence, dataTimestamp, cfg, time.Now().UTC())
}

// ShouldRefresh maps a freshness result to an advisory urgency. The
// moderate window splits into low urgency for its first half and medium
// for the second.
func ShouldRefresh(r Result, cfg Config) Urgency {
	cfg = cfg.withDefaults()
	switch r.Status {
	case StatusFresh:
		return UrgencyNone
	case StatusModerate:
		mid := cfg.FreshDays + (cfg.ModerateDays-cfg.FreshDays)/2
		if r.AgeDays <= mid {
			return UrgencyLow
		}
		return UrgencyMedium
	case StatusStale:
		return UrgencyHigh
	default:
		return UrgencyCritical
	}
}

func ageDays(ts, now time.Time) float64 {
	if ts.IsZero() || ts.After(now) {
		return 0
	}
	return now.Sub(ts).Hours() / 24
}
