package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var clock = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time { return clock.AddDate(0, 0, -d) }

func TestStatusAt_Boundaries(t *testing.T) {
	cfg := Config{FreshDays: 7, ModerateDays: 30, StaleDays: 90, DecayRate: 0.05}

	tests := []struct {
		name string
		age  int
		want Status
	}{
		{"same day", 0, StatusFresh},
		{"at fresh boundary", 7, StatusFresh},
		{"just past fresh", 8, StatusModerate},
		{"at moderate boundary", 30, StatusModerate},
		{"stale", 60, StatusStale},
		{"at stale boundary", 90, StatusStale},
		{"expired", 91, StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := StatusAt(daysAgo(tt.age), cfg, clock)
			assert.Equal(t, tt.want, res.Status)
			assert.Equal(t, tt.age, res.AgeDays)
		})
	}
}

func TestStatusAt_WarningsOnStaleAndExpired(t *testing.T) {
	cfg := Default()
	assert.Empty(t, StatusAt(daysAgo(3), cfg, clock).Warning)
	assert.NotEmpty(t, StatusAt(daysAgo(60), cfg, clock).Warning)
	assert.NotEmpty(t, StatusAt(daysAgo(365), cfg, clock).Warning)
}

func TestDecayAt_UnchangedWhileFresh(t *testing.T) {
	cfg := Default()
	for age := 0; age <= cfg.FreshDays; age++ {
		got := DecayAt(0.8, daysAgo(age), cfg, clock)
		assert.InDelta(t, 0.8, got, 1e-9, "age %d", age)
	}
}

func TestDecayAt_MonotonicNonIncreasing(t *testing.T) {
	cfg := Default()
	prev := 1.0
	for age := 0; age <= 400; age += 5 {
		got := DecayAt(0.9, daysAgo(age), cfg, clock)
		assert.LessOrEqual(t, got, prev, "decay must be non-increasing at age %d", age)
		prev = got
	}
}

func TestDecayAt_FloorAndCap(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, 0.1, DecayAt(0.9, daysAgo(3000), cfg, clock), 1e-9, "decay floors at 0.1")
	assert.InDelta(t, 1.0, DecayAt(1.7, daysAgo(1), cfg, clock), 1e-9, "confidence caps at 1.0")
}

func TestShouldRefresh(t *testing.T) {
	cfg := Config{FreshDays: 10, ModerateDays: 30, StaleDays: 60, DecayRate: 0.05}

	tests := []struct {
		name string
		age  int
		want Urgency
	}{
		{"fresh", 5, UrgencyNone},
		{"early moderate", 15, UrgencyLow},
		{"late moderate", 25, UrgencyMedium},
		{"stale", 45, UrgencyHigh},
		{"expired", 90, UrgencyCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := StatusAt(daysAgo(tt.age), cfg, clock)
			assert.Equal(t, tt.want, ShouldRefresh(res, cfg))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	// A zero config is fully usable through defaulting.
	res := StatusAt(daysAgo(5), Config{}, clock)
	assert.Equal(t, StatusFresh, res.Status)

	bad := Config{FreshDays: 20, ModerateDays: 10}
	norm := bad.withDefaults()
	assert.Greater(t, norm.ModerateDays, norm.FreshDays)
	assert.Greater(t, norm.StaleDays, norm.ModerateDays)
}
