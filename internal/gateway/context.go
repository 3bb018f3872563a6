package gateway

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"brandscope/internal/ucr"
)

// ExecutionContext is the per-run token stamped onto all output. It is
// created once per invocation and read-only thereafter except for the
// triggered-rule set, which stages append to through AddTriggeredRule.
type ExecutionContext struct {
	RunID          string        `json:"run_id"`
	ModuleID       string        `json:"module_id"`
	ContextVersion string        `json:"context_version"`
	SectionsUsed   []ucr.Section `json:"sections_used"`
	StartedAt      time.Time     `json:"started_at"`

	mu        sync.Mutex
	triggered []string
	seen      map[string]bool
}

// NewExecutionContext builds an execution context with a fresh run id.
func NewExecutionContext(moduleID, contextVersion string, sectionsUsed []ucr.Section) *ExecutionContext {
	sections := make([]ucr.Section, len(sectionsUsed))
	copy(sections, sectionsUsed)
	return &ExecutionContext{
		RunID:          uuid.NewString(),
		ModuleID:       moduleID,
		ContextVersion: contextVersion,
		SectionsUsed:   sections,
		StartedAt:      time.Now().UTC(),
		seen:           make(map[string]bool),
	}
}

// AddTriggeredRule records that a rule fired during this run. Idempotent:
// a rule id is kept exactly once, in first-trigger order. Safe for
// concurrent use by parallel classification workers.
func (ec *ExecutionContext) AddTriggeredRule(ruleID string) {
	if ruleID == "" {
		return
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.seen[ruleID] {
		return
	}
	ec.seen[ruleID] = true
	ec.triggered = append(ec.triggered, ruleID)
}

// RulesTriggered returns the deduplicated rule ids in first-trigger order.
func (ec *ExecutionContext) RulesTriggered() []string {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	out := make([]string, len(ec.triggered))
	copy(out, ec.triggered)
	return out
}
