// Package gateway gates module invocation on context completeness and
// produces the per-run execution context token carried through every
// downstream stage. Validation failure is a typed result the caller must
// branch on, not an error.
package gateway

import (
	"go.uber.org/zap"

	"brandscope/internal/registry"
	"brandscope/internal/ucr"
)

// MissingDetail pairs a missing section with its human-readable role so
// the UI layer can render an actionable prompt instead of a stack trace.
type MissingDetail struct {
	Section ucr.Section `json:"section"`
	Role    string      `json:"role"`
}

// ValidationResult is the outcome of a module execution check.
type ValidationResult struct {
	IsValid           bool            `json:"is_valid"`
	AvailableSections []ucr.Section   `json:"available_sections"`
	MissingSections   []ucr.Section   `json:"missing_sections,omitempty"`
	MissingDetails    []MissingDetail `json:"missing_details,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
	ContextVersion    string          `json:"context_version"`
}

// Gateway validates module execution against a context record.
type Gateway struct {
	registry *registry.Registry
	log      *zap.Logger
}

// New constructs a gateway over the given contract registry.
func New(reg *registry.Registry, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{registry: reg, log: log}
}

// ValidateModuleExecution checks whether moduleID may run against record.
// Total over its inputs: a nil record simply has no available sections.
func (g *Gateway) ValidateModuleExecution(moduleID string, record *ucr.ContextRecord) ValidationResult {
	available := ucr.AvailableSections(record)
	check := g.registry.CanModuleExecute(moduleID, available)

	result := ValidationResult{
		IsValid:           check.CanExecute,
		AvailableSections: available.Sorted(),
		MissingSections:   check.MissingSections,
		Warnings:          check.Warnings,
		ContextVersion:    ucr.Fingerprint(record),
	}
	for _, s := range check.MissingSections {
		result.MissingDetails = append(result.MissingDetails, MissingDetail{Section: s, Role: s.Role()})
	}

	if !result.IsValid {
		g.log.Debug("module execution blocked",
			zap.String("module", moduleID),
			zap.Any("missing", result.MissingSections),
			zap.Strings("warnings", result.Warnings))
	}
	return result
}

// CreateExecutionContext builds the immutable per-run token for a
// validated module invocation.
func (g *Gateway) CreateExecutionContext(moduleID string, record *ucr.ContextRecord, sectionsUsed []ucr.Section) *ExecutionContext {
	ectx := NewExecutionContext(moduleID, ucr.Fingerprint(record), sectionsUsed)
	g.log.Debug("execution context created",
		zap.String("run_id", ectx.RunID),
		zap.String("module", moduleID),
		zap.String("context_version", ectx.ContextVersion))
	return ectx
}
