// Package pipeline runs the context-gated classification: gate chain,
// intent and capability classification, and opportunity scoring, in one
// synchronous pass over a bounded in-memory batch. Given identical items,
// record and execution context the output is byte-identical, including
// per-item trace order.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"brandscope/internal/classify"
	"brandscope/internal/config"
	"brandscope/internal/gate"
	"brandscope/internal/gateway"
	"brandscope/internal/logging"
	"brandscope/internal/scoring"
	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Runner executes gated classification runs.
type Runner struct {
	cfg   *config.Config
	gw    *gateway.Gateway
	log   *zap.Logger
	audit *logging.AuditLog
}

// New constructs a runner. audit may be nil to disable audit logging.
func New(cfg *config.Config, gw *gateway.Gateway, log *zap.Logger, audit *logging.AuditLog) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, gw: gw, log: log, audit: audit}
}

// stages bundles the per-run evaluators, all built once from the record
// snapshot and read-only afterwards.
type stages struct {
	chain      *gate.Chain
	intents    *classify.IntentClassifier
	capability *classify.CapabilityScorer
	engine     *scoring.Engine
}

func (r *Runner) buildStages(record *ucr.ContextRecord, ectx *gateway.ExecutionContext) *stages {
	// Expiry decisions anchor to the run's start time so identical
	// execution contexts reproduce identical gate behavior.
	chain := gate.NewChain(record, gate.Options{
		Now:                ectx.StartedAt,
		IrrelevantEntities: r.cfg.IrrelevantEntities,
	})

	var avoid []string
	if record != nil && record.Strategy != nil {
		avoid = record.Strategy.AvoidList
	}
	capability := classify.NewCapabilityScorer(
		classify.ResolveModel(record, r.cfg.Verticals), avoid, r.cfg.AvoidPenalty)

	// Section H thresholds override the configured scoring defaults
	// field by field.
	sc := r.cfg.Scoring
	if record != nil && record.Governance != nil {
		t := record.Governance.Thresholds
		if t.Pass > 0 {
			sc.Thresholds.Pass = t.Pass
		}
		if t.Review > 0 {
			sc.Thresholds.Review = t.Review
		}
		if t.DifficultyWeight > 0 {
			sc.Thresholds.DifficultyWeight = t.DifficultyWeight
		}
		if t.PositionWeight > 0 {
			sc.Thresholds.PositionWeight = t.PositionWeight
		}
	}

	return &stages{
		chain:      chain,
		intents:    classify.NewIntentClassifier(record),
		capability: capability,
		engine:     scoring.NewEngine(sc),
	}
}

// classifyOne recomputes a single item from scratch: gate chain first,
// then classification and scoring only for items no hard gate disposed.
func (s *stages) classifyOne(item types.CandidateItem) types.ClassifiedItem {
	out := types.ClassifiedItem{CandidateItem: item}

	verdict := s.chain.Evaluate(item)
	out.Trace = verdict.Trace
	out.OutsideFence = verdict.OutsideFence

	if verdict.Blocked {
		out.Disposition = types.DispositionOutOfPlay
		out.ReasonCodes = []string{verdict.Reason}
		return out
	}

	intent, intentEntry := s.intents.Classify(item.Keyword)
	out.Intent = intent
	out.Trace = append(out.Trace, intentEntry)

	capability, capTrace := s.capability.Score(item)
	out.CapabilityScore = capability
	out.Trace = append(out.Trace, capTrace...)

	result := s.engine.Evaluate(item, intent, capability)
	out.OpportunityScore = result.OpportunityScore
	out.Disposition = result.Disposition
	out.Confidence = result.Confidence
	out.Trace = append(out.Trace, result.Trace...)

	if result.ReasonCode != "" {
		out.ReasonCodes = append(out.ReasonCodes, result.ReasonCode)
	}
	if verdict.OutsideFence {
		out.ReasonCodes = append(out.ReasonCodes, types.ReasonOutsideFence)
	}
	return out
}

// RunGatedClassification is the main entry point: one full pass over the
// item batch under the given execution context. Output order matches
// input order. Items are independent, so classification may fan out to
// bounded workers; every other effect of the run stays deterministic.
func (r *Runner) RunGatedClassification(ctx context.Context, items []types.CandidateItem, record *ucr.ContextRecord, ectx *gateway.ExecutionContext) ([]types.ClassifiedItem, error) {
	if ectx == nil {
		return nil, fmt.Errorf("execution context required")
	}

	s := r.buildStages(record, ectx)
	results := make([]types.ClassifiedItem, len(items))

	workers := r.cfg.Workers
	if workers <= 1 || len(items) < 2 {
		for i, item := range items {
			results[i] = s.classifyOne(item)
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, item := range items {
			i, item := i, item
			g.Go(func() error {
				results[i] = s.classifyOne(item)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// Triggered rules are collected sequentially in item order so the
	// run envelope's rule set has a deterministic first-trigger order
	// regardless of worker scheduling.
	counts := map[string]int{}
	for _, res := range results {
		counts[string(res.Disposition)]++
		for _, entry := range res.Trace {
			if entry.Severity != types.SeverityInfo {
				ectx.AddTriggeredRule(entry.RuleID)
			}
		}
	}

	r.log.Info("classification run complete",
		zap.String("run_id", ectx.RunID),
		zap.String("module", ectx.ModuleID),
		zap.Int("items", len(items)),
		zap.Int("pass", counts[string(types.DispositionPass)]),
		zap.Int("review", counts[string(types.DispositionReview)]),
		zap.Int("out_of_play", counts[string(types.DispositionOutOfPlay)]))

	if err := r.audit.Record(logging.RunEvent{
		RunID:          ectx.RunID,
		ModuleID:       ectx.ModuleID,
		ContextVersion: ectx.ContextVersion,
		SectionsUsed:   sectionStrings(ectx.SectionsUsed),
		RulesTriggered: ectx.RulesTriggered(),
		ItemCounts:     counts,
	}); err != nil {
		r.log.Warn("audit log write failed", zap.Error(err))
	}

	return results, nil
}

// Execute validates moduleID against record, runs classification and
// returns everything through the output envelope. This is the composed
// module boundary the CLI and collaborating modules call.
func (r *Runner) Execute(ctx context.Context, moduleID string, record *ucr.ContextRecord, items []types.CandidateItem) (gateway.ValidationResult, gateway.OutputEnvelope) {
	validation := r.gw.ValidateModuleExecution(moduleID, record)
	if !validation.IsValid {
		return validation, gateway.WrapModuleOutput(nil, nil,
			fmt.Errorf("module %s cannot execute: missing sections %v", moduleID, validation.MissingSections))
	}

	ectx := r.gw.CreateExecutionContext(moduleID, record, validation.AvailableSections)
	classified, err := r.RunGatedClassification(ctx, items, record, ectx)
	if err != nil {
		return validation, gateway.WrapModuleOutput(nil, ectx, err)
	}
	return validation, gateway.WrapModuleOutput(classified, ectx, nil)
}

func sectionStrings(sections []ucr.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, string(s))
	}
	return out
}
