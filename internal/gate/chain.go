package gate

import (
	"time"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Verdict is the gate chain's outcome for a single item. When Blocked is
// true the item is OutOfPlay with the given reason and no later stage runs.
type Verdict struct {
	Blocked      bool
	Reason       string
	OutsideFence bool
	Trace        []types.TraceEntry
}

// Options tune chain construction.
type Options struct {
	// Now anchors exclusion-expiry checks; zero means time.Now. The chain
	// snapshots it once so a run's expiry decisions are self-consistent.
	Now time.Time
	// IrrelevantEntities extends the built-in irrelevant-entity tokens.
	IrrelevantEntities []string
}

// Chain is the fixed-order gate sequence. Construct once per run from a
// context record snapshot; Evaluate is safe for concurrent use.
type Chain struct {
	negative *negativeScopeGate
	entity   *entityGate
	fence    *fenceGate
}

// NewChain builds the chain for a record.
func NewChain(record *ucr.ContextRecord, opts Options) *Chain {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	var ns *ucr.NegativeScope
	var cat *ucr.CategoryDefinition
	if record != nil {
		ns = record.NegativeScope
		cat = record.Category
	}
	return &Chain{
		negative: newNegativeScopeGate(ns, now),
		entity:   newEntityGate(record, opts.IrrelevantEntities),
		fence:    newFenceGate(cat),
	}
}

// Evaluate runs the gates in order, fail-fast per item. Every gate that
// runs appends exactly one trace entry, fired or not, so the trace is the
// literal execution log.
func (c *Chain) Evaluate(item types.CandidateItem) Verdict {
	var v Verdict

	entry, fired := c.negative.check(item)
	v.Trace = append(v.Trace, entry)
	if fired {
		v.Blocked = true
		v.Reason = entry.Reason
		return v
	}

	entry, fired = c.entity.check(item)
	v.Trace = append(v.Trace, entry)
	if fired {
		v.Blocked = true
		v.Reason = entry.Reason
		return v
	}

	entry, outside := c.fence.check(item)
	v.Trace = append(v.Trace, entry)
	v.OutsideFence = outside
	return v
}
