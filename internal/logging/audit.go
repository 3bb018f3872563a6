package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// RunEvent is one audit record, written as a single JSON line.
type RunEvent struct {
	RunID          string         `json:"run_id"`
	ModuleID       string         `json:"module_id"`
	ContextVersion string         `json:"context_version"`
	SectionsUsed   []string       `json:"sections_used"`
	RulesTriggered []string       `json:"rules_triggered"`
	ItemCounts     map[string]int `json:"item_counts"`
	ExecutedAt     time.Time      `json:"executed_at"`
}

// AuditLog appends run events to a JSONL file. All methods are safe for
// concurrent use. A nil *AuditLog is a valid no-op writer, so callers can
// hold one unconditionally.
type AuditLog struct {
	mu   sync.Mutex
	file *os.File
}

// OpenAuditLog opens (appending) the audit log at path.
func OpenAuditLog(path string) (*AuditLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &AuditLog{file: f}, nil
}

// Record appends one event. Failures are returned but runs treat them as
// advisory; an unwritable audit log never fails a classification run.
func (a *AuditLog) Record(ev RunEvent) error {
	if a == nil {
		return nil
	}
	if ev.ExecutedAt.IsZero() {
		ev.ExecutedAt = time.Now().UTC()
	}
	line, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (a *AuditLog) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}
