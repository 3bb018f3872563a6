package gateway

import "time"

// OutputEnvelope is the run-level audit wrapper every module boundary
// returns through. Direct unwrapped returns are a contract violation.
type OutputEnvelope struct {
	Success        bool      `json:"success"`
	Data           any       `json:"data,omitempty"`
	Error          string    `json:"error,omitempty"`
	ModuleID       string    `json:"module_id"`
	ContextVersion string    `json:"context_version"`
	SectionsUsed   []string  `json:"sections_used"`
	RulesTriggered []string  `json:"rules_triggered"`
	ExecutedAt     time.Time `json:"executed_at"`
}

// WrapModuleOutput stamps module output with the run's audit envelope.
// Success requires both a nil error and non-nil data.
func WrapModuleOutput(data any, ectx *ExecutionContext, err error) OutputEnvelope {
	env := OutputEnvelope{
		Success:    err == nil && data != nil,
		Data:       data,
		ExecutedAt: time.Now().UTC(),
	}
	if err != nil {
		env.Error = err.Error()
	}
	if ectx != nil {
		env.ModuleID = ectx.ModuleID
		env.ContextVersion = ectx.ContextVersion
		env.RulesTriggered = ectx.RulesTriggered()
		env.SectionsUsed = make([]string, 0, len(ectx.SectionsUsed))
		for _, s := range ectx.SectionsUsed {
			env.SectionsUsed = append(env.SectionsUsed, string(s))
		}
	}
	return env
}
