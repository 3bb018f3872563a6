// Package logging wires zap for the pipeline and provides the append-only
// run audit log: one JSON line per pipeline run, recording the module,
// context version, sections used, rules triggered and per-disposition
// counts for later correlation.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Debug mode switches to the development
// config with debug-level output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	return zap.NewProduction()
}
