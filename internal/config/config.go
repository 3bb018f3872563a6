// Package config loads the pipeline configuration: scoring thresholds and
// curves, vertical capability presets, per-module freshness presets, and
// runtime settings. Everything tunable is data here; nothing in the
// pipeline requires a code change to adjust a weight or add a vertical.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"brandscope/internal/freshness"
	"brandscope/internal/scoring"
	"brandscope/internal/ucr"
)

// FreshnessConfig carries the default decay preset plus per-module
// overrides keyed by module id.
type FreshnessConfig struct {
	Default freshness.Config            `yaml:"default"`
	Modules map[string]freshness.Config `yaml:"modules,omitempty"`
}

// AuditConfig controls the run audit log. Disabled by default; a write
// failure is never fatal to a run.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the full pipeline configuration.
type Config struct {
	// Workers bounds the parallel classification workers. 0 or 1 runs
	// the pipeline strictly sequentially.
	Workers int `yaml:"workers"`

	Scoring scoring.Config `yaml:"scoring"`

	// AvoidPenalty is subtracted per matching strategic avoid-list term.
	AvoidPenalty float64 `yaml:"avoid_penalty"`

	// IrrelevantEntities extends the built-in entity-gate token list.
	IrrelevantEntities []string `yaml:"irrelevant_entities,omitempty"`

	// Verticals maps an industry name to a capability model preset, used
	// when the governance section supplies no model.
	Verticals map[string]ucr.CapabilityModel `yaml:"verticals,omitempty"`

	Freshness FreshnessConfig `yaml:"freshness"`
	Audit     AuditConfig     `yaml:"audit"`
	Debug     bool            `yaml:"debug"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		Workers:      4,
		AvoidPenalty: 0.2,
		Freshness:    FreshnessConfig{Default: freshness.Default()},
		Verticals: map[string]ucr.CapabilityModel{
			"footwear": {
				Base: 0.5,
				Boosters: []ucr.ModelRule{
					{Name: "recovery", Terms: []string{"recovery", "comfort", "cushioned", "arch support"}, Weight: 0.2},
					{Name: "transactional", Terms: []string{"buy", "price", "sale", "near me"}, Weight: 0.1},
				},
				Penalties: []ucr.ModelRule{
					{Name: "performance_racing", Terms: []string{"marathon", "racing", "track spikes"}, Weight: 0.2},
				},
			},
			"skincare": {
				Base: 0.5,
				Boosters: []ucr.ModelRule{
					{Name: "ingredient", Terms: []string{"retinol", "niacinamide", "spf", "hyaluronic"}, Weight: 0.15},
					{Name: "routine", Terms: []string{"routine", "morning", "night"}, Weight: 0.1},
				},
				Penalties: []ucr.ModelRule{
					{Name: "medical", Terms: []string{"prescription", "dermatologist only"}, Weight: 0.25},
				},
			},
		},
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	if cfg.AvoidPenalty <= 0 {
		cfg.AvoidPenalty = 0.2
	}
	return cfg, nil
}

// FreshnessFor returns the decay preset for a module, falling back to the
// default preset.
func (c *Config) FreshnessFor(moduleID string) freshness.Config {
	if preset, ok := c.Freshness.Modules[moduleID]; ok {
		return preset
	}
	return c.Freshness.Default
}
