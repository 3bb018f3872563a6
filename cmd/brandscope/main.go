// brandscope is the command-line surface over the context-gated analysis
// pipeline: validate a module contract against a context record, run
// gated classification over a provider export, check result freshness,
// and watch a record file for changes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"brandscope/internal/config"
	"brandscope/internal/gateway"
	"brandscope/internal/logging"
	"brandscope/internal/pipeline"
	"brandscope/internal/registry"
	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

var (
	flagConfig  string
	flagContext string
	flagItems   string
	flagModule  string
	flagJSON    bool
)

func main() {
	root := &cobra.Command{
		Use:           "brandscope",
		Short:         "Context-gated brand intelligence analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "pipeline config file (YAML)")
	root.PersistentFlags().StringVarP(&flagContext, "context", "c", "", "context record file (YAML)")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON output")

	root.AddCommand(newValidateCmd(), newClassifyCmd(), newFreshnessCmd(), newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads config, builds the logger and the runner shared by the
// classify-style commands.
func setup() (*config.Config, *zap.Logger, *pipeline.Runner, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	var audit *logging.AuditLog
	if cfg.Audit.Enabled && cfg.Audit.Path != "" {
		audit, err = logging.OpenAuditLog(cfg.Audit.Path)
		if err != nil {
			log.Warn("audit log unavailable", zap.Error(err))
			audit = nil
		}
	}

	gw := gateway.New(registry.Default(), log)
	runner := pipeline.New(cfg, gw, log, audit)
	cleanup := func() {
		_ = audit.Close()
		_ = log.Sync()
	}
	return cfg, log, runner, cleanup, nil
}

// fileStore serves context records from YAML files on disk, standing in
// for the configuration store. The record id is the file path.
type fileStore struct{}

var _ ucr.Store = fileStore{}

func (fileStore) GetContextRecord(_ context.Context, id string) (*ucr.ContextRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("--context is required")
	}
	data, err := os.ReadFile(id)
	if err != nil {
		return nil, fmt.Errorf("read context record: %w", err)
	}
	var record ucr.ContextRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse context record %s: %w", id, err)
	}
	return &record, nil
}

func loadRecord(path string) (*ucr.ContextRecord, error) {
	return fileStore{}.GetContextRecord(context.Background(), path)
}

func loadItems(path string) ([]types.CandidateItem, error) {
	if path == "" {
		return nil, fmt.Errorf("--items is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var items []types.CandidateItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items %s: %w", path, err)
	}
	return items, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
