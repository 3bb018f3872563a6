package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"brandscope/internal/config"
	"brandscope/internal/freshness"
)

func newFreshnessCmd() *cobra.Command {
	var (
		flagTimestamp  string
		flagConfidence float64
	)
	cmd := &cobra.Command{
		Use:   "freshness",
		Short: "Report freshness status and decayed confidence for a result timestamp",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			ts, err := time.Parse(time.RFC3339, flagTimestamp)
			if err != nil {
				return fmt.Errorf("parse --timestamp: %w", err)
			}

			preset := cfg.FreshnessFor(flagModule)
			result := freshness.CalculateFreshnessStatus(ts, preset)
			decayed := freshness.ApplyTimeDecay(flagConfidence, ts, preset)
			urgency := freshness.ShouldRefresh(result, preset)

			if flagJSON {
				return printJSON(map[string]any{
					"status":             result.Status,
					"age_days":           result.AgeDays,
					"warning":            result.Warning,
					"decayed_confidence": decayed,
					"refresh_urgency":    urgency,
				})
			}
			fmt.Printf("status=%s age=%dd confidence=%.2f->%.2f refresh=%s\n",
				result.Status, result.AgeDays, flagConfidence, decayed, urgency)
			if result.Warning != "" {
				fmt.Println("warning:", result.Warning)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagModule, "module", "m", "keyword_opportunities", "analysis module id")
	cmd.Flags().StringVarP(&flagTimestamp, "timestamp", "t", "", "data timestamp (RFC3339)")
	cmd.Flags().Float64Var(&flagConfidence, "confidence", 1.0, "base confidence to decay")
	_ = cmd.MarkFlagRequired("timestamp")
	return cmd
}
