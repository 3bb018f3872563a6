package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"brandscope/internal/types"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a module's contract is satisfied by a context record",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, runner, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			record, err := loadRecord(flagContext)
			if err != nil {
				return err
			}
			validation, _ := runner.Execute(cmd.Context(), flagModule, record, nil)

			if flagJSON {
				return printJSON(validation)
			}
			if validation.IsValid {
				fmt.Printf("module %s can execute (context %s)\n", flagModule, validation.ContextVersion)
			} else {
				fmt.Printf("module %s cannot execute\n", flagModule)
				for _, d := range validation.MissingDetails {
					fmt.Printf("  missing section %s: %s\n", d.Section, d.Role)
				}
			}
			for _, w := range validation.Warnings {
				fmt.Println("  warning:", w)
			}
			if !validation.IsValid {
				os.Exit(2)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagModule, "module", "m", "keyword_opportunities", "analysis module id")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Run gated classification over a provider item export",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, runner, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			record, err := loadRecord(flagContext)
			if err != nil {
				return err
			}
			items, err := loadItems(flagItems)
			if err != nil {
				return err
			}

			validation, envelope := runner.Execute(cmd.Context(), flagModule, record, items)
			if !validation.IsValid {
				for _, d := range validation.MissingDetails {
					fmt.Fprintf(os.Stderr, "missing section %s: %s\n", d.Section, d.Role)
				}
				return fmt.Errorf("module %s cannot execute against this context record", flagModule)
			}

			if flagJSON {
				return printJSON(envelope)
			}
			printSummary(envelope.Data)
			fmt.Printf("\ncontext %s, rules triggered: %v\n", envelope.ContextVersion, envelope.RulesTriggered)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagModule, "module", "m", "keyword_opportunities", "analysis module id")
	cmd.Flags().StringVarP(&flagItems, "items", "i", "", "candidate items file (JSON array)")
	return cmd
}

func printSummary(data any) {
	classified, ok := data.([]types.ClassifiedItem)
	if !ok {
		fmt.Println("no classified items")
		return
	}
	for _, item := range classified {
		marker := " "
		if item.OutsideFence {
			marker = "~"
		}
		fmt.Printf("%-12s %s %-40q intent=%-16s cap=%.2f opp=%.1f %s\n",
			item.Disposition, marker, item.Keyword, item.Intent,
			item.CapabilityScore, item.OpportunityScore, item.Confidence)
	}
}
