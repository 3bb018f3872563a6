package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run classification whenever the context record file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, runner, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := loadItems(flagItems)
			if err != nil {
				return err
			}
			if flagContext == "" {
				return fmt.Errorf("--context is required")
			}

			run := func() {
				record, err := loadRecord(flagContext)
				if err != nil {
					log.Warn("context record reload failed", zap.Error(err))
					return
				}
				validation, envelope := runner.Execute(cmd.Context(), flagModule, record, items)
				if !validation.IsValid {
					fmt.Printf("context %s: module %s blocked, missing %v\n",
						validation.ContextVersion, flagModule, validation.MissingSections)
					return
				}
				printSummary(envelope.Data)
				fmt.Printf("-- context %s at %s\n", envelope.ContextVersion, envelope.ExecutedAt.Format(time.TimeOnly))
			}
			run()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("init watcher: %w", err)
			}
			defer watcher.Close()
			// Watch the directory: editors replace files on save, which
			// drops a watch registered on the file itself.
			if err := watcher.Add(filepath.Dir(flagContext)); err != nil {
				return fmt.Errorf("watch %s: %w", flagContext, err)
			}

			target := filepath.Clean(flagContext)
			var debounce *time.Timer
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != target {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if debounce != nil {
						debounce.Stop()
					}
					debounce = time.AfterFunc(200*time.Millisecond, run)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Warn("watcher error", zap.Error(err))
				}
			}
		},
	}
	cmd.Flags().StringVarP(&flagModule, "module", "m", "keyword_opportunities", "analysis module id")
	cmd.Flags().StringVarP(&flagItems, "items", "i", "", "candidate items file (JSON array)")
	return cmd
}
