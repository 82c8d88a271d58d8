package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shelfmark/internal/config"
	"shelfmark/internal/label"
	"shelfmark/internal/registry"
	"shelfmark/internal/registrypage"
	"shelfmark/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild registry, labels, and page whenever the catalog changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				watchCfg := watch.DefaultConfig(cfg.Paths.CatalogDir)
				watchCfg.DebounceDur = debounce
				watchCfg.Logger = logger

				watcher, err := watch.New(watchCfg)
				if err != nil {
					return err
				}
				defer func() { _ = watcher.Stop() }()

				changes, err := watcher.Start()
				if err != nil {
					return fmt.Errorf("watch %s: %w", cfg.Paths.CatalogDir, err)
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (debounce %s)\n",
					cfg.Paths.CatalogDir, watchCfg.DebounceDur)

				// Initial build so the outputs reflect the tree as found.
				if err := rebuild(cfg, logger); err != nil {
					return err
				}

				for {
					select {
					case <-changes:
						if err := rebuild(cfg, logger); err != nil {
							logger.Error("rebuild failed", "error", err)
						}
					case <-runCtx.Done():
						fmt.Fprintln(cmd.OutOrStdout(), "Watch stopped")
						return nil
					}
				}
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", time.Second, "Delay before rebuilding after a change")
	return cmd
}

func rebuild(cfg *config.Config, logger *slog.Logger) error {
	started := time.Now()
	snapshot, entries, err := scanAndBuild(cfg, logger)
	if err != nil {
		return err
	}
	if err := registry.WriteSnapshots(cfg.Paths.OutputDir, snapshot); err != nil {
		return fmt.Errorf("write registry snapshots: %w", err)
	}

	builder := label.NewBuilder(cfg, logger)
	rows, err := builder.BuildAll(entries)
	if err != nil {
		return fmt.Errorf("render labels: %w", err)
	}
	if err := builder.WriteInventoryCSV(rows); err != nil {
		return fmt.Errorf("write label inventory: %w", err)
	}

	if _, err := registrypage.Write(cfg, snapshot.Simplify()); err != nil {
		return err
	}

	logger.Info("rebuild complete",
		"identifiers", len(snapshot.IDs),
		"labels", len(rows),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}
