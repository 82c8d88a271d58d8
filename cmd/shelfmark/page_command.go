package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shelfmark/internal/config"
	"shelfmark/internal/registry"
	"shelfmark/internal/registrypage"
)

func newPageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "page",
		Short: "Write the registry report page for the documentation site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				simple, err := registry.LoadSimpleSnapshot(cfg.Paths.OutputDir)
				if err != nil {
					logger.Info("no usable registry snapshot, rebuilding", "error", err)
					snapshot, _, buildErr := scanAndBuild(cfg, logger)
					if buildErr != nil {
						return buildErr
					}
					if err := registry.WriteSnapshots(cfg.Paths.OutputDir, snapshot); err != nil {
						return fmt.Errorf("write registry snapshots: %w", err)
					}
					simple = snapshot.Simplify()
				}

				path, err := registrypage.Write(cfg, simple)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registry page written to %s\n", path)
				return nil
			})
		},
	}
}
