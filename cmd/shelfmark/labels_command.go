package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shelfmark/internal/config"
	"shelfmark/internal/label"
)

func newLabelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Render label PNGs for every printable catalog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				_, entries, err := scanAndBuild(cfg, logger)
				if err != nil {
					return err
				}

				builder := label.NewBuilder(cfg, logger)
				rows, err := builder.BuildAll(entries)
				if err != nil {
					return fmt.Errorf("render labels: %w", err)
				}
				if err := builder.WriteInventoryCSV(rows); err != nil {
					return fmt.Errorf("write label inventory: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d labels into %s\n",
					len(rows), cfg.Paths.OutputDir)
				return nil
			})
		},
	}
}
