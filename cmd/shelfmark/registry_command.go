package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"shelfmark/internal/config"
	"shelfmark/internal/registry"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Rebuild the identifier registry from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				snapshot, _, err := scanAndBuild(cfg, logger)
				if err != nil {
					return err
				}
				if err := registry.WriteSnapshots(cfg.Paths.OutputDir, snapshot); err != nil {
					return fmt.Errorf("write registry snapshots: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderCategoryTable(snapshot))
				fmt.Fprintf(out, "Registry written to %s (%d identifiers, %d warnings)\n",
					cfg.Paths.OutputDir, len(snapshot.IDs), len(snapshot.Warnings))
				for _, warning := range snapshot.Warnings {
					fmt.Fprintf(out, "warning: %s\n", warning)
				}
				return nil
			})
		},
	}
}

func renderCategoryTable(snapshot registry.Snapshot) string {
	codes := make([]string, 0, len(snapshot.Categories))
	for code := range snapshot.Categories {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		cat := snapshot.Categories[code]
		next := "full"
		if cat.NextAny != nil {
			next = *cat.NextAny
		}
		rows = append(rows, []string{
			code, cat.Title, strconv.Itoa(cat.Count), next, strconv.Itoa(len(cat.NextByFamily)),
		})
	}
	return renderTable(
		[]string{"Code", "Title", "Used", "Next", "Families"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	)
}
