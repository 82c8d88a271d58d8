package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shelfmark/internal/config"
	"shelfmark/internal/label"
	"shelfmark/internal/printlog"
	"shelfmark/internal/sequence"
	"shelfmark/internal/sheet"
)

func newSheetsCommand(ctx *commandContext) *cobra.Command {
	var skipRender bool

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Pack rendered labels into print sheets in stable order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				startedAt := time.Now()
				_, entries, err := scanAndBuild(cfg, logger)
				if err != nil {
					return err
				}

				if !skipRender {
					builder := label.NewBuilder(cfg, logger)
					rows, err := builder.BuildAll(entries)
					if err != nil {
						return fmt.Errorf("render labels: %w", err)
					}
					if err := builder.WriteInventoryCSV(rows); err != nil {
						return fmt.Errorf("write label inventory: %w", err)
					}
				}

				sequencer := sequence.New(cfg.OrderFilePath(), logger)
				order, err := sequencer.Update(printableIDs(entries))
				if err != nil {
					return fmt.Errorf("update stable order: %w", err)
				}

				artifacts := label.LoadArtifacts(cfg.Paths.OutputDir, order, logger)
				policy := sheetPolicy(cfg)
				result := sheet.NewPacker(policy, logger).Pack(order, artifacts)

				if err := sheet.WriteSheetsCSV(cfg.Paths.OutputDir, result.Sheets); err != nil {
					return fmt.Errorf("write sheets csv: %w", err)
				}
				if err := sheet.WritePlacementsCSV(cfg.Paths.OutputDir, result.Sheets); err != nil {
					return fmt.Errorf("write placements csv: %w", err)
				}
				if _, err := label.NewComposer(cfg, logger).ComposeAll(result.Sheets, artifacts); err != nil {
					return fmt.Errorf("compose sheets: %w", err)
				}

				if err := recordRun(cmd.Context(), cfg, policy, result, startedAt); err != nil {
					return fmt.Errorf("record print run: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderSheetTable(result))
				fmt.Fprintf(out, "Packed %d labels onto %d sheets (%s), %d skipped\n",
					result.LabelTotal(), len(result.Sheets), policy, len(result.Skipped))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipRender, "skip-render", false, "Reuse existing label PNGs instead of re-rendering")
	return cmd
}

func sheetPolicy(cfg *config.Config) sheet.Policy {
	if cfg.Sheet.Policy == "count" {
		return sheet.FixedCount{Count: cfg.Sheet.FixedCount, Gap: cfg.Sheet.LabelGapPx}
	}
	return sheet.HeightBounded{MaxHeight: cfg.MaxSheetHeightPx(), Gap: cfg.Sheet.LabelGapPx}
}

func recordRun(ctx context.Context, cfg *config.Config, policy sheet.Policy, result sheet.Result, startedAt time.Time) error {
	store, err := printlog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run := printlog.Run{
		ID:           uuid.NewString(),
		StartedAt:    startedAt,
		Policy:       policy.String(),
		SheetCount:   len(result.Sheets),
		LabelCount:   result.LabelTotal(),
		SkippedCount: len(result.Skipped),
	}
	var placements []printlog.PlacementRecord
	for _, s := range result.Sheets {
		for _, pl := range s.Placements {
			placements = append(placements, printlog.PlacementRecord{
				Sheet:      s.Name,
				Position:   pl.Position,
				Identifier: pl.ID,
			})
		}
	}
	return store.RecordRun(ctx, run, placements)
}

func renderSheetTable(result sheet.Result) string {
	rows := make([][]string, 0, len(result.Sheets))
	for _, s := range result.Sheets {
		rows = append(rows, []string{
			s.Name, strconv.Itoa(s.LabelCount()), strconv.Itoa(s.TotalHeight),
		})
	}
	return renderTable(
		[]string{"Sheet", "Labels", "Height px"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
