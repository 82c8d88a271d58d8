package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shelfmark/internal/printlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var identifierFlag string
	var runFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded print runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := printlog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open print history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			if identifierFlag != "" {
				history, err := store.FindIdentifier(cmd.Context(), identifierFlag)
				if err != nil {
					return err
				}
				if len(history) == 0 {
					fmt.Fprintf(out, "%s has never been printed\n", identifierFlag)
					return nil
				}
				rows := make([][]string, 0, len(history))
				for _, h := range history {
					rows = append(rows, []string{
						formatTimestamp(h.StartedAt), h.RunID, h.Sheet, strconv.Itoa(h.Position),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Started", "Run", "Sheet", "Position"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			}

			if runFlag != "" {
				placements, err := store.Placements(cmd.Context(), runFlag)
				if err != nil {
					return err
				}
				if len(placements) == 0 {
					fmt.Fprintf(out, "run %s has no recorded placements\n", runFlag)
					return nil
				}
				rows := make([][]string, 0, len(placements))
				for _, pl := range placements {
					rows = append(rows, []string{pl.Sheet, strconv.Itoa(pl.Position), pl.Identifier})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Sheet", "Position", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			}

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No print runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					formatTimestamp(run.StartedAt),
					run.ID,
					run.Policy,
					strconv.Itoa(run.SheetCount),
					strconv.Itoa(run.LabelCount),
					strconv.Itoa(run.SkippedCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Run", "Policy", "Sheets", "Labels", "Skipped"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().StringVar(&identifierFlag, "id", "", "Show placements of one identifier across runs")
	cmd.Flags().StringVar(&runFlag, "run", "", "Show the placements of one run")
	return cmd
}
