package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	"shelfmark/internal/fileutil"
)

const (
	// SheetsCSVName is the sheet metadata table file name.
	SheetsCSVName = "sheets.csv"
	// PlacementsCSVName is the per-label placement table file name.
	PlacementsCSVName = "placements.csv"
)

// WriteSheetsCSV persists the per-sheet metadata table
// (sheet, height_px, labels) under dir.
func WriteSheetsCSV(dir string, sheets []Sheet) error {
	rows := [][]string{{"sheet", "height_px", "labels"}}
	for _, s := range sheets {
		rows = append(rows, []string{
			s.Name + ".png",
			strconv.Itoa(s.TotalHeight),
			strconv.Itoa(s.LabelCount()),
		})
	}
	return writeCSV(filepath.Join(dir, SheetsCSVName), rows)
}

// WritePlacementsCSV persists the per-label placement table
// (sheet, position, id) under dir.
func WritePlacementsCSV(dir string, sheets []Sheet) error {
	rows := [][]string{{"sheet", "position", "id"}}
	for _, s := range sheets {
		for _, pl := range s.Placements {
			rows = append(rows, []string{
				s.Name + ".png",
				strconv.Itoa(pl.Position),
				pl.ID,
			})
		}
	}
	return writeCSV(filepath.Join(dir, PlacementsCSVName), rows)
}

func writeCSV(path string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := fileutil.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
