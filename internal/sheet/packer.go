// Package sheet partitions ordered label artifacts into printable sheets.
//
// Labels arrive in stable print order and are grouped into sheets either by
// a physical height budget or by a fixed count per sheet. Placement offsets
// and gap-divider midpoints are computed here as geometry facts; drawing is
// the label package's job.
package sheet

import (
	"fmt"
	"log/slog"
)

// Artifact is an opaque, pre-rendered label with known pixel dimensions.
type Artifact struct {
	ID     string
	Path   string
	Width  int
	Height int
}

// Policy decides when the current sheet is closed.
//
// HeightBounded packs labels while the running height (including gaps) stays
// within MaxHeight; FixedCount closes a sheet after every Count labels.
type Policy interface {
	// fits reports whether a label of the given height may join a sheet
	// that currently holds count labels totalling height pixels.
	fits(count, height, next int) bool
	gap() int
	// String names the policy for logs and the print history.
	String() string
}

// HeightBounded packs greedily under a pixel height budget.
type HeightBounded struct {
	MaxHeight int
	Gap       int
}

func (p HeightBounded) fits(count, height, next int) bool {
	if count == 0 {
		// A single label taller than the budget still gets its own sheet.
		return true
	}
	return height+p.Gap+next <= p.MaxHeight
}

func (p HeightBounded) gap() int { return p.Gap }

func (p HeightBounded) String() string {
	return fmt.Sprintf("height-bounded(max=%dpx, gap=%dpx)", p.MaxHeight, p.Gap)
}

// FixedCount puts exactly Count labels on every sheet (the last may be
// partial), ignoring height.
type FixedCount struct {
	Count int
	Gap   int
}

func (p FixedCount) fits(count, height, next int) bool {
	return count < p.Count
}

func (p FixedCount) gap() int { return p.Gap }

func (p FixedCount) String() string {
	return fmt.Sprintf("fixed-count(n=%d, gap=%dpx)", p.Count, p.Gap)
}

// Placement locates one label on one sheet.
type Placement struct {
	SheetIndex int    // 1-based
	Position   int    // 1-based within the sheet
	ID         string
	OffsetY    int // top edge, cumulative heights plus gaps
	Height     int
}

// Sheet is one physical print unit.
type Sheet struct {
	Index       int    // 1-based
	Name        string // sheet_001, zero-padded
	Placements  []Placement
	DividerYs   []int // midpoint of each inter-label gap
	TotalHeight int
}

// LabelCount returns the number of labels on the sheet.
func (s Sheet) LabelCount() int { return len(s.Placements) }

// Result is the outcome of one packing run.
type Result struct {
	Sheets []Sheet
	// Skipped lists identifiers from the stable order that had no artifact.
	Skipped []string
}

// LabelTotal returns the number of labels placed across all sheets.
func (r Result) LabelTotal() int {
	total := 0
	for _, s := range r.Sheets {
		total += s.LabelCount()
	}
	return total
}

// Packer groups artifacts into sheets under a policy.
type Packer struct {
	policy Policy
	logger *slog.Logger
}

// NewPacker returns a Packer using the given policy.
func NewPacker(policy Policy, logger *slog.Logger) *Packer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Packer{policy: policy, logger: logger}
}

// Pack partitions the stable order into sheets. Identifiers without an
// artifact are skipped with a warning and never block the rest; a trailing
// partial sheet is always flushed.
func (p *Packer) Pack(order []string, artifacts map[string]Artifact) Result {
	var result Result
	gap := p.policy.gap()

	var current Sheet
	flush := func() {
		if current.LabelCount() == 0 {
			return
		}
		current.Index = len(result.Sheets) + 1
		current.Name = fmt.Sprintf("sheet_%03d", current.Index)
		for i := range current.Placements {
			current.Placements[i].SheetIndex = current.Index
		}
		result.Sheets = append(result.Sheets, current)
		current = Sheet{}
	}

	for _, id := range order {
		art, ok := artifacts[id]
		if !ok {
			p.logger.Warn("no artifact for identifier, skipping", "id", id)
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if !p.policy.fits(current.LabelCount(), current.TotalHeight, art.Height) {
			flush()
		}

		y := current.TotalHeight
		if current.LabelCount() > 0 {
			current.DividerYs = append(current.DividerYs, y+gap/2)
			y += gap
		}
		current.Placements = append(current.Placements, Placement{
			Position: current.LabelCount() + 1,
			ID:       id,
			OffsetY:  y,
			Height:   art.Height,
		})
		current.TotalHeight = y + art.Height
	}
	flush()

	return result
}
