package sheet

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func artifactsOf(heights map[string]int) map[string]Artifact {
	arts := make(map[string]Artifact, len(heights))
	for id, h := range heights {
		arts[id] = Artifact{ID: id, Width: 384, Height: h}
	}
	return arts
}

func TestHeightBoundedPacking(t *testing.T) {
	packer := NewPacker(HeightBounded{MaxHeight: 250, Gap: 10}, nil)
	order := []string{"A", "B", "C"}
	result := packer.Pack(order, artifactsOf(map[string]int{"A": 100, "B": 100, "C": 100}))

	if len(result.Sheets) != 2 {
		t.Fatalf("sheets = %d", len(result.Sheets))
	}
	first := result.Sheets[0]
	// 100 + 10 + 100 = 210 fits; adding the third would need 320.
	if first.LabelCount() != 2 || first.TotalHeight != 210 {
		t.Fatalf("first sheet = %+v", first)
	}
	second := result.Sheets[1]
	if second.LabelCount() != 1 || second.Placements[0].ID != "C" {
		t.Fatalf("second sheet = %+v", second)
	}
}

func TestHeightBoundedOversizedLabel(t *testing.T) {
	packer := NewPacker(HeightBounded{MaxHeight: 200, Gap: 8}, nil)
	result := packer.Pack([]string{"A", "BIG", "B"}, artifactsOf(map[string]int{
		"A": 150, "BIG": 900, "B": 150,
	}))

	if len(result.Sheets) != 3 {
		t.Fatalf("sheets = %d", len(result.Sheets))
	}
	big := result.Sheets[1]
	if big.LabelCount() != 1 || big.Placements[0].ID != "BIG" || big.TotalHeight != 900 {
		t.Fatalf("oversized label not alone on its own sheet: %+v", big)
	}
}

func TestFixedCountPacking(t *testing.T) {
	packer := NewPacker(FixedCount{Count: 4, Gap: 8}, nil)
	order := []string{"A", "B", "C", "D", "E", "F"}
	heights := map[string]int{}
	for _, id := range order {
		heights[id] = 500 // would overflow any height budget; count ignores it
	}
	result := packer.Pack(order, artifactsOf(heights))

	if len(result.Sheets) != 2 {
		t.Fatalf("sheets = %d", len(result.Sheets))
	}
	if result.Sheets[0].LabelCount() != 4 {
		t.Fatalf("first sheet labels = %d", result.Sheets[0].LabelCount())
	}
	// Trailing partial sheet is flushed, never discarded.
	if result.Sheets[1].LabelCount() != 2 {
		t.Fatalf("second sheet labels = %d", result.Sheets[1].LabelCount())
	}
}

func TestMissingArtifactSkipped(t *testing.T) {
	packer := NewPacker(HeightBounded{MaxHeight: 1000, Gap: 8}, nil)
	result := packer.Pack([]string{"A", "GHOST", "B"}, artifactsOf(map[string]int{
		"A": 100, "B": 100,
	}))

	if len(result.Skipped) != 1 || result.Skipped[0] != "GHOST" {
		t.Fatalf("skipped = %v", result.Skipped)
	}
	if result.LabelTotal() != 2 {
		t.Fatalf("label total = %d", result.LabelTotal())
	}
}

func TestOffsetsAndDividers(t *testing.T) {
	packer := NewPacker(HeightBounded{MaxHeight: 1000, Gap: 8}, nil)
	result := packer.Pack([]string{"A", "B", "C"}, artifactsOf(map[string]int{
		"A": 100, "B": 50, "C": 20,
	}))

	s := result.Sheets[0]
	wantOffsets := []int{0, 108, 166}
	for i, pl := range s.Placements {
		if pl.OffsetY != wantOffsets[i] {
			t.Fatalf("offset[%d] = %d, want %d", i, pl.OffsetY, wantOffsets[i])
		}
		if pl.Position != i+1 {
			t.Fatalf("position[%d] = %d", i, pl.Position)
		}
	}
	// Divider midpoints: gap after A spans [100,108) -> 104; after B [158,166) -> 162.
	wantDividers := []int{104, 162}
	if len(s.DividerYs) != 2 {
		t.Fatalf("dividers = %v", s.DividerYs)
	}
	for i, y := range s.DividerYs {
		if y != wantDividers[i] {
			t.Fatalf("divider[%d] = %d, want %d", i, y, wantDividers[i])
		}
	}
	if s.TotalHeight != 186 {
		t.Fatalf("total height = %d", s.TotalHeight)
	}
}

func TestSheetNaming(t *testing.T) {
	packer := NewPacker(FixedCount{Count: 1, Gap: 0}, nil)
	result := packer.Pack([]string{"A", "B"}, artifactsOf(map[string]int{"A": 10, "B": 10}))
	if result.Sheets[0].Name != "sheet_001" || result.Sheets[1].Name != "sheet_002" {
		t.Fatalf("names = %q, %q", result.Sheets[0].Name, result.Sheets[1].Name)
	}
	if result.Sheets[1].Placements[0].SheetIndex != 2 {
		t.Fatalf("placement sheet index = %d", result.Sheets[1].Placements[0].SheetIndex)
	}
}

// Properties shared by both policies: nothing with an artifact is dropped,
// order is preserved, and height-bounded sheets respect the budget unless
// they hold a single oversized label.
func TestPackProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		order := make([]string, n)
		arts := make(map[string]Artifact, n)
		for i := range order {
			id := fmt.Sprintf("ID%03d", i)
			order[i] = id
			if rapid.Float64Range(0, 1).Draw(t, "haveArtifact") > 0.1 {
				arts[id] = Artifact{ID: id, Width: 384, Height: rapid.IntRange(1, 400).Draw(t, "height")}
			}
		}

		var policy Policy
		maxHeight := rapid.IntRange(50, 600).Draw(t, "maxHeight")
		gap := rapid.IntRange(0, 16).Draw(t, "gap")
		if rapid.Bool().Draw(t, "heightPolicy") {
			policy = HeightBounded{MaxHeight: maxHeight, Gap: gap}
		} else {
			policy = FixedCount{Count: rapid.IntRange(1, 10).Draw(t, "count"), Gap: gap}
		}

		result := NewPacker(policy, nil).Pack(order, arts)

		if result.LabelTotal()+len(result.Skipped) != len(order) {
			t.Fatalf("labels %d + skipped %d != order %d",
				result.LabelTotal(), len(result.Skipped), len(order))
		}
		if result.LabelTotal() != len(arts) {
			t.Fatalf("placed %d labels, have %d artifacts", result.LabelTotal(), len(arts))
		}

		var flattened []string
		for _, s := range result.Sheets {
			if hb, ok := policy.(HeightBounded); ok {
				if s.TotalHeight > hb.MaxHeight && s.LabelCount() != 1 {
					t.Fatalf("sheet %s exceeds budget with %d labels", s.Name, s.LabelCount())
				}
			}
			for _, pl := range s.Placements {
				flattened = append(flattened, pl.ID)
			}
		}
		// Flattened placements follow the stable order restricted to ids
		// with artifacts.
		i := 0
		for _, id := range order {
			if _, ok := arts[id]; !ok {
				continue
			}
			if flattened[i] != id {
				t.Fatalf("order violated at %d: %q != %q", i, flattened[i], id)
			}
			i++
		}
	})
}
