package identifier

import "testing"

func TestParseConforming(t *testing.T) {
	cases := []struct {
		raw      string
		category string
		number   int
		block    int
		anchor   bool
	}{
		{"PS001", "PS", 1, 0, false},
		{"ENV042", "ENV", 42, 0, false},
		{"PS100", "PS", 100, 1, true},
		{"PS000", "PS", 0, 0, true},
		{"MC999", "MC", 999, 9, false},
		{"RF250", "RF", 250, 2, false},
	}
	for _, tc := range cases {
		id, ok := Parse(tc.raw)
		if !ok {
			t.Fatalf("Parse(%q) unexpectedly non-conforming", tc.raw)
		}
		if id.Category != tc.category || id.Number != tc.number {
			t.Fatalf("Parse(%q) = %+v", tc.raw, id)
		}
		if id.HundredsBlock() != tc.block {
			t.Fatalf("%s: block = %d, want %d", tc.raw, id.HundredsBlock(), tc.block)
		}
		if id.AnchorCandidate() != tc.anchor {
			t.Fatalf("%s: anchor candidate = %v, want %v", tc.raw, id.AnchorCandidate(), tc.anchor)
		}
	}
}

func TestParseNonConforming(t *testing.T) {
	for _, raw := range []string{
		"", "PS01", "PS0001", "ps001", "P001", "ABCD001", "PS001x", "xPS001", "PS-01", "001PS",
	} {
		if _, ok := Parse(raw); ok {
			t.Fatalf("Parse(%q) unexpectedly conforming", raw)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"PS001", "ENV042", "TS900", "OT000"} {
		id, ok := Parse(raw)
		if !ok {
			t.Fatalf("Parse(%q) failed", raw)
		}
		again, ok := Parse(id.String())
		if !ok {
			t.Fatalf("Parse(%q) failed after formatting", id.String())
		}
		if again != id {
			t.Fatalf("round trip mismatch: %+v != %+v", again, id)
		}
	}
}

func TestFamilyKeyAndAnchorID(t *testing.T) {
	id, _ := Parse("PS150")
	if id.FamilyKey() != "PS1xx" {
		t.Fatalf("family key = %q", id.FamilyKey())
	}
	if id.AnchorID() != "PS100" {
		t.Fatalf("anchor id = %q", id.AnchorID())
	}
	id, _ = Parse("ENV007")
	if id.FamilyKey() != "ENV0xx" {
		t.Fatalf("family key = %q", id.FamilyKey())
	}
	if id.AnchorID() != "ENV000" {
		t.Fatalf("anchor id = %q", id.AnchorID())
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(4); got != "004" {
		t.Fatalf("FormatNumber(4) = %q", got)
	}
	if got := FormatNumber(999); got != "999" {
		t.Fatalf("FormatNumber(999) = %q", got)
	}
}
