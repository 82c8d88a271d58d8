package registry

import (
	"testing"

	"shelfmark/internal/identifier"
)

func TestNextFreeFirstGap(t *testing.T) {
	l := NewCategoryLedger()
	for _, n := range []int{1, 2, 3} {
		l.RecordUsed("PS", n)
	}
	n, ok := l.NextFree("PS")
	if !ok || n != 4 {
		t.Fatalf("NextFree = %d, %v", n, ok)
	}
	if identifier.FormatNumber(n) != "004" {
		t.Fatalf("formatted = %q", identifier.FormatNumber(n))
	}
}

func TestNextFreeSkipsGapsCorrectly(t *testing.T) {
	l := NewCategoryLedger()
	for _, n := range []int{1, 2, 4, 5} {
		l.RecordUsed("PS", n)
	}
	if n, _ := l.NextFree("PS"); n != 3 {
		t.Fatalf("NextFree = %d", n)
	}
}

func TestNextFreeNeverReturnsUsed(t *testing.T) {
	l := NewCategoryLedger()
	for n := 1; n <= 50; n++ {
		if n%7 != 0 {
			l.RecordUsed("MC", n)
		}
	}
	got, ok := l.NextFree("MC")
	if !ok {
		t.Fatal("category should not be exhausted")
	}
	for _, used := range l.UsedNumbers("MC") {
		if got == used {
			t.Fatalf("NextFree returned used number %d", got)
		}
	}
}

func TestNextFreeExhausted(t *testing.T) {
	l := NewCategoryLedger()
	for n := 1; n <= 999; n++ {
		l.RecordUsed("OT", n)
	}
	if _, ok := l.NextFree("OT"); ok {
		t.Fatal("expected exhausted category to report no free number")
	}
}

func TestNextFreeEmptyCategory(t *testing.T) {
	l := NewCategoryLedger()
	n, ok := l.NextFree("ENV")
	if !ok || n != 1 {
		t.Fatalf("NextFree on empty category = %d, %v", n, ok)
	}
}

func TestRecordUsedIdempotent(t *testing.T) {
	l := NewCategoryLedger()
	l.RecordUsed("PS", 7)
	l.RecordUsed("PS", 7)
	if l.Count("PS") != 1 {
		t.Fatalf("count = %d", l.Count("PS"))
	}
}

func TestNextFreeInBlockBaseFree(t *testing.T) {
	l := NewCategoryLedger()
	l.RecordUsed("PS", 150)
	n, ok := l.NextFreeInBlock("PS", 1)
	if !ok || n != 100 {
		t.Fatalf("NextFreeInBlock = %d, %v", n, ok)
	}
}

func TestNextFreeInBlockScansForward(t *testing.T) {
	l := NewCategoryLedger()
	// Block 0 fully used except 050.
	for n := 0; n < 100; n++ {
		if n != 50 {
			l.RecordUsed("PS", n)
		}
	}
	n, ok := l.NextFreeInBlock("PS", 0)
	if !ok || n != 50 {
		t.Fatalf("NextFreeInBlock = %d, %v", n, ok)
	}
}

func TestNextFreeInBlockNeverCrossesBlock(t *testing.T) {
	l := NewCategoryLedger()
	for n := 0; n < 100; n++ {
		l.RecordUsed("PS", n)
	}
	// Block 1 is wide open, but block 0 must report exhaustion.
	if _, ok := l.NextFreeInBlock("PS", 0); ok {
		t.Fatal("expected full block to report no free number")
	}
	if n, _ := l.NextFreeInBlock("PS", 1); n != 100 {
		t.Fatalf("block 1 should start at 100, got %d", n)
	}
}
