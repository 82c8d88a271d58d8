package label

import (
	"encoding/csv"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelfmark/internal/catalog"
	"shelfmark/internal/config"
	"shelfmark/internal/sheet"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Paths.FontsDir = filepath.Join(t.TempDir(), "missing-fonts")
	return &cfg
}

func testEntry(id string) catalog.Entry {
	return catalog.Entry{
		ID:    id,
		Name:  "Bench Meter",
		Title: "Bench Meter",
		Lines: []string{"6.5 digit DMM", "calibrated 2026"},
		URL:   "https://example.test/components/bench-meter/",
		QRURL: "https://example.test/components/bench-meter/",
	}
}

func TestRenderLabelDimensions(t *testing.T) {
	cfg := testConfig(t)
	r := NewRenderer(cfg, nil)

	img, err := r.Render(testEntry("TS001"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Dx() != cfg.Label.MaxWidth {
		t.Fatalf("width = %d, want %d", img.Bounds().Dx(), cfg.Label.MaxWidth)
	}
	if img.Bounds().Dy() != cfg.LabelPreset().QRSize {
		t.Fatalf("height = %d, want %d", img.Bounds().Dy(), cfg.LabelPreset().QRSize)
	}
}

func TestBuildAllSkipsFamilyIndexes(t *testing.T) {
	cfg := testConfig(t)
	b := NewBuilder(cfg, nil)

	index := testEntry("PS100")
	index.FamilyIndex = true
	rows, err := b.BuildAll([]catalog.Entry{testEntry("TS001"), index, testEntry("PS101")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	// Sorted by identifier regardless of input order.
	if rows[0].ID != "PS101" || rows[1].ID != "TS001" {
		t.Fatalf("row order = %+v", rows)
	}
	for _, row := range rows {
		if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, row.LabelPNG)); err != nil {
			t.Fatalf("label file missing: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "PS100.png")); !os.IsNotExist(err) {
		t.Fatal("family index entry got a label")
	}
}

func TestInventoryCSV(t *testing.T) {
	cfg := testConfig(t)
	b := NewBuilder(cfg, nil)

	rows, err := b.BuildAll([]catalog.Entry{testEntry("TS001")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := b.WriteInventoryCSV(rows); err != nil {
		t.Fatalf("inventory: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.Paths.OutputDir, InventoryCSVName))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %v", records)
	}
	if strings.Join(records[0], ",") != "id,name,url,label_png" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][0] != "TS001" || records[1][3] != "TS001.png" {
		t.Fatalf("row = %v", records[1])
	}
}

func TestLoadArtifactsMeasuresRenderedLabels(t *testing.T) {
	cfg := testConfig(t)
	b := NewBuilder(cfg, nil)
	if _, err := b.BuildAll([]catalog.Entry{testEntry("TS001")}); err != nil {
		t.Fatalf("build: %v", err)
	}

	arts := LoadArtifacts(cfg.Paths.OutputDir, []string{"TS001", "GHOST"}, nil)
	if len(arts) != 1 {
		t.Fatalf("artifacts = %v", arts)
	}
	art := arts["TS001"]
	if art.Width != cfg.Label.MaxWidth || art.Height != cfg.LabelPreset().QRSize {
		t.Fatalf("artifact dims = %dx%d", art.Width, art.Height)
	}
}

func TestComposeSheets(t *testing.T) {
	cfg := testConfig(t)
	b := NewBuilder(cfg, nil)
	entries := []catalog.Entry{testEntry("TS001"), testEntry("TS002")}
	if _, err := b.BuildAll(entries); err != nil {
		t.Fatalf("build: %v", err)
	}

	arts := LoadArtifacts(cfg.Paths.OutputDir, []string{"TS001", "TS002"}, nil)
	packer := sheet.NewPacker(sheet.HeightBounded{
		MaxHeight: cfg.MaxSheetHeightPx(),
		Gap:       cfg.Sheet.LabelGapPx,
	}, nil)
	result := packer.Pack([]string{"TS001", "TS002"}, arts)
	if len(result.Sheets) != 1 {
		t.Fatalf("sheets = %d", len(result.Sheets))
	}

	names, err := NewComposer(cfg, nil).ComposeAll(result.Sheets, arts)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(names) != 1 || names[0] != "sheet_001.png" {
		t.Fatalf("names = %v", names)
	}

	f, err := os.Open(filepath.Join(cfg.Paths.OutputDir, names[0]))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	s := result.Sheets[0]
	if img.Bounds().Dx() != cfg.Label.MaxWidth || img.Bounds().Dy() != s.TotalHeight {
		t.Fatalf("sheet dims = %v, want %dx%d", img.Bounds(), cfg.Label.MaxWidth, s.TotalHeight)
	}
}
