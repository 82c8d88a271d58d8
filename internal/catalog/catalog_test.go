package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"shelfmark/internal/config"
)

func newTestReader(t *testing.T) (*Reader, string) {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDir = root
	cfg.Paths.OutputDir = filepath.Join(root, "stickers")
	cfg.Site.BaseURL = "https://example.test/catalog/"
	return NewReader(&cfg), root
}

func writePage(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanBasicEntry(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "PS001.md", "---\nid: PS001\nname: Buck converter\nshort: 3A step down\nuse: bench supply\n---\n\n# Buck\n")

	entries, warnings, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	e := entries[0]
	if e.ID != "PS001" || e.Name != "Buck converter" {
		t.Fatalf("entry = %+v", e)
	}
	if e.FamilyIndex {
		t.Fatal("leaf page flagged as family index")
	}
	if e.URL != "https://example.test/catalog/components/PS001/" {
		t.Fatalf("url = %q", e.URL)
	}
	if e.QRURL != e.URL {
		t.Fatalf("qr url should default to page url, got %q", e.QRURL)
	}
	if len(e.Lines) != 2 || e.Lines[0] != "3A step down" || e.Lines[1] != "bench supply" {
		t.Fatalf("lines = %v", e.Lines)
	}
}

func TestScanFallbackID(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "ps002.md", "# no front matter\n")

	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if entries[0].ID != "PS002" {
		t.Fatalf("fallback id = %q", entries[0].ID)
	}
	if entries[0].Name != "ps002" {
		t.Fatalf("fallback name = %q", entries[0].Name)
	}
}

func TestScanMalformedFrontMatter(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "PS003.md", "---\nname: [unclosed\n---\nbody\n")

	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// Malformed YAML degrades to an empty record with the stem fallback.
	if entries[0].ID != "PS003" {
		t.Fatalf("id = %q", entries[0].ID)
	}
}

func TestScanFamilyIndex(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "Buck Converters/index.md", "---\nid: PS100\nname: Buck family\n---\n")
	writePage(t, root, "Buck Converters/PS101.md", "---\nid: PS101\n---\n")

	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	var index, leaf Entry
	for _, e := range entries {
		if e.FamilyIndex {
			index = e
		} else {
			leaf = e
		}
	}
	if index.ID != "PS100" {
		t.Fatalf("index entry = %+v", index)
	}
	if index.URL != "https://example.test/catalog/components/Buck%20Converters/" {
		t.Fatalf("index url = %q", index.URL)
	}
	if leaf.URL != "https://example.test/catalog/components/Buck%20Converters/PS101/" {
		t.Fatalf("leaf url = %q", leaf.URL)
	}
}

func TestScanSkipsOutputDir(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "PS001.md", "---\nid: PS001\n---\n")
	writePage(t, root, "stickers/notes.md", "not a component\n")

	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected stickers dir to be skipped, entries = %d", len(entries))
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	reader, root := newTestReader(t)
	for _, name := range []string{"PS003.md", "PS001.md", "PS002.md"} {
		writePage(t, root, name, "# x\n")
	}
	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"PS001", "PS002", "PS003"}
	for i, e := range entries {
		if e.ID != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, e.ID, want[i])
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.CatalogDir = filepath.Join(t.TempDir(), "missing")
	reader := NewReader(&cfg)
	if _, _, err := reader.Scan(); err == nil {
		t.Fatal("expected error for missing catalog root")
	}
}

func TestParseFrontMatterBOMAndCRLF(t *testing.T) {
	fm, body := parseFrontMatter("\ufeff---\r\nid: PS009\r\n---\r\nbody text\r\n")
	if fm.ID != "PS009" {
		t.Fatalf("id = %q", fm.ID)
	}
	if body == "" {
		t.Fatal("body lost")
	}
}

func TestParseFrontMatterUnterminated(t *testing.T) {
	fm, body := parseFrontMatter("---\nid: PS009\nno closing fence\n")
	if fm.ID != "" {
		t.Fatalf("unterminated front matter should be ignored, id = %q", fm.ID)
	}
	if body == "" {
		t.Fatal("body should be the full text")
	}
}

func TestParsePrinterMeta(t *testing.T) {
	body := "intro\n<!-- printer_meta:\ntitle: Short title\nqr_url: https://example.test/x/\nlines:\n  - 3.3V only\n-->\n<!-- /printer_meta -->\nrest\n"
	meta := parsePrinterMeta(body)
	if meta.Title != "Short title" {
		t.Fatalf("title = %q", meta.Title)
	}
	if meta.QRURL != "https://example.test/x/" {
		t.Fatalf("qr_url = %q", meta.QRURL)
	}
	if len(meta.Lines) != 1 || meta.Lines[0] != "3.3V only" {
		t.Fatalf("lines = %v", meta.Lines)
	}
}

func TestParsePrinterMetaMalformed(t *testing.T) {
	meta := parsePrinterMeta("<!-- printer_meta:\ntitle: [broken\n-->\n<!-- /printer_meta -->")
	if meta.Title != "" {
		t.Fatalf("malformed block should yield zero value, got %+v", meta)
	}
}

func TestPrinterMetaOverridesLabelContent(t *testing.T) {
	reader, root := newTestReader(t)
	writePage(t, root, "PS004.md",
		"---\nid: PS004\nname: Long component name\nshort: ignored\n---\n"+
			"<!-- printer_meta:\ntitle: Override\nlines: [\"a\", \"b\"]\n-->\n<!-- /printer_meta -->\n")

	entries, _, err := reader.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	e := entries[0]
	if e.Title != "Override" {
		t.Fatalf("title = %q", e.Title)
	}
	if len(e.Lines) != 2 || e.Lines[0] != "a" {
		t.Fatalf("lines = %v", e.Lines)
	}
}
