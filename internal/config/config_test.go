package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(cfg.Registry.Categories) != 10 {
		t.Fatalf("expected 10 default categories, got %d", len(cfg.Registry.Categories))
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
catalog_dir = "` + dir + `/docs/components"

[sheet]
policy = "count"
fixed_count = 6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Sheet.Policy != "count" || cfg.Sheet.FixedCount != 6 {
		t.Fatalf("sheet config not applied: %+v", cfg.Sheet)
	}
	if cfg.Paths.OutputDir != filepath.Join(cfg.Paths.CatalogDir, "stickers") {
		t.Fatalf("output dir should default under catalog dir, got %q", cfg.Paths.OutputDir)
	}
	if !strings.HasSuffix(cfg.Site.BaseURL, "/") {
		t.Fatalf("base url should end with slash, got %q", cfg.Site.BaseURL)
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
catalog_dir = "` + dir + `"

[sheet]
policy = "stochastic"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown sheet policy")
	}
}

func TestMaxSheetHeightPx(t *testing.T) {
	cfg := Default()
	// 150mm at 203 dpi is ~1199 device pixels.
	got := cfg.MaxSheetHeightPx()
	if got < 1195 || got > 1205 {
		t.Fatalf("MaxSheetHeightPx() = %d", got)
	}
}

func TestLabelPreset(t *testing.T) {
	cfg := Default()
	cfg.Label.Preset = "compact"
	if cfg.LabelPreset().TitleFontSize != 17 {
		t.Fatalf("compact preset title size = %v", cfg.LabelPreset().TitleFontSize)
	}
	cfg.Label.Preset = "large"
	if cfg.LabelPreset().TitleFontSize != 20 {
		t.Fatalf("large preset title size = %v", cfg.LabelPreset().TitleFontSize)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got, err := ExpandPath("~/x")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "x") {
		t.Fatalf("ExpandPath(~/x) = %q", got)
	}
}
