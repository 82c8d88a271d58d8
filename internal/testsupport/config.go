// Package testsupport provides shared helpers for package tests: temp-dir
// configs, catalog fixtures, and print history stores.
package testsupport

import (
	"path/filepath"
	"testing"

	"shelfmark/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CatalogDir = filepath.Join(base, "catalog")
	cfgVal.Paths.OutputDir = filepath.Join(base, "stickers")
	cfgVal.Paths.RegistryPageDir = filepath.Join(base, "registry")
	cfgVal.Paths.FontsDir = filepath.Join(base, "fonts")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Site.BaseURL = "https://example.test/"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSheetPolicy sets the packing policy on the test config.
func WithSheetPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sheet.Policy = policy
	}
}

// WithCategories replaces the closed category set on the test config.
func WithCategories(categories map[string]string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Registry.Categories = categories
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CatalogDir)
}
