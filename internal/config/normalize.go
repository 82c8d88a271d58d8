package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSite()
	c.normalizeRegistry()
	c.normalizeLabel()
	c.normalizeSheet()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.CatalogDir, err = ExpandPath(c.Paths.CatalogDir); err != nil {
		return fmt.Errorf("paths.catalog_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = filepath.Join(c.Paths.CatalogDir, "stickers")
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.RegistryPageDir, err = ExpandPath(c.Paths.RegistryPageDir); err != nil {
		return fmt.Errorf("paths.registry_page_dir: %w", err)
	}
	if c.Paths.FontsDir, err = ExpandPath(c.Paths.FontsDir); err != nil {
		return fmt.Errorf("paths.fonts_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSite() {
	c.Site.BaseURL = strings.TrimSpace(c.Site.BaseURL)
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = defaultBaseURL
	}
	if !strings.HasSuffix(c.Site.BaseURL, "/") {
		c.Site.BaseURL += "/"
	}
}

func (c *Config) normalizeRegistry() {
	if len(c.Registry.Categories) == 0 {
		c.Registry.Categories = defaultCategories()
		return
	}
	normalized := make(map[string]string, len(c.Registry.Categories))
	for code, title := range c.Registry.Categories {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		normalized[code] = strings.TrimSpace(title)
	}
	c.Registry.Categories = normalized
}

func (c *Config) normalizeLabel() {
	c.Label.Preset = strings.ToLower(strings.TrimSpace(c.Label.Preset))
	if c.Label.Preset == "" {
		c.Label.Preset = defaultPreset
	}
	if c.Label.MaxWidth <= 0 {
		c.Label.MaxWidth = defaultMaxWidth
	}
	if c.Label.PaddingLeft < 0 {
		c.Label.PaddingLeft = defaultPaddingLeft
	}
	if c.Label.TextLeftGap < 0 {
		c.Label.TextLeftGap = defaultTextLeftGap
	}
	if c.Label.TextRightPad < 0 {
		c.Label.TextRightPad = defaultTextRightPad
	}
	if c.Label.MaxInfoLines <= 0 {
		c.Label.MaxInfoLines = defaultMaxInfoLines
	}
}

func (c *Config) normalizeSheet() {
	c.Sheet.Policy = strings.ToLower(strings.TrimSpace(c.Sheet.Policy))
	if c.Sheet.Policy == "" {
		c.Sheet.Policy = defaultSheetPolicy
	}
	if c.Sheet.MaxHeightMM <= 0 {
		c.Sheet.MaxHeightMM = defaultMaxHeightMM
	}
	if c.Sheet.DPI <= 0 {
		c.Sheet.DPI = defaultDPI
	}
	if c.Sheet.FixedCount <= 0 {
		c.Sheet.FixedCount = defaultFixedCount
	}
	if c.Sheet.LabelGapPx < 0 {
		c.Sheet.LabelGapPx = defaultLabelGapPx
	}
	if c.Sheet.DividerThickness <= 0 {
		c.Sheet.DividerThickness = defaultDividerThickness
	}
	if c.Sheet.CutLineInset <= 0 {
		c.Sheet.CutLineInset = defaultCutLineInset
	}
	if c.Sheet.CutLineWidth <= 0 {
		c.Sheet.CutLineWidth = defaultCutLineWidth
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
