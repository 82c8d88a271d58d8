package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var categoryCodeRE = regexp.MustCompile(`^[A-Z]{2,3}$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRegistry(); err != nil {
		return err
	}
	if err := c.validateLabel(); err != nil {
		return err
	}
	if err := c.validateSheet(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CatalogDir) == "" {
		return errors.New("paths.catalog_dir must be set")
	}
	return nil
}

func (c *Config) validateRegistry() error {
	if len(c.Registry.Categories) == 0 {
		return errors.New("registry.categories must not be empty")
	}
	for code := range c.Registry.Categories {
		if !categoryCodeRE.MatchString(code) {
			return fmt.Errorf("registry.categories: code %q must be 2-3 uppercase letters", code)
		}
	}
	return nil
}

func (c *Config) validateLabel() error {
	switch c.Label.Preset {
	case "compact", "large":
	default:
		return fmt.Errorf("label.preset must be %q or %q, got %q", "compact", "large", c.Label.Preset)
	}
	if c.Label.MaxWidth < 64 {
		return fmt.Errorf("label.max_width must be at least 64, got %d", c.Label.MaxWidth)
	}
	return nil
}

func (c *Config) validateSheet() error {
	switch c.Sheet.Policy {
	case "height", "count":
	default:
		return fmt.Errorf("sheet.policy must be %q or %q, got %q", "height", "count", c.Sheet.Policy)
	}
	if c.MaxSheetHeightPx() <= 0 {
		return errors.New("sheet.max_height_mm and sheet.dpi must yield a positive pixel budget")
	}
	return nil
}
