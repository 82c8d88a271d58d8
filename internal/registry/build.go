package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"shelfmark/internal/catalog"
	"shelfmark/internal/config"
	"shelfmark/internal/identifier"
)

// Build assembles a registry snapshot from scanned catalog entries.
//
// Non-conforming identifiers become warnings and are excluded from every
// ledger. The category report always covers the configured closed set, so an
// unused category still reports count 0 and next <code>001; codes observed
// outside that set are surfaced as warnings when configured to be.
func Build(cfg *config.Config, entries []catalog.Entry, scanWarnings []string, now time.Time) Snapshot {
	warnings := append([]string(nil), scanWarnings...)

	categories := NewCategoryLedger()
	families := NewFamilyLedger()
	var items []Item

	for _, entry := range entries {
		id, ok := identifier.Parse(entry.ID)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("skip-nonstandard-id: %s at %s", entry.ID, entry.Source))
			continue
		}

		isAnchor := id.AnchorCandidate() && entry.FamilyIndex
		items = append(items, Item{
			ID:             id.String(),
			Name:           entry.Name,
			Category:       id.Category,
			Number:         id.Number,
			Hundreds:       id.HundredsBlock(),
			IsFamilyAnchor: isAnchor,
			URL:            entry.URL,
			Source:         entry.Source,
		})

		categories.RecordUsed(id.Category, id.Number)
		families.RecordMember(id)
		if isAnchor {
			families.RecordAnchor(id, entry.Name)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Number < items[j].Number
	})

	report := make(map[string]Category, len(cfg.Registry.Categories))
	for code, title := range cfg.Registry.Categories {
		report[code] = buildCategory(code, title, categories, families)
	}

	if cfg.Registry.WarnUnknownCategories {
		for _, code := range categories.Categories() {
			if _, known := cfg.Registry.Categories[code]; !known {
				warnings = append(warnings, fmt.Sprintf(
					"unknown-category: %s used by %d id(s) but absent from the configured category set; omitted from the category report",
					code, categories.Count(code)))
			}
		}
	}

	return Snapshot{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		IDs:         items,
		Categories:  report,
		Families:    families.Families(),
		Warnings:    warnings,
	}
}

func buildCategory(code, title string, categories *CategoryLedger, families *FamilyLedger) Category {
	cat := Category{
		Title:        title,
		Count:        categories.Count(code),
		UsedNumbers:  categories.UsedNumbers(code),
		NextByFamily: make(map[string]string),
	}

	if n, ok := categories.NextFree(code); ok {
		next := code + identifier.FormatNumber(n)
		cat.NextAny = &next
	}

	for _, key := range families.AnchoredKeys() {
		block, ok := familyBlock(code, key)
		if !ok {
			continue
		}
		if n, ok := categories.NextFreeInBlock(code, block); ok {
			cat.NextByFamily[key] = code + identifier.FormatNumber(n)
		}
	}
	return cat
}

// familyBlock extracts the hundreds digit from a family key belonging to
// code, e.g. ("PS", "PS1xx") -> 1. Keys of other categories return false;
// a "PS1xx" key must not match category "P".
func familyBlock(code, key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, code)
	if !ok || len(rest) != 3 || !strings.HasSuffix(rest, "xx") {
		return 0, false
	}
	digit := rest[0]
	if digit < '0' || digit > '9' {
		return 0, false
	}
	return int(digit - '0'), true
}
