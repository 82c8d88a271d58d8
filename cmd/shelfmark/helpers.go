package main

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"shelfmark/internal/catalog"
	"shelfmark/internal/config"
	"shelfmark/internal/registry"
)

// scanAndBuild walks the catalog and produces the registry snapshot plus the
// raw entries for downstream label work.
func scanAndBuild(cfg *config.Config, logger *slog.Logger) (registry.Snapshot, []catalog.Entry, error) {
	reader := catalog.NewReader(cfg)
	entries, warnings, err := reader.Scan()
	if err != nil {
		return registry.Snapshot{}, nil, fmt.Errorf("scan catalog: %w", err)
	}
	logger.Info("catalog scanned", "entries", len(entries), "warnings", len(warnings))

	snapshot := registry.Build(cfg, entries, warnings, time.Now())
	for _, warning := range snapshot.Warnings {
		logger.Warn(warning)
	}
	return snapshot, entries, nil
}

// printableIDs returns the sorted identifiers of leaf entries. Family index
// pages are registry metadata, not printable labels. Non-conforming ids are
// excluded from registry ledgers but still print under their literal form,
// so they stay in the order.
func printableIDs(entries []catalog.Entry) []string {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.FamilyIndex || entry.ID == "" {
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		ids = append(ids, entry.ID)
	}
	sort.Strings(ids)
	return ids
}
