// Package registrypage renders the human-readable registry report as a
// markdown page for the documentation site.
package registrypage

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"shelfmark/internal/config"
	"shelfmark/internal/fileutil"
	"shelfmark/internal/registry"
)

// PageName is the markdown file written into the registry page directory.
const PageName = "index.md"

// Render produces the registry page markdown from a simplified snapshot.
func Render(snapshot registry.SimpleSnapshot) string {
	var b strings.Builder

	b.WriteString("# Identifier Registry\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", snapshot.GeneratedAt)

	b.WriteString("## Categories\n\n")
	b.WriteString("| Code | Title | Count | Next ID | Next by family |\n")
	b.WriteString("| --- | --- | ---: | --- | --- |\n")
	for _, code := range sortedKeys(snapshot.Categories) {
		cat := snapshot.Categories[code]
		next := "full"
		if cat.NextAny != nil {
			next = "`" + *cat.NextAny + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
			code, cat.Title, cat.Count, next, familyNextCell(cat.NextByFamily))
	}
	b.WriteString("\n")

	b.WriteString("## Families\n\n")
	if len(snapshot.Families) == 0 {
		b.WriteString("No anchored families.\n")
		return b.String()
	}
	b.WriteString("| Family | Anchor | Alias | Members |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, key := range sortedKeys(snapshot.Families) {
		fam := snapshot.Families[key]
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
			key, fam.Anchor, fam.Alias, memberCell(fam.Members))
	}

	return b.String()
}

// Write renders the page and writes it atomically into the configured
// registry page directory.
func Write(cfg *config.Config, snapshot registry.SimpleSnapshot) (string, error) {
	path := filepath.Join(cfg.Paths.RegistryPageDir, PageName)
	if err := fileutil.WriteAtomic(path, []byte(Render(snapshot)), 0o644); err != nil {
		return "", fmt.Errorf("write registry page: %w", err)
	}
	return path, nil
}

func familyNextCell(next map[string]string) string {
	if len(next) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(next))
	for _, key := range sortedKeys(next) {
		parts = append(parts, fmt.Sprintf("%s: `%s`", key, next[key]))
	}
	return strings.Join(parts, ", ")
}

func memberCell(members []string) string {
	if len(members) == 0 {
		return "-"
	}
	quoted := make([]string, len(members))
	for i, m := range members {
		quoted[i] = "`" + m + "`"
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
