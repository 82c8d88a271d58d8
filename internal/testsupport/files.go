package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteEntry writes a catalog markdown file with a front matter block. rel is
// the path relative to the catalog root, e.g. "power/ps100/index.md". Extra
// front matter lines go in fields, e.g. `short: "bench supply"`.
func WriteEntry(t testing.TB, catalogDir, rel, id, name string, fields ...string) string {
	t.Helper()

	path := filepath.Join(catalogDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	content := "---\n"
	if id != "" {
		content += fmt.Sprintf("id: %s\n", id)
	}
	if name != "" {
		content += fmt.Sprintf("name: %s\n", name)
	}
	for _, field := range fields {
		content += field + "\n"
	}
	content += "---\n\n# " + name + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteRawEntry writes a catalog file with exactly the given contents.
func WriteRawEntry(t testing.TB, catalogDir, rel, content string) string {
	t.Helper()

	path := filepath.Join(catalogDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
