package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shelfmark/internal/fileutil"
)

const (
	// FullSnapshotName is the file name of the full registry snapshot.
	FullSnapshotName = "id_registry.yaml"
	// SimpleSnapshotName is the file name of the simplified snapshot.
	SimpleSnapshotName = "id_registry_simple.yaml"
)

// WriteSnapshots persists the full and simplified snapshots under dir.
// Both files are fully rewritten via atomic rename.
func WriteSnapshots(dir string, snapshot Snapshot) error {
	if err := writeYAML(filepath.Join(dir, FullSnapshotName), snapshot); err != nil {
		return err
	}
	return writeYAML(filepath.Join(dir, SimpleSnapshotName), snapshot.Simplify())
}

// LoadSimpleSnapshot reads a previously written simplified snapshot.
func LoadSimpleSnapshot(dir string) (SimpleSnapshot, error) {
	path := filepath.Join(dir, SimpleSnapshotName)
	data, err := os.ReadFile(path)
	if err != nil {
		return SimpleSnapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	var simple SimpleSnapshot
	if err := yaml.Unmarshal(data, &simple); err != nil {
		return SimpleSnapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return simple, nil
}

func writeYAML(path string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
