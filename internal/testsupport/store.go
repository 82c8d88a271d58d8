package testsupport

import (
	"testing"

	"shelfmark/internal/config"
	"shelfmark/internal/printlog"
)

// MustOpenStore opens a printlog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *printlog.Store {
	t.Helper()

	store, err := printlog.Open(cfg)
	if err != nil {
		t.Fatalf("printlog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
