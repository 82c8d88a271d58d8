package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, root string) <-chan struct{} {
	t.Helper()
	cfg := DefaultConfig(root)
	cfg.DebounceDur = 50 * time.Millisecond
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })
	ch, err := w.Start()
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	return ch
}

func expectSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal received")
	}
}

func expectQuiet(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected change signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestMarkdownWriteTriggersSignal(t *testing.T) {
	root := t.TempDir()
	ch := startWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "ts001.md"), []byte("# x"), 0o644); err != nil {
		t.Fatal(err)
	}
	expectSignal(t, ch)
}

func TestNonMarkdownIgnored(t *testing.T) {
	root := t.TempDir()
	ch := startWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	expectQuiet(t, ch)
}

func TestNewSubdirectoryIsWatched(t *testing.T) {
	root := t.TempDir()
	ch := startWatcher(t, root)

	sub := filepath.Join(root, "power")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to pick up the new directory.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(sub, "index.md"), []byte("# x"), 0o644); err != nil {
		t.Fatal(err)
	}
	expectSignal(t, ch)
}

func TestBurstCoalesces(t *testing.T) {
	root := t.TempDir()
	ch := startWatcher(t, root)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(root, "ts001.md"), []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	expectSignal(t, ch)
	expectQuiet(t, ch)
}
