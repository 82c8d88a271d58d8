// Package watch provides recursive file system watching with debouncing for
// the catalog tree.
package watch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the catalog tree for markdown changes and coalesces
// bursts of events into a single notification.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  time.Duration
	logger    *slog.Logger
	onChange  chan struct{}
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Root        string
	DebounceDur time.Duration
	Logger      *slog.Logger
}

// DefaultConfig returns sensible defaults for watching root.
func DefaultConfig(root string) Config {
	return Config{
		Root:        root,
		DebounceDur: 1 * time.Second,
	}
}

// New creates a new catalog watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := cfg.DebounceDur
	if debounce <= 0 {
		debounce = 1 * time.Second
	}

	return &Watcher{
		fsWatcher: fsw,
		root:      cfg.Root,
		debounce:  debounce,
		logger:    logger,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the catalog tree recursively.
// Returns a channel that receives a signal when markdown content changes.
func (w *Watcher) Start() (<-chan struct{}, error) {
	if err := w.addTree(w.root); err != nil {
		return nil, err
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// addTree registers root and every subdirectory. fsnotify watches are not
// recursive, so each directory needs its own watch.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			// New subdirectories join the watch set immediately so files
			// created inside them are not missed.
			if event.Op&fsnotify.Create != 0 {
				if err := w.addTree(event.Name); err != nil {
					w.logger.Debug("watch add skipped", "path", event.Name, "error", err)
				}
			}

			if !w.isRelevantEvent(event) {
				continue
			}
			w.logger.Debug("catalog change", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				// Non-blocking send, drop if a refresh is already queued.
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent checks if the event should trigger a rebuild.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".md")
}
