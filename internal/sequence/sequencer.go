// Package sequence maintains the append-only stable print order.
//
// The order decides which physical sheet a label lands on, so it must never
// reshuffle labels that were already printed: identifiers surviving from the
// previous run keep their relative order, vanished ones are dropped, and new
// ones are appended sorted among themselves.
package sequence

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	json "github.com/goccy/go-json"

	"shelfmark/internal/fileutil"
)

type orderFile struct {
	Order []string `json:"order"`
}

// Sequencer loads and persists the stable order at a fixed path.
type Sequencer struct {
	path   string
	logger *slog.Logger
}

// New returns a Sequencer persisting to path.
func New(path string, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{path: path, logger: logger}
}

// Load reads the previously persisted order. A missing or unparseable file
// yields an empty order: every current identifier then counts as fresh.
func (s *Sequencer) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("order file unreadable, starting fresh", "path", s.path, "error", err)
		}
		return nil
	}
	var file orderFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.logger.Warn("order file unparseable, starting fresh", "path", s.path, "error", err)
		return nil
	}
	return file.Order
}

// Reconcile merges the previous order with the current identifier set:
// survivors keep their previous relative order, vanished identifiers are
// dropped, and identifiers seen for the first time are appended at the tail
// sorted lexicographically among themselves.
func Reconcile(previous []string, current []string) []string {
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(previous))
	retained := make([]string, 0, len(current))
	for _, id := range previous {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := currentSet[id]; ok {
			retained = append(retained, id)
		}
	}

	fresh := make([]string, 0)
	for id := range currentSet {
		if _, ok := seen[id]; !ok {
			fresh = append(fresh, id)
		}
	}
	sort.Strings(fresh)

	return append(retained, fresh...)
}

// Update reconciles the persisted order against current and rewrites the
// order file unconditionally, even when nothing changed.
func (s *Sequencer) Update(current []string) ([]string, error) {
	order := Reconcile(s.Load(), current)
	if err := s.persist(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Sequencer) persist(order []string) error {
	if order == nil {
		order = []string{}
	}
	data, err := json.MarshalIndent(orderFile{Order: order}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write order file: %w", err)
	}
	return nil
}
