package printlog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"shelfmark/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Run is one recorded sheets build.
type Run struct {
	ID           string
	StartedAt    time.Time
	Policy       string
	SheetCount   int
	LabelCount   int
	SkippedCount int
}

// PlacementRecord pins one identifier to a sheet position within a run.
type PlacementRecord struct {
	Sheet      string
	Position   int
	Identifier string
}

// Store manages print history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the print history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.PrintLogPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}

	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// RecordRun persists a run and all of its placements in one transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, placements []PlacementRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO print_runs (id, started_at, policy, sheet_count, label_count, skipped_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.Policy,
		run.SheetCount, run.LabelCount, run.SkippedCount)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, pl := range placements {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO print_placements (run_id, sheet, position, identifier)
			 VALUES (?, ?, ?, ?)`,
			run.ID, pl.Sheet, pl.Position, pl.Identifier)
		if err != nil {
			return fmt.Errorf("insert placement %s: %w", pl.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, policy, sheet_count, label_count, skipped_count
		 FROM print_runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		if err := rows.Scan(&run.ID, &started, &run.Policy,
			&run.SheetCount, &run.LabelCount, &run.SkippedCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339, started)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", started, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Placements returns the placements of one run in sheet order.
func (s *Store) Placements(ctx context.Context, runID string) ([]PlacementRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sheet, position, identifier FROM print_placements
		 WHERE run_id = ? ORDER BY sheet, position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	defer rows.Close()

	var placements []PlacementRecord
	for rows.Next() {
		var pl PlacementRecord
		if err := rows.Scan(&pl.Sheet, &pl.Position, &pl.Identifier); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		placements = append(placements, pl)
	}
	return placements, rows.Err()
}

// FindIdentifier returns every recorded placement of one identifier across
// all runs, newest run first.
func (s *Store) FindIdentifier(ctx context.Context, identifier string) ([]IdentifierHistory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.run_id, r.started_at, p.sheet, p.position
		 FROM print_placements p JOIN print_runs r ON r.id = p.run_id
		 WHERE p.identifier = ? ORDER BY r.started_at DESC, p.sheet, p.position`, identifier)
	if err != nil {
		return nil, fmt.Errorf("find identifier: %w", err)
	}
	defer rows.Close()

	var history []IdentifierHistory
	for rows.Next() {
		var h IdentifierHistory
		var started string
		if err := rows.Scan(&h.RunID, &started, &h.Sheet, &h.Position); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.StartedAt, err = time.Parse(time.RFC3339, started)
		if err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", started, err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// IdentifierHistory is one sighting of an identifier in the print history.
type IdentifierHistory struct {
	RunID     string
	StartedAt time.Time
	Sheet     string
	Position  int
}
