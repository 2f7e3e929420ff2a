package export

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"krokindex/internal/catalog"
	"krokindex/internal/fileutil"
	"krokindex/internal/textutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates a database written by a different schema version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// WriteSQLite replaces the database at path with the given entries.
func WriteSQLite(ctx context.Context, path, runID string, entries []catalog.Entry) error {
	tmpPath, err := fileutil.TempSibling(path)
	if err != nil {
		return fmt.Errorf("prepare sqlite export: %w", err)
	}

	if err := populate(ctx, tmpPath, runID, entries); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := fileutil.Replace(tmpPath, path); err != nil {
		return fmt.Errorf("commit sqlite export: %w", err)
	}
	return nil
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return db, nil
}

func populate(ctx context.Context, path, runID string, entries []catalog.Entry) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, created_at, entry_count) VALUES (?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339Nano), len(entries),
	); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (
            position, name, source, path, exam_type, level, subject, type, name_folded
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, entry := range entries {
		if _, err := stmt.ExecContext(ctx,
			i,
			entry.Name,
			entry.Source,
			entry.Path,
			entry.ExamType,
			entry.Level,
			entry.Subject,
			entry.Type,
			textutil.Fold(entry.Name),
		); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// Reader queries an exported database.
type Reader struct {
	db *sql.DB
}

// OpenReader opens an exported database and checks its schema version.
func OpenReader(ctx context.Context, path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat sqlite export: %w", err)
	}
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	var version int
	if err := db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		_ = db.Close()
		return nil, fmt.Errorf("%w: database has version %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
	return &Reader{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Reader) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// RunID returns the id of the build that produced the database.
func (r *Reader) RunID(ctx context.Context) (string, error) {
	var id string
	if err := r.db.QueryRowContext(ctx, "SELECT run_id FROM runs LIMIT 1").Scan(&id); err != nil {
		return "", fmt.Errorf("read run id: %w", err)
	}
	return id, nil
}

// Entries returns all entries in catalog order.
func (r *Reader) Entries(ctx context.Context) ([]catalog.Entry, error) {
	return r.query(ctx, "", nil)
}

// Search returns entries whose name contains term, ignoring case.
func (r *Reader) Search(ctx context.Context, term string) ([]catalog.Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.Entries(ctx)
	}
	return r.query(ctx, "WHERE instr(name_folded, ?) > 0", []any{textutil.Fold(term)})
}

func (r *Reader) query(ctx context.Context, where string, args []any) ([]catalog.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, source, path, exam_type, level, subject, type FROM entries "+where+" ORDER BY position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.Name, &e.Source, &e.Path, &e.ExamType, &e.Level, &e.Subject, &e.Type); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
