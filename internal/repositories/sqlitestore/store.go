// Package sqlitestore implements ports.AliasStore on SQLite using the pure-Go
// modernc.org/sqlite driver.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS alias (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	alias   TEXT NOT NULL,
	pattern TEXT NOT NULL
)`

// Store is a SQLite-backed alias store.
type Store struct {
	db *sql.DB
}

var _ ports.AliasStore = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the
// connection pragmas. The schema is not created; call CreateSchemaIfAbsent.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlitestore: database path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("sqlitestore: create data dir: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitestore: pragma %q: %w", p, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSchemaIfAbsent implements ports.AliasStore.
func (s *Store) CreateSchemaIfAbsent(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlitestore: create schema: %w: %w", ports.ErrSchema, err)
	}
	return nil
}

// Insert implements ports.AliasStore.
func (s *Store) Insert(ctx context.Context, aliasPattern, pattern string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO alias (alias, pattern) VALUES (?, ?)`, aliasPattern, pattern)
	if err != nil {
		return 0, fmt.Errorf("sqlitestore: insert alias %q: %w", aliasPattern, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlitestore: insert alias %q: last insert id: %w", aliasPattern, err)
	}
	return id, nil
}

// DeleteByID implements ports.AliasStore.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM alias WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlitestore: delete alias %d: %w", id, classify(err))
	}
	return expectRow(res, "delete", id)
}

// UpdateByID implements ports.AliasStore.
func (s *Store) UpdateByID(ctx context.Context, id int64, aliasPattern, pattern string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE alias SET alias = ?, pattern = ? WHERE id = ?`, aliasPattern, pattern, id)
	if err != nil {
		return fmt.Errorf("sqlitestore: update alias %d: %w", id, classify(err))
	}
	return expectRow(res, "update", id)
}

// ListAll implements ports.AliasStore.
func (s *Store) ListAll(ctx context.Context) ([]alias.Record, error) {
	records, err := s.queryRecords(ctx, `SELECT id, alias, pattern FROM alias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: list aliases: %w", err)
	}
	return records, nil
}

// FindSiblings implements ports.AliasStore. Matching is case-sensitive; LIKE
// is avoided because SQLite folds ASCII case for it.
func (s *Store) FindSiblings(ctx context.Context, leadingWord string) ([]alias.Record, error) {
	records, err := s.queryRecords(ctx,
		`SELECT id, alias, pattern FROM alias
		 WHERE alias = ? OR substr(alias, 1, length(?) + 1) = ? || ' '
		 ORDER BY id`, leadingWord, leadingWord, leadingWord)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: find siblings of %q: %w", leadingWord, err)
	}
	return records, nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]alias.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	records := []alias.Record{}
	for rows.Next() {
		var r alias.Record
		if err := rows.Scan(&r.ID, &r.Alias, &r.Pattern); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func expectRow(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlitestore: %s alias %d: rows affected: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("sqlitestore: %s alias %d: %w", op, id, ports.ErrNotFound)
	}
	return nil
}

// classify tags driver errors with the matching ports error kind.
func classify(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "constraint failed"):
		return fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "no such column"):
		return fmt.Errorf("%w: %w", ports.ErrSchema, err)
	default:
		return err
	}
}
