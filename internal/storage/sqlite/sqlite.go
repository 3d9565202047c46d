// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/foodlist/service/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// querier is the common subset of *sql.DB and *sql.Tx the entity methods use,
// so the same code serves both the root store and transaction-scoped stores.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB // nil when this store is transaction-scoped
	q  querier
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, q: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil // transaction-scoped stores own nothing
	}
	return s.db.Close()
}

// WithTx runs fn against a transaction-scoped store. Calling WithTx on a
// store that is already transaction-scoped reuses the open transaction.
func (s *SQLiteStore) WithTx(ctx context.Context, fn func(storage.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&SQLiteStore{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// exists runs an EXISTS probe against the given table.
func (s *SQLiteStore) exists(ctx context.Context, table string, id int64) (bool, error) {
	var found bool
	err := s.q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)", table), id,
	).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return found, nil
}

// childIDs loads the identifiers of rows whose FK column points at ownerID.
func (s *SQLiteStore) childIDs(ctx context.Context, table, column string, ownerID int64) ([]int64, error) {
	rows, err := s.q.QueryContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE %s = ? ORDER BY id", table, column), ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s ids: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s ids: %w", table, err)
	}
	return ids, nil
}

// syncOwnedColumn rewrites the FK column of a child table so that exactly the
// rows in ids point at ownerID: rows currently pointing at the owner but not
// in ids are detached (column set to NULL), rows in ids are attached. This is
// what makes a single owner save persist a replaceAll.
func (s *SQLiteStore) syncOwnedColumn(ctx context.Context, table, column string, ownerID int64, ids []int64) error {
	detach := fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = ?", table, column, column)
	args := []any{ownerID}
	if len(ids) > 0 {
		detach += fmt.Sprintf(" AND id NOT IN (%s)", placeholders(len(ids)))
		args = append(args, idArgs(ids)...)
	}
	if _, err := s.q.ExecContext(ctx, detach, args...); err != nil {
		return fmt.Errorf("failed to detach %s rows: %w", table, err)
	}

	if len(ids) == 0 {
		return nil
	}
	attach := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id IN (%s)", table, column, placeholders(len(ids)))
	args = append([]any{ownerID}, idArgs(ids)...)
	if _, err := s.q.ExecContext(ctx, attach, args...); err != nil {
		return fmt.Errorf("failed to attach %s rows: %w", table, err)
	}
	return nil
}

// placeholders returns "?, ?, ..." with n placeholders for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// nullableID converts between *int64 and sql.NullInt64.
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
