// Package store persists the portal's data in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/services"
)

// MemoryPath opens a private in-memory database, mostly useful in tests.
const MemoryPath = ":memory:"

// Options controls how Open prepares the database.
type Options struct {
	// Seed inserts the default categories, accounts and sample content into empty tables.
	Seed bool
	// PasswordHasher hashes the seeded account passwords. Defaults to bcrypt.DefaultCost.
	PasswordHasher *auth.PasswordHasher
	Logger         *zap.Logger
}

// SQLiteStore implements services.Store on top of database/sql and modernc.org/sqlite.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ services.Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the database at path, applies the schema and
// optionally seeds it.
func Open(ctx context.Context, path string, opts Options) (*SQLiteStore, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PasswordHasher == nil {
		opts.PasswordHasher = auth.NewPasswordHasher(0)
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps an in-memory database alive.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, logger: opts.Logger}
	if err := s.initialize(ctx, path != MemoryPath); err != nil {
		db.Close()
		return nil, err
	}

	if opts.Seed {
		if err := s.seed(ctx, opts.PasswordHasher); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	s.logger.Info("Database ready", zap.String("path", path), zap.Bool("seeded", opts.Seed))
	return s, nil
}

func (s *SQLiteStore) initialize(ctx context.Context, wal bool) error {
	pragmas := []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"}
	if wal {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch code := sqliteErr.Code(); {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case code&0xff == sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(sqliteErr.Error(), "UNIQUE")
	}
	return false
}

// exists reports whether table has a row with the given id. table is always a constant.
func (s *SQLiteStore) exists(ctx context.Context, table string, id int64) (bool, error) {
	var found int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up %s %d: %w", table, id, err)
	}
	return true, nil
}

// deleteByID deletes one row and reports whether it existed.
func (s *SQLiteStore) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// increment adds one to column and returns the new value. ok is false when the row does not exist.
func (s *SQLiteStore) increment(ctx context.Context, table, column string, id int64) (value int, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		"UPDATE "+table+" SET "+column+" = "+column+" + 1 WHERE id = ? RETURNING "+column, id).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to increment %s.%s: %w", table, column, err)
	}
	return value, true, nil
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// normalizePage applies the listing defaults: page 1, 10 per page.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
