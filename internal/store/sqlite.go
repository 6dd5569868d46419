// ABOUTME: SQLite implementation of the Store interface
// ABOUTME: Mirrors the platform settings.db layout with one name/value table per namespace

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/2389/devsignals/internal/settings"
)

// Driver names accepted by NewSQLiteStoreWithDriver
const (
	DriverModernc = "sqlite"  // modernc.org/sqlite, pure Go
	DriverCGO     = "sqlite3" // github.com/mattn/go-sqlite3, requires cgo
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens a settings database at path using the pure Go driver.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	return NewSQLiteStoreWithDriver(DriverModernc, path)
}

// NewSQLiteStoreWithDriver opens a settings database at path with the named driver.
// The schema is created if it doesn't exist and parent directories are created if needed.
func NewSQLiteStoreWithDriver(driver, path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	if driver != DriverModernc && driver != DriverCGO {
		return nil, fmt.Errorf("unknown sqlite driver %q", driver)
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: gets its own database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path, "driver", driver)
	return s, nil
}

// createSchema creates one table per namespace if missing
func (s *SQLiteStore) createSchema() error {
	for _, ns := range settings.Namespaces() {
		schema := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				_id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT UNIQUE,
				value TEXT
			);

			CREATE INDEX IF NOT EXISTS %sIndex1 ON %s (name);
		`, ns, ns, ns)

		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("creating %s table: %w", ns, err)
		}
	}
	return nil
}

// GetString returns the value stored for key. A missing row or a NULL value
// is reported as ErrNotFound.
func (s *SQLiteStore) GetString(ns settings.Namespace, key settings.Key) (string, error) {
	if err := checkNamespace(ns); err != nil {
		return "", err
	}

	query := fmt.Sprintf(`SELECT value FROM %s WHERE name = ?`, ns)

	var value sql.NullString
	err := s.db.QueryRowContext(context.Background(), query, string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s/%s: %w", ns, key, err)
	}
	if !value.Valid {
		return "", ErrNotFound
	}
	return value.String, nil
}

// Put inserts or replaces the value for key.
func (s *SQLiteStore) Put(ctx context.Context, ns settings.Namespace, key settings.Key, value string) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, ns)

	if _, err := s.db.ExecContext(ctx, query, string(key), value); err != nil {
		return fmt.Errorf("writing %s/%s: %w", ns, key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, ns settings.Namespace, key settings.Key) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, ns), string(key))
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", ns, key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the non-NULL settings of ns sorted by key.
func (s *SQLiteStore) List(ctx context.Context, ns settings.Namespace) ([]Setting, error) {
	if err := checkNamespace(ns); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT name, value FROM %s WHERE value IS NOT NULL ORDER BY name`, ns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", ns, err)
	}
	defer rows.Close()

	var out []Setting
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", ns, err)
		}
		out = append(out, Setting{Namespace: ns, Key: settings.Key(name), Value: value})
	}
	return out, rows.Err()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing SQLite store")
	return s.db.Close()
}
