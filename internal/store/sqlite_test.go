// ABOUTME: Tests for the SQLite settings store
// ABOUTME: Covers schema creation, NULL rows, reopening, and existing settings.db files

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/2389/devsignals/internal/settings"
)

func TestNewSQLiteStore_CreatesNamespaceTables(t *testing.T) {
	store := setupTestStore(t)

	for _, ns := range settings.Namespaces() {
		var name string
		err := store.db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, string(ns),
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", ns)
		assert.Equal(t, string(ns), name)
	}
}

func TestNewSQLiteStore_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "settings.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestNewSQLiteStore_Memory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	storeContract(t, store)
}

func TestNewSQLiteStoreWithDriver_UnknownDriver(t *testing.T) {
	_, err := NewSQLiteStoreWithDriver("postgres", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestSQLiteStore_NullValueIsNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.db.Exec(`INSERT INTO secure (name, value) VALUES (?, NULL)`, "default_input_method")
	require.NoError(t, err)

	_, err = store.GetString(settings.Secure, settings.KeyDefaultInputMethod)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ReopenKeepsValues(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")

	first, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Put(context.Background(), settings.Global, settings.KeyDataRoaming, "0"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.GetString(settings.Global, settings.KeyDataRoaming)
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestSQLiteStore_ReadsExistingSettingsDB(t *testing.T) {
	// A database produced by the platform already has the tables
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE system (_id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE ON CONFLICT REPLACE, value TEXT);
		INSERT INTO system (name, value) VALUES ('time_12_24', '24');
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	v, err := store.GetString(settings.System, settings.KeyTime12Or24)
	require.NoError(t, err)
	assert.Equal(t, "24", v)
}
