// Package store provides the settings providers read by the settings package.
//
// # Architecture
//
// Every provider implements Store, which embeds settings.Provider and adds write and
// listing operations:
//
//   - SQLiteStore: a settings.db style database with one name/value table per namespace
//   - MemoryStore: maps in memory, also the target of LoadFile for YAML/TOML dumps
//   - ADBStore: a live device reached through "adb shell settings"
//   - MockStore: a MemoryStore that records lookups and injects failures
//
// # SQLite Configuration
//
// Two drivers are registered. DriverModernc (modernc.org/sqlite) is pure Go and the default.
// DriverCGO (github.com/mattn/go-sqlite3) needs cgo and is selected via
// NewSQLiteStoreWithDriver. Tables follow the platform layout:
//
//	CREATE TABLE global (_id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE, value TEXT);
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: the key has no row, or its value is NULL
//   - ErrUnsupportedNamespace: the namespace is not global, secure or system
//
// The settings layer turns every one of these into "" so callers of the accessors never
// see them.
//
// # Testing
//
// Use NewMockStore() for unit tests:
//
//	mock := store.NewMockStore()
//	mock.FailWith(settings.Secure, settings.KeyDefaultInputMethod, errors.New("denied"))
//	src := settings.New(mock)
//
// Use NewSQLiteStore with a path under t.TempDir() for integration tests with real SQLite.
package store
