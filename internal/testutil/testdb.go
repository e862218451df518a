package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/rhythm/internal/db"
)

func openOrFail(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test database %s: %v", path, err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestDB opens a migrated in-memory store, closed when the test ends.
// It holds a single connection, so never query through it while a
// transaction from the same database is open.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openOrFail(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated store file under t.TempDir(). Unlike the
// in-memory store every pooled connection sees the same data, which the
// concurrency tests rely on.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openOrFail(t, filepath.Join(t.TempDir(), "rhythm.db"))
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
