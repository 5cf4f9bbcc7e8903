package testutil

import (
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	// SQLite driver (pure Go)
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenSQLite creates a SQLite database in a temp file, applies the fixture
// migrations and returns its DSN together with an open pool. The pool is
// closed when the test ends.
func OpenSQLite(t testing.TB) (string, *sql.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fixture.db")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("%v", err)
	}
	return dsn, db
}

// Migrate applies the fixture migrations to db.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
