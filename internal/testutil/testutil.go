package testutil

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wordbook/internal/config"
	"wordbook/internal/database"
	"wordbook/internal/domain"

	"github.com/golang-migrate/migrate/v4"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(word, meaning string) domain.WordEntry {
	return domain.WordEntry{Word: word, Meaning: meaning}
}

// NewTestDB opens a pool on a fresh database file under t.TempDir with the
// words table in place. The pool is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wordbook.db")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("create database file: %v", err)
	}

	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: path, MaxConns: 5}
	db, err := database.Open(context.Background(), cfg, NewTestLogger())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func applyMigrations(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := sqlitedb.WithInstance(db, &sqlitedb.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
