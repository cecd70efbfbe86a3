package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"wordbook/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Open creates the connection pool shared by every request.
// The pool is capped at cfg.MaxConns open connections; callers past the cap
// wait for a connection to be released.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	if cfg.Driver == config.DriverSQLite {
		// The words table is expected to exist, so never create an empty file
		if _, err := os.Stat(cfg.Path); err != nil {
			return nil, fmt.Errorf("database file %s: %w", cfg.Path, err)
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database pool opened",
		zap.String("driver", cfg.Driver),
		zap.Int("max_connections", cfg.MaxConns),
	)

	return db, nil
}
