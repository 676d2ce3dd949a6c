// Package dbtest gives tests a real, migrated SQLite database per test.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justsurfingit/ats-api/internal/config"
	"github.com/justsurfingit/ats-api/internal/database"
)

// Config points at a fresh database file under t.TempDir().
func Config(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:          config.DriverSQLite,
		DBName:            filepath.Join(t.TempDir(), "ats.db"),
		DBMaxOpenConns:    4,
		DBMaxIdleConns:    4,
		DBConnMaxLifetime: time.Minute,
		DBQueryTimeout:    5 * time.Second,
	}
}

// Open returns a migrated, empty database and a provider over it.
func Open(t *testing.T) (*gorm.DB, *database.Provider) {
	t.Helper()

	cfg := Config(t)
	logger := zap.NewNop()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, database.NewProvider(db, logger, cfg.DBQueryTimeout)
}

// OpenSeeded is Open plus the demo seed (5 recruiters, 5 jobs, 5 candidates).
func OpenSeeded(t *testing.T) (*gorm.DB, *database.Provider) {
	t.Helper()

	db, provider := Open(t)
	if _, err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db, provider
}

// ClosedProvider returns a provider whose pool is already closed, so every
// Acquire fails the way an unreachable database does.
func ClosedProvider(t *testing.T) *database.Provider {
	t.Helper()

	db, _ := Open(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return database.NewProvider(db, zap.NewNop(), time.Second)
}
