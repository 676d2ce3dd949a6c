// Command setup creates the ATS schema and loads the demo data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/justsurfingit/ats-api/internal/config"
	"github.com/justsurfingit/ats-api/internal/database"
	"github.com/justsurfingit/ats-api/internal/logging"
)

func main() {
	seed := flag.Bool("seed", true, "insert the demo recruiters, jobs and candidates")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	logger.Info("Schema ready", zap.String("driver", cfg.DBDriver), zap.String("database", cfg.DBName))

	if !*seed {
		return
	}
	counts, err := database.Seed(ctx, db)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Sample data inserted",
		zap.Int("recruiters", counts.Recruiters),
		zap.Int("jobs", counts.Jobs),
		zap.Int("candidates", counts.Candidates),
	)
}
