package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"shopsphere/internal/config"
	"shopsphere/internal/db"
	"shopsphere/internal/logger"
	"shopsphere/internal/seed"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Error("database init", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Error("auto-migrate", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), gormDB, log); err != nil {
		log.Error("seed", "error", err)
		os.Exit(1)
	}

	log.Info("seed complete", "path", cfg.SQLitePath)
}
