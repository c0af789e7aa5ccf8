package main

import (
	"flag"

	"onpauling/internal/config"
	"onpauling/internal/database"
	"onpauling/internal/pkg/logger"
	"onpauling/internal/repository"
)

func main() {
	status := flag.Bool("status", false, "print applied and pending migrations instead of migrating (PostgreSQL only)")
	flag.Parse()

	log := logger.New(logger.Config{Format: logger.TEXT, Service: "onpauling-migrate"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}

	if *status {
		if err := database.MigrationStatus(db); err != nil {
			log.Fatal("migration status failed", "error", err)
		}
		return
	}

	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal("migration failed", "error", err)
	}
	log.Info("migrations applied", "dialect", database.Dialect(db))
}
