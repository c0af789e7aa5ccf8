package database

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the versioned SQL migrations on PostgreSQL. SQLite
// development databases get their schema from the gorm models instead.
func Migrate(db *gorm.DB, models ...any) error {
	if Dialect(db) != DialectPostgres {
		if err := db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(DialectPostgres); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// MigrationStatus prints applied/pending migrations (PostgreSQL only).
func MigrationStatus(db *gorm.DB) error {
	if Dialect(db) != DialectPostgres {
		return fmt.Errorf("migration status is only tracked on PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(DialectPostgres); err != nil {
		return err
	}
	return goose.Status(sqlDB, "migrations")
}
