package database

import (
	"embed"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate runs database migrations using golang-migrate over the embedded SQL files
func Migrate(db *gorm.DB, dbName string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to get underlying sql.DB from GORM")
	}

	driver, err := pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{
		DatabaseName: dbName,
	})
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create postgres driver for migrations")
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create embedded source driver")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to create migrate instance")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Migrations are up to date")
			return nil
		}
		return goerrorkit.WrapWithMessage(err, "Failed to run migrations").WithData(map[string]interface{}{
			"database": dbName,
		})
	}

	log.Println("Migrations completed successfully")
	return nil
}
