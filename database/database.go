// Package database mở kết nối PostgreSQL qua gorm và quản lý schema bằng golang-migrate
package database

import (
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL using gorm
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"host":     cfg.Host,
			"port":     cfg.Port,
			"user":     cfg.User,
			"database": cfg.Name,
			"sslmode":  cfg.SSLMode,
		})
	}
	return db, nil
}

// Close đóng kết nối sql.DB bên dưới gorm
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to get underlying sql.DB from GORM")
	}
	return sqlDB.Close()
}
