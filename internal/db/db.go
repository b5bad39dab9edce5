// Package db opens the GORM connection backing the record store.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"expensetracker/internal/config"
	"expensetracker/internal/model"
)

// Open connects to the configured driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newLogger(cfg.DBLog)}
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return NewSQLite(cfg.SQLitePath, gormCfg)
	case config.DriverMySQL:
		return NewMySQL(cfg.MySQLDSN, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Expense{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func newLogger(enabled bool) logger.Interface {
	level := logger.Silent
	if enabled {
		level = logger.Info
	}
	return logger.New(log.New(os.Stderr, "", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
