package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlMaxOpenConns    = 25
	mysqlMaxIdleConns    = 5
	mysqlConnMaxLifetime = 30 * time.Minute
)

// NewMySQL opens a pooled MySQL connection. Expense and approval timestamps
// are DATETIME columns, so the DSN must let the driver scan them into time.Time.
func NewMySQL(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if !strings.Contains(strings.ToLower(dsn), "parsetime=true") {
		return nil, fmt.Errorf("connect mysql: dsn must set parseTime=true")
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 255,
	}), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(mysqlMaxOpenConns)
	sqlDB.SetMaxIdleConns(mysqlMaxIdleConns)
	sqlDB.SetConnMaxLifetime(mysqlConnMaxLifetime)

	return db, nil
}
