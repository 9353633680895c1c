package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialector returns the GORM dialector for the configured driver
func Dialector(config *Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

// IsPostgres reports whether db talks to PostgreSQL
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == DriverPostgres
}

// configurePool applies pool settings. SQLite gets a single long-lived connection: writes
// are serialized by the engine anyway and an in-memory database lives only as long as its
// connection.
func configurePool(sqlDB *sql.DB, config *Config) {
	if config.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		return
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)
}

// ping tests the connection
func ping(sqlDB *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
