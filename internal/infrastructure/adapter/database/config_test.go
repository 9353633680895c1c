package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPostgres() *Config {
	return &Config{
		Driver:       DriverPostgres,
		Host:         "localhost",
		Port:         5432,
		Username:     "bill",
		Password:     "secret",
		Database:     "bills",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: 5 * time.Second,
		LogLevel:     "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		assert.NoError(t, validPostgres().Validate())

		missingHost := validPostgres()
		missingHost.Host = ""
		assert.ErrorContains(t, missingHost.Validate(), "host")

		badSSL := validPostgres()
		badSSL.SSLMode = "sometimes"
		assert.ErrorContains(t, badSSL.Validate(), "SSL")
	})

	t.Run("SQLite needs only a path", func(t *testing.T) {
		cfg := &Config{
			Driver:       DriverSQLite,
			Path:         "bills.db",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: time.Second,
			LogLevel:     "silent",
		}
		assert.NoError(t, cfg.Validate())

		cfg.Path = " "
		assert.ErrorContains(t, cfg.Validate(), "path")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		cfg := validPostgres()
		cfg.Driver = "oracle"
		assert.ErrorContains(t, cfg.Validate(), "unsupported database driver")
	})

	t.Run("Limits", func(t *testing.T) {
		cfg := validPostgres()
		cfg.QueryTimeout = 0
		assert.Error(t, cfg.Validate())

		cfg = validPostgres()
		cfg.LogLevel = "verbose"
		assert.ErrorContains(t, cfg.Validate(), "log level")

		cfg = validPostgres()
		cfg.SlowQuery = -time.Millisecond
		assert.ErrorContains(t, cfg.Validate(), "slow query")
	})
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=bill password=secret dbname=bills sslmode=disable",
		validPostgres().DSN())

	memory := &Config{Driver: DriverSQLite, Path: MemoryPath}
	assert.True(t, memory.IsMemory())
	assert.Equal(t, MemoryPath, memory.DSN())

	file := &Config{Driver: DriverSQLite, Path: "data/bills.db"}
	assert.False(t, file.IsMemory())
	assert.Equal(t, "data/bills.db?_pragma=busy_timeout%285000%29", file.DSN())

	withQuery := &Config{Driver: DriverSQLite, Path: "bills.db?mode=rwc"}
	assert.Equal(t, "bills.db?mode=rwc&_pragma=busy_timeout%285000%29", withQuery.DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("http"))
	assert.Equal(t, 0, ParsePort("70000"))
}
