package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ingest      IngestConfig   `mapstructure:"ingest"`
	Dedup       DedupConfig    `mapstructure:"dedup"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	Path            string        `mapstructure:"path"` // sqlite file, ":memory:" for tests
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SlowQuery       time.Duration `mapstructure:"slowQuery"`  // milliseconds, 0 disables slow query warnings
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// IngestConfig contains file import settings
type IngestConfig struct {
	MaxFileBytes int64  `mapstructure:"maxFileBytes"`
	MaxRows      int    `mapstructure:"maxRows"`
	ChunkSize    int    `mapstructure:"chunkSize"`
	TimeZone     string `mapstructure:"timeZone"` // IANA zone that defines calendar days
}

// Location loads the configured zone
func (c IngestConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid ingest.timeZone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// DedupConfig contains cross-source dedup settings
type DedupConfig struct {
	PreferredSource string `mapstructure:"preferredSource"`
	MaxCandidates   int    `mapstructure:"maxCandidates"`
}

// Validate checks the import and dedup sections
func (c *Config) Validate() error {
	if c.Ingest.MaxFileBytes <= 0 {
		return fmt.Errorf("ingest.maxFileBytes must be positive, got: %d", c.Ingest.MaxFileBytes)
	}
	if c.Ingest.MaxRows <= 0 {
		return fmt.Errorf("ingest.maxRows must be positive, got: %d", c.Ingest.MaxRows)
	}
	if c.Ingest.ChunkSize <= 0 {
		return fmt.Errorf("ingest.chunkSize must be positive, got: %d", c.Ingest.ChunkSize)
	}
	if _, err := c.Ingest.Location(); err != nil {
		return err
	}
	if !entity.IsValidSource(c.Dedup.PreferredSource) {
		return fmt.Errorf("dedup.preferredSource %q is not a supported source", c.Dedup.PreferredSource)
	}
	if c.Dedup.MaxCandidates <= 0 {
		return fmt.Errorf("dedup.maxCandidates must be positive, got: %d", c.Dedup.MaxCandidates)
	}
	return nil
}
