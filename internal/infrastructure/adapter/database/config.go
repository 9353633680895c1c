package database

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MemoryPath opens a private in-memory SQLite database
const MemoryPath = ":memory:"

// Config represents database configuration
type Config struct {
	Driver          string        `mapstructure:"db_driver"`
	Host            string        `mapstructure:"db_host"`
	Port            int           `mapstructure:"db_port"`
	Username        string        `mapstructure:"db_username"`
	Password        string        `mapstructure:"db_password"`
	Database        string        `mapstructure:"db_name"`
	Path            string        `mapstructure:"db_path"`
	SSLMode         string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time"`
	QueryTimeout    time.Duration `mapstructure:"db_query_timeout"`
	LogLevel        string        `mapstructure:"db_log_level"`
	RetryAttempts   int           `mapstructure:"db_retry_attempts"`
	RetryDelay      int           `mapstructure:"db_retry_delay"`
	SlowQuery       time.Duration `mapstructure:"db_slow_query"`
}

// DefaultConfig returns a Config with default values
// No sensitive information is hardcoded - all must come from environment variables
func DefaultConfig() *Config {
	config := &Config{
		Driver:          configEnvOrDefault("BP_DB_DRIVER", DriverPostgres),
		Host:            configEnv("BP_DB_HOST"),
		Port:            configEnvAsInt("BP_DB_PORT", 5432),
		Username:        configEnv("BP_DB_USERNAME"),
		Password:        configEnv("BP_DB_PASSWORD"),
		Database:        configEnv("BP_DB_NAME"),
		Path:            configEnv("BP_DB_PATH"),
		SSLMode:         configEnvOrDefault("BP_DB_SSL_MODE", "disable"),
		MaxOpenConns:    configEnvAsInt("BP_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    configEnvAsInt("BP_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(configEnvAsInt("BP_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(configEnvAsInt("BP_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(configEnvAsInt("BP_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        configEnvOrDefault("BP_LOGGER_LEVEL", "info"),
		RetryAttempts:   configEnvAsInt("BP_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      configEnvAsInt("BP_DB_RETRY_DELAY_SECONDS", 5),
		SlowQuery:       time.Duration(configEnvAsInt("BP_DB_SLOW_QUERY_MS", 200)) * time.Millisecond,
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return errors.New("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %d", c.RetryDelay)
	}
	if c.SlowQuery < 0 {
		return fmt.Errorf("slow query threshold must be non-negative, got: %s", c.SlowQuery)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// IsMemory reports whether the config targets an in-memory SQLite database
func (c *Config) IsMemory() bool {
	return c.Driver == DriverSQLite && (c.Path == MemoryPath || strings.Contains(c.Path, "mode=memory"))
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.sqliteDSN()
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// sqliteDSN adds a busy timeout to file databases so concurrent writers wait instead of failing
func (c *Config) sqliteDSN() string {
	if c.IsMemory() || strings.Contains(c.Path, "_pragma=") {
		return c.Path
	}
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_pragma=" + url.QueryEscape("busy_timeout(5000)")
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// Helper functions for environment variables

// configEnv gets a value from environment variables with no default
// Returns an empty string if not found
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
