package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Don't return error, just log it or continue
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads the yaml file named after env from the first matching path
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	// Add config paths
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set the environment in the config
	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil // Successfully loaded .env file
			} else {
				lastError = err
			}
		}
	}

	// Return the last error encountered if no .env file was successfully loaded
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Non-critical server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 30)       // seconds, uploads can be slow
	v.SetDefault("server.writeTimeout", 60)      // seconds, commit + dedup of a large batch
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "bill-processor.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 30)    // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.slowQuery", 200) // milliseconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// Ingest defaults
	v.SetDefault("ingest.maxFileBytes", 10<<20)
	v.SetDefault("ingest.maxRows", 5000)
	v.SetDefault("ingest.chunkSize", 500)
	v.SetDefault("ingest.timeZone", "Asia/Shanghai")

	// Dedup defaults
	v.SetDefault("dedup.preferredSource", "alipay")
	v.SetDefault("dedup.maxCandidates", 100000)
}

// getEnvironment determines the environment to use based on BP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("BP_ENV")
	if env == "" {
		// Default to development if not specified
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
// This function prioritizes environment variables over configuration file values
func processEnvOverrides(v *viper.Viper) {
	// Database sensitive information
	if dbHost := os.Getenv("BP_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("BP_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("BP_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("BP_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("BP_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if dbDriver := os.Getenv("BP_DB_DRIVER"); dbDriver != "" {
		v.Set("database.driver", dbDriver)
	}
	if dbPath := os.Getenv("BP_DB_PATH"); dbPath != "" {
		v.Set("database.path", dbPath)
	}
	if sslMode := os.Getenv("BP_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}

	// Database performance settings
	if maxOpenConns := getEnvInt("BP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("BP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if connMaxLifetime := getEnvInt("BP_DB_CONN_MAX_LIFETIME_MINUTES", 0); connMaxLifetime > 0 {
		v.Set("database.connMaxLifetime", connMaxLifetime)
	}
	if connMaxIdleTime := getEnvInt("BP_DB_CONN_MAX_IDLE_TIME_MINUTES", 0); connMaxIdleTime > 0 {
		v.Set("database.connMaxIdleTime", connMaxIdleTime)
	}
	if queryTimeout := getEnvInt("BP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("BP_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if retryDelay := getEnvInt("BP_DB_RETRY_DELAY_SECONDS", -1); retryDelay >= 0 {
		v.Set("database.retryDelay", retryDelay)
	}
	if slowQuery := getEnvInt("BP_DB_SLOW_QUERY_MS", -1); slowQuery >= 0 {
		v.Set("database.slowQuery", slowQuery)
	}

	// Server settings
	if serverHost := os.Getenv("BP_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("BP_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("BP_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	// Ingest settings
	if maxFileBytes := getEnvInt("BP_INGEST_MAX_FILE_BYTES", 0); maxFileBytes > 0 {
		v.Set("ingest.maxFileBytes", maxFileBytes)
	}
	if maxRows := getEnvInt("BP_INGEST_MAX_ROWS", 0); maxRows > 0 {
		v.Set("ingest.maxRows", maxRows)
	}
	if chunkSize := getEnvInt("BP_INGEST_CHUNK_SIZE", 0); chunkSize > 0 {
		v.Set("ingest.chunkSize", chunkSize)
	}
	if timeZone := os.Getenv("BP_INGEST_TIME_ZONE"); timeZone != "" {
		v.Set("ingest.timeZone", timeZone)
	}

	// Dedup settings
	if preferred := os.Getenv("BP_DEDUP_PREFERRED_SOURCE"); preferred != "" {
		v.Set("dedup.preferredSource", preferred)
	}
	if maxCandidates := getEnvInt("BP_DEDUP_MAX_CANDIDATES", 0); maxCandidates > 0 {
		v.Set("dedup.maxCandidates", maxCandidates)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	// Convert seconds to time.Duration
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	// Convert milliseconds to time.Duration
	config.Database.SlowQuery = time.Duration(config.Database.SlowQuery) * time.Millisecond
}
