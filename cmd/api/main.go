package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/dedup"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/ingest"

	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/parser"
	timeProvider "github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Calendar days for dedup and date filters are defined in this zone
	loc, err := cfg.Ingest.Location()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	tp := timeProvider.NewRealTimeProvider(loc)

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work over the transaction and batch repositories
	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	deduplicator := dedup.NewDeduplicator(uow, tp, appLogger, dedup.Config{
		PreferredSource: entity.Source(cfg.Dedup.PreferredSource),
		MaxCandidates:   cfg.Dedup.MaxCandidates,
	})
	ingestService := ingest.NewIngestService(
		uow,
		parser.NewDefaultRegistry(loc),
		deduplicator,
		tp,
		appLogger,
		ingest.Limits{
			MaxFileBytes: cfg.Ingest.MaxFileBytes,
			MaxRows:      cfg.Ingest.MaxRows,
			ChunkSize:    cfg.Ingest.ChunkSize,
		},
	)

	// Initialize Gin router
	router := gin.New()
	router.MaxMultipartMemory = cfg.Ingest.MaxFileBytes

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, tp)

	// Setup routes
	routes.SetupRoutes(router, routes.Handlers{
		Import:      handler.NewImportHandler(ingestService, appLogger, cfg.Ingest.MaxFileBytes),
		Batch:       handler.NewBatchHandler(ingestService, appLogger, loc),
		Transaction: handler.NewTransactionHandler(ingestService, appLogger, loc),
		Dedup:       handler.NewDedupHandler(deduplicator, appLogger, loc),
		Health:      handler.NewHealthHandler(dbManager),
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":             server.Addr,
			"env":              cfg.Environment,
			"driver":           cfg.Database.Driver,
			"time_zone":        loc.String(),
			"preferred_source": cfg.Dedup.PreferredSource,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for; in-flight commits finish before the database closes
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or BP_DB_PATH environment variable)")
		}
	case database.DriverPostgres:
		missingConfigs = append(missingConfigs, missingPostgresSettings(cfg)...)
	default:
		return fmt.Errorf("invalid database.driver value: %q, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if cfg.Database.Driver == database.DriverPostgres {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}

// missingPostgresSettings lists connection settings absent from both the file and the environment
func missingPostgresSettings(cfg *config.Config) []string {
	var missing []string

	required := []struct {
		value string
		key   string
		env   string
	}{
		{cfg.Database.Host, "database.host", "BP_DB_HOST"},
		{cfg.Database.Port, "database.port", "BP_DB_PORT"},
		{cfg.Database.Username, "database.username", "BP_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "BP_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "BP_DB_NAME"},
	}

	for _, r := range required {
		if r.value != "" {
			continue
		}
		if cfg.Environment == config.Production && os.Getenv(r.env) == "" {
			missing = append(missing, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		} else if cfg.Environment != config.Production {
			missing = append(missing, r.key)
		}
	}

	return missing
}
