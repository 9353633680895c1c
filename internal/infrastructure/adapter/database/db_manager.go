package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database/migration"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	metrics           *MetricsCollector
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	healthChecker     *HealthChecker
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	logger = logger.With(map[string]any{"component": "database"})
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider, config.SlowQuery),
		timeProvider: timeProvider,
	}
}

// Connect establishes a database connection with optimized settings
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
		"path":   m.config.Path,
	})

	dialector, err := Dialector(m.config)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLoggerWithTimeProvider(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQuery),
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
		// Prepared statements pin a connection per statement, which the single SQLite
		// connection cannot afford inside a transaction
		PrepareStmt:    m.config.Driver == DriverPostgres,
		TranslateError: true,
	}

	attempts := max(m.config.RetryAttempts, 1)
	var gormDB *gorm.DB

	// Setup retry mechanism for initial connection
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   fmt.Sprintf("%d", m.config.RetryDelay) + "s",
			})
			time.Sleep(time.Duration(m.config.RetryDelay) * time.Second)
		}

		gormDB, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect after %d attempts: %v", m.errorMapper.MapError(err, "connect"), attempts, err)
	}

	// Configure connection pooling
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	configurePool(sqlDB, m.config)

	if err := ping(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"max_open_conns":  sqlDB.Stats().MaxOpenConnections,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManagerWithTimeProvider(gormDB, m.logger, m.timeProvider)
	m.healthChecker = NewHealthChecker(gormDB, m.logger, m.timeProvider)

	// In-memory databases live and die with the test that opened them
	if !m.config.IsMemory() {
		m.connectionMonitor = NewConnectionPoolMonitor(m, m.logger)
		if err := m.connectionMonitor.Start(30 * time.Second); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
		}
	}

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	// Stop connection pool monitoring
	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Health pings the database and reports pool and query statistics
func (m *Manager) Health(ctx context.Context) HealthStatus {
	if m.healthChecker == nil {
		return HealthStatus{Healthy: false, Error: "database is not connected"}
	}
	status := m.healthChecker.Check(ctx)
	status.Queries = m.metrics.Stats()
	return status
}

// Metrics returns the collector shared by every unit of work of this manager
func (m *Manager) Metrics() *MetricsCollector {
	return m.metrics
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return newUnitOfWork(m.db, m.logger, m.timeProvider, m.errorMapper, m.metrics)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
