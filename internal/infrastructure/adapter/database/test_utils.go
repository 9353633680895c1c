package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	timeprovider "github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing against a private in-memory database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a migrated in-memory SQLite database that is closed when
// the test ends. A nil timeProvider reports calendar days in UTC+8.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider(time.FixedZone("CST", 8*3600))
	}

	config := &Config{
		Driver:          DriverSQLite,
		Path:            MemoryPath,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 0,
		ConnMaxIdleTime: 0,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent", // Silent logging in tests by default
		RetryAttempts:   1,        // One attempt for tests to fail fast
		RetryDelay:      0,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying connection
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// UnitOfWork returns a unit of work over the test database
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}

// TruncateAllTables empties every application table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	for _, table := range []string{"transactions", "import_batches"} {
		if err := m.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
