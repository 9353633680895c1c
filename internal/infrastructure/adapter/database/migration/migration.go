package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.2.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// NewMigrationManagerWithTimeProvider creates a new migration manager with time provider
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)

	// Create migration version table first
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Check current version
	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	// Auto-migrate models
	if err := m.autoMigrateModels(db); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Run custom migrations based on version
	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	// Create basic indexes
	if err := m.createIndexes(db); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create partial and dedup lookup indexes
	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Apply performance tweaks
	if err := m.advancedIndexMgr.CreatePerformanceTweaks(ctx); err != nil {
		m.logger.Error("Failed to apply performance tweaks", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Update migration version
	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // No version found
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	var appliedAt time.Time
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now().UTC()
	} else {
		appliedAt = time.Now().UTC()
	}

	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}

	result := m.db.WithContext(ctx).Create(&migrationVersion)
	return result.Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	// Auto-migrate all models
	return db.AutoMigrate(
		&model.ImportBatch{},
		&model.Transaction{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	// A fresh schema already has every column
	if currentVersion == "" {
		return nil
	}

	// Apply migrations based on current version
	switch currentVersion {
	case "1.0.0":
		if err := m.migrateFrom1_0_0To1_1_0(ctx); err != nil {
			return err
		}
		fallthrough
	case "1.1.0":
		if err := m.migrateFrom1_1_0To1_2_0(ctx); err != nil {
			return err
		}
	}

	return nil
}

// migrateFrom1_0_0To1_1_0 migrates from version 1.0.0 to 1.1.0
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	// 1.0.0 flagged duplicates without recording why
	migration := NewBackfillDuplicateReason(m.db, m.logger)
	return migration.Run(ctx)
}

// migrateFrom1_1_0To1_2_0 migrates from version 1.1.0 to 1.2.0
func (m *MigrationManager) migrateFrom1_1_0To1_2_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.1.0 to v1.2.0", nil)

	// Counterparties are now stored trimmed and compared as stored
	migration := NewNormalizeCounterparty(m.db, m.logger)
	return migration.Run(ctx)
}

// createIndexes creates composite indexes the model tags cannot express
func (m *MigrationManager) createIndexes(db *gorm.DB) error {
	m.logger.Info("Creating database indexes", nil)

	// Batch deletion and batch-scoped listing
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_batch_occurred ON transactions (import_batch_id, occurred_at)").Error; err != nil {
		return err
	}

	// Batch history filtered by source
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_import_batches_source_created ON import_batches (source, created_at)").Error; err != nil {
		return err
	}

	return nil
}
