package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages partial and PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates the indexes behind dedup lookups and listings.
// Both PostgreSQL and SQLite accept partial indexes.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced indexes", map[string]any{
		"dialect": m.db.Dialector.Name(),
	})
	db := m.db.WithContext(ctx)

	// Group lookups compare the stored, already normalized counterparty
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_group_lookup
		ON transactions (amount, direction, counterparty, occurred_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create group lookup index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Default listings hide secondaries
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_primary_rows
		ON transactions (occurred_at, id)
		WHERE is_duplicate = false
	`).Error; err != nil {
		m.logger.Error("Failed to create primary rows partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if !m.isPostgres() {
		return nil
	}

	// BRIN suits append-mostly temporal data
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)
	db := m.db.WithContext(ctx)

	// Dedup rewrites flag columns in place
	if err := db.Exec(`
		ALTER TABLE transactions SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := db.Exec(`
		ALTER TABLE transactions ALTER COLUMN counterparty SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for counterparty", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
