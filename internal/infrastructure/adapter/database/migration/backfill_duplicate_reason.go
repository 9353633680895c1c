package migration

import (
	"context"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BackfillDuplicateReason adds the duplicate_reason column and fills it for rows that
// were flagged before the column existed
type BackfillDuplicateReason struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillDuplicateReason creates a new migration instance
func NewBackfillDuplicateReason(db *gorm.DB, logger coreport.Logger) *BackfillDuplicateReason {
	return &BackfillDuplicateReason{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillDuplicateReason) Run(ctx context.Context) error {
	m.logger.Info("Backfilling duplicate_reason on transactions", nil)

	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	// Add the column if it doesn't exist
	if !migrator.HasColumn(&model.Transaction{}, "DuplicateReason") {
		if err := migrator.AddColumn(&model.Transaction{}, "DuplicateReason"); err != nil {
			m.logger.Error("Failed to add duplicate_reason column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := db.Model(&model.Transaction{}).
		Where("is_duplicate = ? AND duplicate_reason IS NULL", true).
		Update("duplicate_reason", entity.DuplicateReasonCrossSource)
	if result.Error != nil {
		m.logger.Error("Failed to backfill duplicate_reason", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Successfully backfilled duplicate_reason", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}
