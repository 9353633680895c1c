package migration

import (
	"context"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const normalizeBatchSize = 500

// NormalizeCounterparty rewrites counterparties stored with surrounding whitespace.
// Rows imported before 1.2.0 kept tabs and full-width spaces that SQL TRIM does not strip,
// so their group lookups missed. Affected days need a standalone dedup run afterwards.
type NormalizeCounterparty struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeCounterparty creates a new migration instance
func NewNormalizeCounterparty(db *gorm.DB, logger coreport.Logger) *NormalizeCounterparty {
	return &NormalizeCounterparty{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *NormalizeCounterparty) Run(ctx context.Context) error {
	m.logger.Info("Normalizing stored counterparties", nil)

	db := m.db.WithContext(ctx)

	// The 1.1.0 lookup index was built on TRIM(counterparty); it is recreated on the plain column
	if err := db.Exec("DROP INDEX IF EXISTS idx_transactions_group_lookup").Error; err != nil {
		m.logger.Error("Failed to drop group lookup index", map[string]any{"error": err.Error()})
		return err
	}

	updated := 0

	var rows []model.Transaction
	result := db.Model(&model.Transaction{}).
		Select("id", "counterparty").
		FindInBatches(&rows, normalizeBatchSize, func(_ *gorm.DB, _ int) error {
			for _, row := range rows {
				normalized := entity.NormalizeCounterparty(row.Counterparty)
				if normalized == row.Counterparty {
					continue
				}
				if err := db.Model(&model.Transaction{}).
					Where("id = ?", row.ID).
					Update("counterparty", normalized).Error; err != nil {
					return err
				}
				updated++
			}
			return nil
		})
	if result.Error != nil {
		m.logger.Error("Failed to normalize counterparties", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Successfully normalized counterparties", map[string]any{
		"rows": updated,
	})
	return nil
}
