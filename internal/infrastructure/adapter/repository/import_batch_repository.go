package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
)

// ImportBatchRepository implements ImportBatchRepository interface using GORM
type ImportBatchRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewImportBatchRepository creates a new ImportBatchRepository instance
func NewImportBatchRepository(db *gorm.DB, logger coreport.Logger) *ImportBatchRepository {
	return &ImportBatchRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.ImportBatchRepository = (*ImportBatchRepository)(nil)

func (r *ImportBatchRepository) modelToEntity(m *model.ImportBatch) *entity.ImportBatch {
	return &entity.ImportBatch{
		ID:           m.ID,
		FileName:     m.FileName,
		FileSize:     m.FileSize,
		Source:       entity.Source(m.Source),
		SourceType:   entity.SourceType(m.SourceType),
		RowCount:     m.RowCount,
		WarningCount: m.WarningCount,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *ImportBatchRepository) handleDatabaseError(operation string, err error, batchID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrBatchNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"batch_id": batchID,
		"error":    err.Error(),
	})
	return r.errorClassifier.ToDomainError(err, operation)
}

// Create stores a placeholder batch
func (r *ImportBatchRepository) Create(ctx context.Context, batch *entity.ImportBatch) error {
	m := model.ImportBatch{
		ID:           batch.ID,
		FileName:     batch.FileName,
		FileSize:     batch.FileSize,
		Source:       string(batch.Source),
		SourceType:   string(batch.SourceType),
		RowCount:     batch.RowCount,
		WarningCount: batch.WarningCount,
		CreatedAt:    batch.CreatedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating import batch", err, batch.ID)
	}

	r.logger.Debug("Import batch created", map[string]any{
		"batch_id": batch.ID,
		"source":   string(batch.Source),
	})
	return nil
}

// UpdateRowCount sets the final inserted count
func (r *ImportBatchRepository) UpdateRowCount(ctx context.Context, id string, rowCount int) error {
	result := r.db.WithContext(ctx).Model(&model.ImportBatch{}).
		Where("id = ?", id).
		Update("row_count", rowCount)

	if result.Error != nil {
		return r.handleDatabaseError("updating batch row count", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBatchNotFound
	}
	return nil
}

// Delete removes a batch record
func (r *ImportBatchRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ImportBatch{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting import batch", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBatchNotFound
	}
	return nil
}

// GetByID retrieves one batch
func (r *ImportBatchRepository) GetByID(ctx context.Context, id string) (*entity.ImportBatch, error) {
	var m model.ImportBatch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("retrieving import batch", err, id)
	}
	return r.modelToEntity(&m), nil
}

// List returns batches newest first
func (r *ImportBatchRepository) List(ctx context.Context, limit, offset int) ([]*entity.ImportBatch, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var models []model.ImportBatch
	if err := query.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing import batches", err, "")
	}

	batches := make([]*entity.ImportBatch, len(models))
	for i := range models {
		batches[i] = r.modelToEntity(&models[i])
	}
	return batches, nil
}
