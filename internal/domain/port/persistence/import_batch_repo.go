package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
)

// ImportBatchRepository persists the record of each file import
type ImportBatchRepository interface {
	// Create stores a placeholder batch
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, batch *entity.ImportBatch) error

	// UpdateRowCount sets the final inserted count
	//
	// Possible errors:
	// - ErrBatchNotFound: If the batch doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateRowCount(ctx context.Context, id string, rowCount int) error

	// Delete removes a batch record
	//
	// Possible errors:
	// - ErrBatchNotFound: If the batch doesn't exist
	Delete(ctx context.Context, id string) error

	// GetByID retrieves one batch
	//
	// Possible errors:
	// - ErrBatchNotFound: If the batch doesn't exist
	GetByID(ctx context.Context, id string) (*entity.ImportBatch, error)

	// List returns batches newest first
	List(ctx context.Context, limit, offset int) ([]*entity.ImportBatch, error)
}
