package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
)

// ParseRequest carries an uploaded file and the client's source/format hints
type ParseRequest struct {
	FileName string
	Raw      []byte
	Source   entity.Source     // optional
	Format   entity.SourceType // optional
}

// CommitRequest is the batch metadata plus the drafts to persist
type CommitRequest struct {
	FileName     string
	FileSize     int64
	Source       entity.Source
	SourceType   entity.SourceType
	Drafts       []entity.TransactionDraft
	WarningCount int
}

// CommitResult reports what a commit persisted.
// RowCount + SkippedCount always equals the number of drafts submitted.
//
// BatchPending means the batch record could not be brought in line with its rows:
// either its rowCount is stale or, when RowCount is 0, the empty batch could not be
// deleted. BatchID names the batch in both cases.
type CommitResult struct {
	BatchID         string
	RowCount        int
	SkippedCount    int
	FailedCount     int
	ProcessedGroups int
	DedupPending    bool
	BatchPending    bool
}

// ImportResult is a parse followed by a commit
type ImportResult struct {
	CommitResult
	Source       entity.Source
	SourceType   entity.SourceType
	WarningCount int
	Warnings     []entity.ParseWarning
}

// BatchDeletion reports the effect of removing an import batch
type BatchDeletion struct {
	BatchID         string
	DeletedRows     int64
	ClearedGroups   int
	ProcessedGroups int
	DedupPending    bool
}

// IngestUseCase defines the file import operations
type IngestUseCase interface {
	// Parse converts a file into drafts and warnings without persisting
	Parse(ctx context.Context, req ParseRequest) (*entity.ParseResult, error)

	// Commit validates and persists drafts idempotently, then deduplicates the new rows
	Commit(ctx context.Context, req CommitRequest) (*CommitResult, error)

	// Import parses and commits in one call
	Import(ctx context.Context, req ParseRequest) (*ImportResult, error)

	// ListBatches returns import batches newest first
	ListBatches(ctx context.Context, limit, offset int) ([]*entity.ImportBatch, error)

	// GetBatch returns one import batch
	GetBatch(ctx context.Context, id string) (*entity.ImportBatch, error)

	// DeleteBatch removes a batch and its rows, then re-derives dedup for the affected days
	DeleteBatch(ctx context.Context, id string) (*BatchDeletion, error)

	// ListTransactions returns persisted rows, non-duplicates only unless asked otherwise
	ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error)
}
