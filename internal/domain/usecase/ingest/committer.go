package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// batchWriteAttempts bounds the retries of the batch bookkeeping writes that follow the row inserts
const batchWriteAttempts = 3

// Committer persists validated drafts idempotently and hands the new rows to the deduplicator
type Committer struct {
	uow                persistence.UnitOfWork
	validator          *DraftValidator
	idempotencyHandler *IdempotencyHandler
	dedup              usecase.DedupUseCase
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	limits             Limits
}

// NewCommitter creates a new Committer
func NewCommitter(
	uow persistence.UnitOfWork,
	validator *DraftValidator,
	idempotencyHandler *IdempotencyHandler,
	dedup usecase.DedupUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	limits Limits,
) *Committer {
	return &Committer{
		uow:                uow,
		validator:          validator,
		idempotencyHandler: idempotencyHandler,
		dedup:              dedup,
		timeProvider:       timeProvider,
		logger:             logger,
		limits:             limits.withDefaults(),
	}
}

// Commit runs the import pipeline:
// 1. Rejects oversized requests and validates every draft
// 2. Rejects drafts whose source disagrees with the batch
// 3. Creates the batch with rowCount 0
// 4. Builds the skip set of already imported rows
// 5. Inserts the rest in chunks, retrying failed chunks row by row
// 6. Finalizes the batch row count, or deletes the batch if nothing was inserted
// 7. Deduplicates the inserted rows
//
// Once rows are inserted Commit no longer fails: bookkeeping that cannot be completed
// is reported through BatchPending and DedupPending.
func (c *Committer) Commit(ctx context.Context, req usecase.CommitRequest) (*usecase.CommitResult, error) {
	total := len(req.Drafts)

	// Step 1: Boundary and schema checks, nothing is persisted before these pass
	if total > c.limits.MaxRows {
		return nil, errs.NewTooManyRowsError(c.limits.MaxRows, total)
	}
	sourceType, err := resolveBatchMeta(req)
	if err != nil {
		return nil, err
	}
	if err := c.validator.Validate(req.Drafts); err != nil {
		return nil, err
	}

	// Step 2: Anti-spoofing
	for i := range req.Drafts {
		if req.Drafts[i].Source != req.Source {
			return nil, errs.NewSourceMismatchError(i, string(req.Source), string(req.Drafts[i].Source))
		}
	}

	if total == 0 {
		return &usecase.CommitResult{}, nil
	}

	// Step 3: Placeholder batch
	now := c.timeProvider.Now()
	batch := entity.NewImportBatch(req.FileName, req.FileSize, req.Source, sourceType, req.WarningCount, now)
	batchRepo := c.uow.GetImportBatchRepository(ctx)
	txnRepo := c.uow.GetTransactionRepository(ctx)

	if err := batchRepo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to create import batch: %w", err)
	}

	// Step 4: Skip set
	fresh, err := c.idempotencyHandler.FilterNew(ctx, txnRepo, req.Source, req.Drafts)
	if err != nil {
		_ = c.discardBatch(ctx, batchRepo, batch.ID)
		return nil, err
	}

	// Step 5: Chunked insert
	inserted, failed := c.insertChunks(ctx, txnRepo, batch.ID, fresh, now)

	result := &usecase.CommitResult{
		RowCount:     len(inserted),
		SkippedCount: total - len(inserted),
		FailedCount:  failed,
	}

	// Step 6: Finalize or drop the batch
	if len(inserted) == 0 {
		if err := c.discardBatch(ctx, batchRepo, batch.ID); err != nil {
			// The empty batch stays visible so the caller can delete it
			result.BatchID = batch.ID
			result.BatchPending = true
		}
		c.logger.Info("Import committed nothing new", map[string]any{
			"file_name":     req.FileName,
			"source":        string(req.Source),
			"skipped":       result.SkippedCount,
			"failed":        failed,
			"batch_pending": result.BatchPending,
		})
		return result, nil
	}
	result.BatchID = batch.ID
	if err := c.finalizeBatch(ctx, batchRepo, batch.ID, len(inserted)); err != nil {
		// Rows stay committed; only the batch's rowCount is stale
		result.BatchPending = true
	}

	// Step 7: Incremental dedup over the new rows only
	candidates := make([]entity.DuplicateCandidate, len(inserted))
	for i, txn := range inserted {
		candidates[i] = txn.Candidate()
	}
	groups, err := c.dedup.Detect(ctx, candidates)
	if err != nil {
		// Rows stay committed; a standalone dedup run completes the work
		c.logger.Error("Dedup after commit failed", map[string]any{
			"batch_id": batch.ID,
			"error":    err.Error(),
		})
		result.DedupPending = true
	}
	result.ProcessedGroups = groups

	c.logger.Info("Import committed", map[string]any{
		"batch_id":         batch.ID,
		"file_name":        req.FileName,
		"source":           string(req.Source),
		"rows":             result.RowCount,
		"skipped":          result.SkippedCount,
		"failed":           failed,
		"processed_groups": groups,
		"batch_pending":    result.BatchPending,
	})

	return result, nil
}

// insertChunks returns the inserted rows and the number of rows whose individual retry failed
func (c *Committer) insertChunks(
	ctx context.Context,
	repo persistence.TransactionRepository,
	batchID string,
	drafts []entity.TransactionDraft,
	now time.Time,
) ([]*entity.Transaction, int) {
	inserted := make([]*entity.Transaction, 0, len(drafts))
	failed := 0

	for start := 0; start < len(drafts); start += c.limits.ChunkSize {
		end := min(start+c.limits.ChunkSize, len(drafts))

		chunk := make([]*entity.Transaction, 0, end-start)
		for _, d := range drafts[start:end] {
			chunk = append(chunk, entity.NewTransaction(d, batchID, now))
		}

		err := repo.CreateMany(ctx, chunk)
		if err == nil {
			inserted = append(inserted, chunk...)
			continue
		}

		c.logger.Warn("Chunk insert failed, retrying rows individually", map[string]any{
			"batch_id":   batchID,
			"chunk_size": len(chunk),
			"error":      err.Error(),
		})

		for _, txn := range chunk {
			txn.ID = 0
			if err := repo.Create(ctx, txn); err != nil {
				failed++
				fields := map[string]any{
					"batch_id":      batchID,
					"source_row_id": txn.SourceRowID,
					"error":         err.Error(),
				}
				if errs.IsDuplicateTransactionError(err) {
					c.logger.Debug("Row already imported", fields)
				} else {
					c.logger.Warn("Row insert failed", fields)
				}
				continue
			}
			inserted = append(inserted, txn)
		}
	}

	return inserted, failed
}

// finalizeBatch records the inserted row count on the batch
func (c *Committer) finalizeBatch(ctx context.Context, repo persistence.ImportBatchRepository, id string, rows int) error {
	err := c.retryBatchWrite(ctx, "update row count", id, func() error {
		return repo.UpdateRowCount(ctx, id, rows)
	})
	if err != nil {
		c.logger.Error("Failed to finalize import batch", map[string]any{
			"batch_id": id,
			"rows":     rows,
			"error":    err.Error(),
		})
	}
	return err
}

// discardBatch removes a batch that ended up with no rows
func (c *Committer) discardBatch(ctx context.Context, repo persistence.ImportBatchRepository, id string) error {
	err := c.retryBatchWrite(ctx, "delete", id, func() error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		c.logger.Error("Failed to delete empty import batch", map[string]any{
			"batch_id": id,
			"error":    err.Error(),
		})
	}
	return err
}

// retryBatchWrite runs fn up to batchWriteAttempts times, stopping early once ctx is done
func (c *Committer) retryBatchWrite(ctx context.Context, operation, id string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= batchWriteAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		c.logger.Warn("Import batch write failed", map[string]any{
			"operation": operation,
			"batch_id":  id,
			"attempt":   attempt,
			"error":     err.Error(),
		})
		if ctx.Err() != nil {
			break
		}
	}
	return err
}

// resolveBatchMeta checks the declared source and fills a missing source type
func resolveBatchMeta(req usecase.CommitRequest) (entity.SourceType, error) {
	if !entity.IsValidSource(string(req.Source)) {
		return "", fmt.Errorf("%w: %q", errs.ErrUnsupportedSource, req.Source)
	}

	expected, _ := entity.FormatOf(req.Source)
	switch {
	case req.SourceType == "":
		return expected, nil
	case req.SourceType != expected:
		return "", fmt.Errorf("%w: %s exports are %s, not %s", errs.ErrUnsupportedFormat, req.Source, expected, req.SourceType)
	default:
		return req.SourceType, nil
	}
}
