package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/parser"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// Service is the ingest use case implementation that ties together
// intake, validation, idempotent commit and deduplication
type Service struct {
	uow          persistence.UnitOfWork
	intake       *Intake
	committer    *Committer
	dedup        usecase.DedupUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(
	uow persistence.UnitOfWork,
	registry parser.Registry,
	dedup usecase.DedupUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	limits Limits,
) *Service {
	logger = logger.With(map[string]any{"component": "ingest"})
	limits = limits.withDefaults()

	committer := NewCommitter(
		uow,
		NewDraftValidator(timeProvider),
		NewIdempotencyHandler(limits.ChunkSize),
		dedup,
		timeProvider,
		logger,
		limits,
	)

	return &Service{
		uow:          uow,
		intake:       NewIntake(registry, limits, logger),
		committer:    committer,
		dedup:        dedup,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.IngestUseCase = (*Service)(nil)

// Parse converts a file into drafts and warnings without persisting anything
func (s *Service) Parse(ctx context.Context, req usecase.ParseRequest) (*entity.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.intake.Parse(req)
}

// Commit persists client-supplied drafts
func (s *Service) Commit(ctx context.Context, req usecase.CommitRequest) (*usecase.CommitResult, error) {
	return s.committer.Commit(ctx, req)
}

// Import parses a file and commits the resulting drafts in one call
func (s *Service) Import(ctx context.Context, req usecase.ParseRequest) (*usecase.ImportResult, error) {
	parsed, err := s.Parse(ctx, req)
	if err != nil {
		return nil, err
	}

	committed, err := s.committer.Commit(ctx, usecase.CommitRequest{
		FileName:     req.FileName,
		FileSize:     int64(len(req.Raw)),
		Source:       parsed.Source,
		SourceType:   parsed.SourceType,
		Drafts:       parsed.Drafts,
		WarningCount: len(parsed.Warnings),
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ImportResult{
		CommitResult: *committed,
		Source:       parsed.Source,
		SourceType:   parsed.SourceType,
		WarningCount: len(parsed.Warnings),
		Warnings:     parsed.Warnings,
	}, nil
}

// ListBatches returns import batches newest first
func (s *Service) ListBatches(ctx context.Context, limit, offset int) ([]*entity.ImportBatch, error) {
	return s.uow.GetImportBatchRepository(ctx).List(ctx, limit, offset)
}

// GetBatch returns one import batch
func (s *Service) GetBatch(ctx context.Context, id string) (*entity.ImportBatch, error) {
	return s.uow.GetImportBatchRepository(ctx).GetByID(ctx, id)
}

// DeleteBatch removes a batch and its rows in one transaction. Every duplicate group that
// touched the batch is cleared first so no secondary is left pointing at a removed primary,
// then dedup is re-derived over the affected calendar days.
func (s *Service) DeleteBatch(ctx context.Context, id string) (*usecase.BatchDeletion, error) {
	if _, err := s.GetBatch(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{
		ImportBatchID:     id,
		IncludeDuplicates: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load batch rows: %w", err)
	}

	deletion := &usecase.BatchDeletion{BatchID: id}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := s.deleteBatchTx(txCtx, id, deletion); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Failed to roll back batch deletion", map[string]any{
				"batch_id": id,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit batch deletion: %w", err)
	}

	if from, to, ok := s.affectedRange(rows); ok {
		result, err := s.dedup.Run(ctx, usecase.DedupRequest{StartDate: &from, EndDate: &to})
		if err != nil {
			s.logger.Error("Dedup after batch deletion failed", map[string]any{
				"batch_id": id,
				"error":    err.Error(),
			})
			deletion.DedupPending = true
		} else {
			deletion.ProcessedGroups = result.ProcessedGroups
		}
	}

	s.logger.Info("Import batch deleted", map[string]any{
		"batch_id":         id,
		"deleted_rows":     deletion.DeletedRows,
		"cleared_groups":   deletion.ClearedGroups,
		"processed_groups": deletion.ProcessedGroups,
	})

	return deletion, nil
}

func (s *Service) deleteBatchTx(txCtx context.Context, id string, deletion *usecase.BatchDeletion) error {
	txnRepo := s.uow.GetTransactionRepository(txCtx)

	groupIDs, err := txnRepo.GroupIDsForBatch(txCtx, id)
	if err != nil {
		return fmt.Errorf("failed to load batch groups: %w", err)
	}
	for _, groupID := range groupIDs {
		if err := txnRepo.ClearDuplicateGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("failed to clear group %s: %w", groupID, err)
		}
	}
	deletion.ClearedGroups = len(groupIDs)

	deleted, err := txnRepo.DeleteByBatch(txCtx, id)
	if err != nil {
		return fmt.Errorf("failed to delete batch rows: %w", err)
	}
	deletion.DeletedRows = deleted

	return s.uow.GetImportBatchRepository(txCtx).Delete(txCtx, id)
}

// affectedRange spans the calendar days of rows
func (s *Service) affectedRange(rows []*entity.Transaction) (time.Time, time.Time, bool) {
	if len(rows) == 0 {
		return time.Time{}, time.Time{}, false
	}

	first, last := rows[0].OccurredAt, rows[0].OccurredAt
	for _, row := range rows[1:] {
		if row.OccurredAt.Before(first) {
			first = row.OccurredAt
		}
		if row.OccurredAt.After(last) {
			last = row.OccurredAt
		}
	}

	loc := s.timeProvider.Location()
	from, _ := entity.DayBounds(first, loc)
	_, to := entity.DayBounds(last, loc)
	return from, to, true
}

// ListTransactions returns persisted rows for consumers
func (s *Service) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, errs.ErrInvalidDateRange
	}
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}
