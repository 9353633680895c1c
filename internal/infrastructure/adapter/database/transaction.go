package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	classifier   *repository.ErrorClassifier
	metrics      *MetricsCollector
	retryConfig  RetryConfig
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	metrics := NewMetricsCollector(logger, timeProvider, DefaultConfig().SlowQuery)
	return newUnitOfWork(db, logger, timeProvider, NewErrorMapper(), metrics)
}

func newUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	errorMapper *ErrorMapper,
	metrics *MetricsCollector,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  errorMapper,
		classifier:   repository.NewErrorClassifier(),
		metrics:      metrics,
		retryConfig:  DefaultRetryConfig(),
	}
}

// Begin starts a new database transaction. PostgreSQL transactions run SERIALIZABLE;
// SQLite transactions are serializable by construction.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	var tx *gorm.DB

	err := RetryOnTransientError(ctx, u.retryConfig, func() error {
		tx = u.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return tx.Error
		}

		if IsPostgres(u.db) {
			if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to set transaction isolation level: %w", err)
			}
		}
		return nil
	}, u.classifier, u.logger)

	if err != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("%w: failed to begin transaction: %v", u.errorMapper.MapError(err, "begin"), err)
	}

	u.logger.Debug("Database transaction started", map[string]any{"trace_id": coreport.TraceID(ctx)})

	// Store transaction in context
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	_, err := u.metrics.MeasureQuery(ctx, "commit", func() (int64, error) {
		return 0, tx.Commit().Error
	})
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: failed to commit transaction: %v", u.errorMapper.MapError(err, "commit"), err)
	}

	return nil
}

// Rollback rolls back the current transaction with improved error handling
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	// Execute rollback and capture error
	err := tx.Rollback().Error

	// If the error indicates the transaction was already committed or rolled back,
	// log it as a warning but don't return an error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	// For other errors, log and return
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewTransactionRepository(db, u.logger)
}

// GetImportBatchRepository returns an import batch repository in the current transaction
func (u *UnitOfWork) GetImportBatchRepository(ctx context.Context) persistence.ImportBatchRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewImportBatchRepository(db, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
