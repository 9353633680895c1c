package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeImportBatch represents the import batch entity
	EntityTypeImportBatch EntityType = "import_batch"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainErr.ErrDuplicateTransaction
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return domainErr.ErrConstraintViolation
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateTransaction

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "not null constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed"):
		return domainErr.ErrDatabaseConnection

	// Lock contention and serialization failures surface as unavailability
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "database is locked"):
		return fmt.Errorf("%w: %s operation conflicted with a concurrent writer", domainErr.ErrDatabaseConnection, operation)

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	// Default error
	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeImportBatch:
			return domainErr.ErrBatchNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
