package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidationFailed     = 4001
	CodeInvalidAmount        = 4002
	CodeSourceMismatch       = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeUnsupportedSource    = 4006
	CodeUnsupportedFormat    = 4007
	CodeInvalidDateRange     = 4008
	CodeInvalidRequest       = 4009
	CodeNotFound             = 4040
	CodeFileTooLarge         = 4130
	CodeTooManyRows          = 4131
	CodeCandidateSetTooLarge = 4132
	CodeUnreadableFile       = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidationFailed is returned when one or more drafts fail server-side validation
	ErrValidationFailed = errors.New("draft validation failed")

	// ErrInvalidAmount is returned when an amount cannot be parsed or is out of range
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a stored magnitude would be negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDate is returned when a timestamp cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDirection is returned when direction is not one of in/out
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrUnsupportedSource is returned when the source is not a registered platform
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrUnsupportedFormat is returned when the declared or sniffed format has no parser
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrSourceMismatch is returned when a draft claims a different source than its batch
	ErrSourceMismatch = errors.New("draft source does not match batch source")

	// ErrFileTooLarge is returned when an uploaded file exceeds the byte ceiling
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrTooManyRows is returned when a parse or commit exceeds the row ceiling
	ErrTooManyRows = errors.New("row count exceeds limit")

	// ErrCandidateSetTooLarge is returned when a dedup scope exceeds the candidate ceiling
	ErrCandidateSetTooLarge = errors.New("dedup candidate set too large, narrow the date range")

	// ErrInvalidDateRange is returned when start is after end
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrUnreadableFile is returned when no row of a file could be located or decoded
	ErrUnreadableFile = errors.New("file could not be read")

	// ErrDuplicateTransaction is returned when (source, sourceRowId) already exists
	ErrDuplicateTransaction = errors.New("transaction with this source row already exists")

	// ErrBatchNotFound is returned when the requested import batch doesn't exist
	ErrBatchNotFound = errors.New("import batch not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidationFailed):
		return CodeValidationFailed
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrSourceMismatch):
		return CodeSourceMismatch
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUnsupportedSource):
		return CodeUnsupportedSource
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidDate):
		return CodeInvalidDateRange
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidDirection):
		return CodeInvalidRequest
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrFileTooLarge):
		return CodeFileTooLarge
	case errors.Is(err, ErrTooManyRows):
		return CodeTooManyRows
	case errors.Is(err, ErrCandidateSetTooLarge):
		return CodeCandidateSetTooLarge
	case errors.Is(err, ErrUnreadableFile):
		return CodeUnreadableFile
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the API answers with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidationFailed),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDirection),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrUnsupportedSource),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrSourceMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnreadableFile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicateTransaction):
		return http.StatusConflict
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrTooManyRows),
		errors.Is(err, ErrCandidateSetTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FieldIssue is one itemized problem found while validating a draft
type FieldIssue struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every field issue found in a commit request
type ValidationError struct {
	Issues []FieldIssue
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrValidationFailed.Error()
	}
	first := e.Issues[0]
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: draft %d: %s %s", ErrValidationFailed, first.Index, first.Field, first.Reason)
	}
	return fmt.Sprintf("%s: draft %d: %s %s (and %d more issues)",
		ErrValidationFailed, first.Index, first.Field, first.Reason, len(e.Issues)-1)
}

// Is checks if the target error is an ErrValidationFailed
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends an issue for the draft at index
func (e *ValidationError) Add(index int, field, reason string) {
	e.Issues = append(e.Issues, FieldIssue{Index: index, Field: field, Reason: reason})
}

// HasIssues reports whether at least one issue was recorded
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		fields = append(fields, fmt.Sprintf("%d.%s", issue.Index, issue.Field))
	}
	return map[string]any{
		"error_type":  "validation_error",
		"issue_count": len(e.Issues),
		"fields":      strings.Join(fields, ","),
		"error_code":  CodeValidationFailed,
	}
}

// LimitExceededError reports which hard ceiling a request crossed
type LimitExceededError struct {
	Resource string
	Limit    int64
	Actual   int64
	Err      error
}

// Error implements the error interface for LimitExceededError
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%v: %s %d exceeds limit %d", e.Err, e.Resource, e.Actual, e.Limit)
}

// Unwrap returns the underlying error
func (e *LimitExceededError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LimitExceededError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "limit_exceeded",
		"resource":   e.Resource,
		"limit":      e.Limit,
		"actual":     e.Actual,
		"error_code": ErrorCode(e.Err),
	}
}

// NewFileTooLargeError creates a byte-ceiling error
func NewFileTooLargeError(limit, actual int64) error {
	return &LimitExceededError{Resource: "file bytes", Limit: limit, Actual: actual, Err: ErrFileTooLarge}
}

// NewTooManyRowsError creates a row-ceiling error
func NewTooManyRowsError(limit, actual int) error {
	return &LimitExceededError{Resource: "rows", Limit: int64(limit), Actual: int64(actual), Err: ErrTooManyRows}
}

// NewCandidateSetTooLargeError creates a dedup candidate-ceiling error
func NewCandidateSetTooLargeError(limit int, actual int64) error {
	return &LimitExceededError{Resource: "dedup candidates", Limit: int64(limit), Actual: actual, Err: ErrCandidateSetTooLarge}
}

// SourceMismatchError provides detail about a spoofed draft source
type SourceMismatchError struct {
	Index       int
	BatchSource string
	DraftSource string
}

// Error implements the error interface
func (e *SourceMismatchError) Error() string {
	return fmt.Sprintf("draft %d declares source %q but batch source is %q", e.Index, e.DraftSource, e.BatchSource)
}

// Is checks if the target error is an ErrSourceMismatch
func (e *SourceMismatchError) Is(target error) bool {
	return target == ErrSourceMismatch
}

// LogFields returns a map of fields for structured logging
func (e *SourceMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "source_mismatch",
		"draft_index":  e.Index,
		"batch_source": e.BatchSource,
		"draft_source": e.DraftSource,
		"error_code":   CodeSourceMismatch,
	}
}

// NewSourceMismatchError creates a new anti-spoofing error
func NewSourceMismatchError(index int, batchSource, draftSource string) error {
	return &SourceMismatchError{Index: index, BatchSource: batchSource, DraftSource: draftSource}
}

// DuplicateTransactionError provides detailed information about an already-imported row
type DuplicateTransactionError struct {
	Source      string
	SourceRowID string
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: source=%s sourceRowId=%s", e.Source, e.SourceRowID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "duplicate_transaction",
		"source":        e.Source,
		"source_row_id": e.SourceRowID,
		"error_code":    CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(source, sourceRowID string) error {
	return &DuplicateTransactionError{Source: source, SourceRowID: sourceRowID}
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsValidationError checks if the error came from draft validation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsLimitExceededError checks if the error is any of the hard ceilings
func IsLimitExceededError(err error) bool {
	return errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrTooManyRows) ||
		errors.Is(err, ErrCandidateSetTooLarge)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrBatchNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
