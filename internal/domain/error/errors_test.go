package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseErrorTypes(t *testing.T) {
	assert.Equal(t, "draft validation failed", ErrValidationFailed.Error())
	assert.Equal(t, "invalid amount format", ErrInvalidAmount.Error())
	assert.Equal(t, "dedup candidate set too large, narrow the date range", ErrCandidateSetTooLarge.Error())
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"ValidationFailed", ErrValidationFailed, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"SourceMismatch", ErrSourceMismatch, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"BatchNotFound", ErrBatchNotFound, 4040},
		{"FileTooLarge", ErrFileTooLarge, 4130},
		{"TooManyRows", ErrTooManyRows, 4131},
		{"CandidateSetTooLarge", ErrCandidateSetTooLarge, 4132},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrSourceMismatch), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ValidationError{}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(NewSourceMismatchError(0, "alipay", "wechat")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(NewTooManyRowsError(5000, 5001)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrBatchNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.False(t, verr.HasIssues())

	verr.Add(3, "amount", "must be positive")
	assert.True(t, verr.HasIssues())
	assert.Equal(t, "draft validation failed: draft 3: amount must be positive", verr.Error())

	verr.Add(7, "occurredAt", "is required")
	assert.Contains(t, verr.Error(), "and 1 more issues")
	assert.True(t, errors.Is(verr, ErrValidationFailed))
	assert.True(t, IsValidationError(fmt.Errorf("commit: %w", verr)))

	fields := verr.LogFields()
	assert.Equal(t, 2, fields["issue_count"])
	assert.Equal(t, "3.amount,7.occurredAt", fields["fields"])
}

func TestLimitExceededError(t *testing.T) {
	err := NewTooManyRowsError(5000, 5001)

	assert.True(t, errors.Is(err, ErrTooManyRows))
	assert.True(t, IsLimitExceededError(err))
	assert.Equal(t, "row count exceeds limit: rows 5001 exceeds limit 5000", err.Error())

	var limitErr *LimitExceededError
	assert.True(t, errors.As(err, &limitErr))
	assert.Equal(t, int64(5000), limitErr.Limit)
	assert.Equal(t, CodeTooManyRows, limitErr.LogFields()["error_code"])

	candidates := NewCandidateSetTooLargeError(100000, 100001)
	assert.True(t, errors.Is(candidates, ErrCandidateSetTooLarge))
	assert.False(t, errors.Is(candidates, ErrTooManyRows))
}

func TestSourceMismatchError(t *testing.T) {
	err := NewSourceMismatchError(2, "alipay", "wechat")

	assert.True(t, errors.Is(err, ErrSourceMismatch))
	assert.Equal(t, `draft 2 declares source "wechat" but batch source is "alipay"`, err.Error())
}

func TestDuplicateTransactionError(t *testing.T) {
	err := NewDuplicateTransactionError("alipay", "2024011522001")

	assert.True(t, IsDuplicateTransactionError(err))
	assert.Equal(t, "duplicate transaction detected: source=alipay sourceRowId=2024011522001", err.Error())
	assert.Equal(t, CodeDuplicateTransaction, err.(*DuplicateTransactionError).LogFields()["error_code"])
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrBatchNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrTransactionNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidRequest))
}
