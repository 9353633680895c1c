package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// GroupQuery selects every persisted row that falls into one dedup group
type GroupQuery struct {
	From         time.Time
	To           time.Time
	Amount       decimal.Decimal
	Direction    entity.Direction
	Counterparty string // compared against the trimmed stored value
}

// TransactionFilter bounds listing and candidate scans. From is inclusive, To is exclusive.
type TransactionFilter struct {
	From              *time.Time
	To                *time.Time
	Source            entity.Source
	ImportBatchID     string
	IncludeDuplicates bool
	Limit             int
	Offset            int
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// FindExistingSourceRowIDs returns which of sourceRowIDs already exist for source.
	// Callers chunk sourceRowIDs to respect bind-parameter limits.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindExistingSourceRowIDs(ctx context.Context, source entity.Source, sourceRowIDs []string) ([]string, error)

	// CreateMany inserts rows in one statement and fills their IDs
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If any (source, sourceRowId) already exists
	// - ErrDatabaseConnection: If database connection fails
	CreateMany(ctx context.Context, transactions []*entity.Transaction) error

	// Create inserts a single row and fills its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If (source, sourceRowId) already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindGroupMembers returns every row matching a dedup group, ordered by (occurred_at, id)
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindGroupMembers(ctx context.Context, query GroupQuery) ([]*entity.Transaction, error)

	// MarkPrimary clears duplicate state on id and stamps groupID
	MarkPrimary(ctx context.Context, id uint64, groupID string) error

	// MarkDuplicates marks ids as secondaries of primaryID
	MarkDuplicates(ctx context.Context, ids []uint64, primaryID uint64, groupID, reason string) error

	// ClearDuplicateGroup resets every row of groupID
	ClearDuplicateGroup(ctx context.Context, groupID string) error

	// CountCandidates counts rows with a non-empty counterparty inside filter
	CountCandidates(ctx context.Context, filter TransactionFilter) (int64, error)

	// FindCandidates loads the grouping projection of rows inside filter
	FindCandidates(ctx context.Context, filter TransactionFilter) ([]entity.DuplicateCandidate, error)

	// List returns rows for downstream consumers, ordered by (occurred_at, id)
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// GroupIDsForBatch returns the distinct duplicate groups touching a batch
	GroupIDsForBatch(ctx context.Context, batchID string) ([]string, error)

	// DeleteByBatch removes every row of a batch and returns how many were removed
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
}
