package entity

import (
	"time"
)

// Transaction is a persisted draft plus its dedup state
type Transaction struct {
	TransactionDraft

	ID            uint64
	ImportBatchID string
	CreatedAt     time.Time

	IsDuplicate          bool
	DuplicateGroupID     *string
	PrimaryTransactionID *uint64
	DuplicateReason      *string
}

// NewTransaction creates a transaction owned by batchID from a validated draft.
// The counterparty is stored normalized so group lookups can compare it as stored.
func NewTransaction(draft TransactionDraft, batchID string, createdAt time.Time) *Transaction {
	draft.OccurredAt = draft.OccurredAt.UTC()
	draft.Counterparty = NormalizeCounterparty(draft.Counterparty)
	return &Transaction{
		TransactionDraft: draft,
		ImportBatchID:    batchID,
		CreatedAt:        createdAt,
	}
}

// MarkPrimary makes the transaction the canonical member of groupID
func (t *Transaction) MarkPrimary(groupID string) {
	t.IsDuplicate = false
	t.DuplicateGroupID = &groupID
	t.PrimaryTransactionID = nil
	t.DuplicateReason = nil
}

// MarkDuplicateOf makes the transaction a secondary of primaryID
func (t *Transaction) MarkDuplicateOf(primaryID uint64, groupID, reason string) {
	t.IsDuplicate = true
	t.DuplicateGroupID = &groupID
	t.PrimaryTransactionID = &primaryID
	t.DuplicateReason = &reason
}

// ClearDuplicate removes any dedup state
func (t *Transaction) ClearDuplicate() {
	t.IsDuplicate = false
	t.DuplicateGroupID = nil
	t.PrimaryTransactionID = nil
	t.DuplicateReason = nil
}

// Candidate projects the fields the deduplicator groups on
func (t *Transaction) Candidate() DuplicateCandidate {
	return DuplicateCandidate{
		ID:           t.ID,
		OccurredAt:   t.OccurredAt,
		Amount:       t.Amount,
		Direction:    t.Direction,
		Counterparty: t.Counterparty,
		Source:       t.Source,
	}
}
