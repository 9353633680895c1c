package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

// DraftDTO is the wire form of a transaction draft.
// Amounts and balances travel as decimal strings, timestamps as RFC 3339.
type DraftDTO struct {
	OccurredAt            string            `json:"occurredAt"`
	Amount                string            `json:"amount"`
	Direction             string            `json:"direction"`
	Currency              string            `json:"currency"`
	Counterparty          string            `json:"counterparty"`
	Description           string            `json:"description,omitempty"`
	Category              string            `json:"category,omitempty"`
	AccountName           string            `json:"accountName,omitempty"`
	Source                string            `json:"source"`
	SourceRaw             map[string]string `json:"sourceRaw,omitempty"`
	SourceRowID           string            `json:"sourceRowId"`
	Balance               *string           `json:"balance,omitempty"`
	Status                string            `json:"status,omitempty"`
	CounterpartyAccount   string            `json:"counterpartyAccount,omitempty"`
	PlatformTransactionID string            `json:"platformTransactionId,omitempty"`
	MerchantOrderID       string            `json:"merchantOrderId,omitempty"`
	Memo                  string            `json:"memo,omitempty"`
}

// TransactionResponse is a persisted transaction as consumers see it
type TransactionResponse struct {
	DraftDTO
	ID                   uint64  `json:"id"`
	ImportBatchID        string  `json:"importBatchId"`
	CreatedAt            string  `json:"createdAt"`
	IsDuplicate          bool    `json:"isDuplicate"`
	DuplicateGroupID     *string `json:"duplicateGroupId,omitempty"`
	PrimaryTransactionID *uint64 `json:"primaryTransactionId,omitempty"`
	DuplicateReason      *string `json:"duplicateReason,omitempty"`
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// NewDraftDTO converts a domain draft to its wire form
func NewDraftDTO(d entity.TransactionDraft) DraftDTO {
	out := DraftDTO{
		OccurredAt:            d.OccurredAt.Format(time.RFC3339),
		Amount:                entity.FormatAmount(d.Amount),
		Direction:             string(d.Direction),
		Currency:              d.Currency,
		Counterparty:          d.Counterparty,
		Description:           d.Description,
		Category:              d.Category,
		AccountName:           d.AccountName,
		Source:                string(d.Source),
		SourceRaw:             d.SourceRaw,
		SourceRowID:           d.SourceRowID,
		Status:                d.Status,
		CounterpartyAccount:   d.CounterpartyAccount,
		PlatformTransactionID: d.PlatformTransactionID,
		MerchantOrderID:       d.MerchantOrderID,
		Memo:                  d.Memo,
	}
	if d.Balance != nil {
		balance := d.Balance.StringFixed(2)
		out.Balance = &balance
	}
	return out
}

// NewTransactionResponse converts a persisted transaction, rendering times in loc
func NewTransactionResponse(t *entity.Transaction, loc *time.Location) TransactionResponse {
	draft := t.TransactionDraft
	draft.OccurredAt = draft.OccurredAt.In(loc)

	return TransactionResponse{
		DraftDTO:             NewDraftDTO(draft),
		ID:                   t.ID,
		ImportBatchID:        t.ImportBatchID,
		CreatedAt:            t.CreatedAt.In(loc).Format(time.RFC3339),
		IsDuplicate:          t.IsDuplicate,
		DuplicateGroupID:     t.DuplicateGroupID,
		PrimaryTransactionID: t.PrimaryTransactionID,
		DuplicateReason:      t.DuplicateReason,
	}
}

// ToEntity converts wire drafts into domain drafts. Every field that cannot be
// decoded is reported against its draft index instead of failing on the first one.
func ToEntity(drafts []DraftDTO) ([]entity.TransactionDraft, error) {
	verr := &errs.ValidationError{}
	out := make([]entity.TransactionDraft, len(drafts))

	for i, d := range drafts {
		occurredAt, err := time.Parse(time.RFC3339, d.OccurredAt)
		if err != nil {
			verr.Add(i, "occurredAt", fmt.Sprintf("must be an RFC 3339 timestamp, got %q", d.OccurredAt))
		}

		amount, err := decimal.NewFromString(d.Amount)
		if err != nil {
			verr.Add(i, "amount", fmt.Sprintf("must be a decimal string, got %q", d.Amount))
		}

		var balance *decimal.Decimal
		if d.Balance != nil {
			b, err := decimal.NewFromString(*d.Balance)
			if err != nil {
				verr.Add(i, "balance", fmt.Sprintf("must be a decimal string, got %q", *d.Balance))
			} else {
				balance = &b
			}
		}

		out[i] = entity.TransactionDraft{
			OccurredAt:            occurredAt,
			Amount:                amount,
			Direction:             entity.Direction(d.Direction),
			Currency:              d.Currency,
			Counterparty:          d.Counterparty,
			Description:           d.Description,
			Category:              d.Category,
			AccountName:           d.AccountName,
			Source:                entity.NormalizeSource(d.Source),
			SourceRaw:             d.SourceRaw,
			SourceRowID:           d.SourceRowID,
			Balance:               balance,
			Status:                d.Status,
			CounterpartyAccount:   d.CounterpartyAccount,
			PlatformTransactionID: d.PlatformTransactionID,
			MerchantOrderID:       d.MerchantOrderID,
			Memo:                  d.Memo,
		}
	}

	if verr.HasIssues() {
		return nil, verr
	}
	return out, nil
}
