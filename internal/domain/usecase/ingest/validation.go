package ingest

import (
	"time"
	"unicode/utf8"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
)

// earliestOccurredAt is the oldest date any supported export contains
var earliestOccurredAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// maxClockSkew tolerates exports stamped slightly ahead of the server clock
const maxClockSkew = 24 * time.Hour

// DraftValidator re-checks drafts server-side, independent of what the caller claims
type DraftValidator struct {
	timeProvider coreport.TimeProvider
}

// NewDraftValidator creates a new DraftValidator
func NewDraftValidator(timeProvider coreport.TimeProvider) *DraftValidator {
	return &DraftValidator{timeProvider: timeProvider}
}

// Validate checks every draft and returns a *errs.ValidationError listing all issues, or nil
func (v *DraftValidator) Validate(drafts []entity.TransactionDraft) error {
	verr := &errs.ValidationError{}
	latest := v.timeProvider.Now().Add(maxClockSkew)

	for i := range drafts {
		v.validateDraft(verr, i, &drafts[i], latest)
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

func (v *DraftValidator) validateDraft(verr *errs.ValidationError, i int, d *entity.TransactionDraft, latest time.Time) {
	// Date
	switch {
	case d.OccurredAt.IsZero():
		verr.Add(i, "occurredAt", "is required")
	case d.OccurredAt.Before(earliestOccurredAt) || d.OccurredAt.After(latest):
		verr.Add(i, "occurredAt", "is out of range")
	}

	// Amount
	if err := entity.ValidateAmount(d.Amount); err != nil {
		verr.Add(i, "amount", err.Error())
	}
	if d.Balance != nil {
		if d.Balance.Abs().GreaterThan(entity.MaxAmount) || !d.Balance.Equal(d.Balance.Round(entity.MaxDecimalPlaces)) {
			verr.Add(i, "balance", "is out of range")
		}
	}

	// Enums
	if !entity.IsValidDirection(string(d.Direction)) {
		verr.Add(i, "direction", "must be in or out")
	}
	if !entity.IsValidSource(string(d.Source)) {
		verr.Add(i, "source", "is not a supported source")
	}

	// Identity
	if d.SourceRowID == "" {
		verr.Add(i, "sourceRowId", "is required")
	}

	// Length caps
	checkLength(verr, i, "sourceRowId", d.SourceRowID, entity.MaxSourceRowIDLength)
	checkLength(verr, i, "counterparty", d.Counterparty, entity.MaxCounterpartyLength)
	checkLength(verr, i, "description", d.Description, entity.MaxDescriptionLength)
	checkLength(verr, i, "memo", d.Memo, entity.MaxMemoLength)
	checkLength(verr, i, "currency", d.Currency, entity.MaxShortFieldLength)
	checkLength(verr, i, "category", d.Category, entity.MaxShortFieldLength)
	checkLength(verr, i, "accountName", d.AccountName, entity.MaxShortFieldLength)
	checkLength(verr, i, "status", d.Status, entity.MaxShortFieldLength)
	checkLength(verr, i, "counterpartyAccount", d.CounterpartyAccount, entity.MaxShortFieldLength)
	checkLength(verr, i, "platformTransactionId", d.PlatformTransactionID, entity.MaxShortFieldLength)
	checkLength(verr, i, "merchantOrderId", d.MerchantOrderID, entity.MaxShortFieldLength)

	if entity.SourceRawSize(d.SourceRaw) > entity.MaxSourceRawBytes {
		verr.Add(i, "sourceRaw", "exceeds size limit")
	}
}

func checkLength(verr *errs.ValidationError, i int, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		verr.Add(i, field, "is too long")
	}
}
