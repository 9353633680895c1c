package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	draft := TransactionDraft{
		OccurredAt:   time.Date(2024, 1, 15, 12, 0, 0, 0, shanghai),
		Amount:       decimal.RequireFromString("30.00"),
		Direction:    DirectionOut,
		Currency:     "CNY",
		Counterparty: "\u3000Luckin\t",
		Source:       SourceWechat,
		SourceRowID:  "4200001",
	}

	tx := NewTransaction(draft, "batch-1", now)
	assert.Equal(t, "Luckin", tx.Counterparty)

	assert.Equal(t, "batch-1", tx.ImportBatchID)
	assert.Equal(t, now, tx.CreatedAt)
	assert.Equal(t, time.UTC, tx.OccurredAt.Location())
	assert.True(t, draft.OccurredAt.Equal(tx.OccurredAt))
	assert.False(t, tx.IsDuplicate)
	assert.Nil(t, tx.DuplicateGroupID)
	assert.Nil(t, tx.PrimaryTransactionID)
}

func TestDuplicateMarking(t *testing.T) {
	tx := &Transaction{ID: 7}

	tx.MarkDuplicateOf(3, "abcd", DuplicateReasonCrossSource)
	assert.True(t, tx.IsDuplicate)
	require.NotNil(t, tx.PrimaryTransactionID)
	assert.Equal(t, uint64(3), *tx.PrimaryTransactionID)
	assert.Equal(t, "abcd", *tx.DuplicateGroupID)
	assert.Equal(t, DuplicateReasonCrossSource, *tx.DuplicateReason)

	tx.MarkPrimary("abcd")
	assert.False(t, tx.IsDuplicate)
	assert.Nil(t, tx.PrimaryTransactionID)
	assert.Nil(t, tx.DuplicateReason)
	assert.Equal(t, "abcd", *tx.DuplicateGroupID)

	tx.ClearDuplicate()
	assert.Nil(t, tx.DuplicateGroupID)
}

func TestCandidate(t *testing.T) {
	tx := &Transaction{ID: 4}
	tx.Counterparty = "Didi"
	tx.Source = SourceCMB
	tx.Direction = DirectionOut
	tx.Amount = decimal.RequireFromString("18.00")

	c := tx.Candidate()
	assert.Equal(t, uint64(4), c.ID)
	assert.Equal(t, "Didi", c.Counterparty)
	assert.Equal(t, SourceCMB, c.Source)
}

func TestNewSourceRaw(t *testing.T) {
	headers := []string{"交易时间", "", "金额"}
	cells := []string{"2024-01-15 10:00:00", "ignored", "12.50"}

	raw := NewSourceRaw(headers, cells)
	assert.Equal(t, map[string]string{"交易时间": "2024-01-15 10:00:00", "金额": "12.50"}, raw)

	long := make([]string, 40)
	names := make([]string, 40)
	for i := range long {
		names[i] = string(rune('a'+i%26)) + string(rune('A'+i/26))
		long[i] = string(make([]byte, 300))
	}
	bounded := NewSourceRaw(names, long)
	assert.LessOrEqual(t, SourceRawSize(bounded), MaxSourceRawBytes)
	assert.Less(t, len(bounded), 40)
}

func TestSources(t *testing.T) {
	assert.Equal(t, []Source{SourceAlipay, SourceCMB, SourceICBC, SourceWechat}, Sources())
	assert.True(t, IsValidSource("icbc"))
	assert.False(t, IsValidSource("paypal"))
	assert.True(t, IsValidSourceType("pdf"))
	assert.True(t, IsValidDirection("in"))
	assert.False(t, IsValidDirection("both"))
	assert.Equal(t, SourceAlipay, NormalizeSource(" Alipay "))

	format, ok := FormatOf(SourceCMB)
	assert.True(t, ok)
	assert.Equal(t, SourceTypePDF, format)
}
