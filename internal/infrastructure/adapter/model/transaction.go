package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction represents the database model for imported transactions
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	ImportBatchID string          `gorm:"not null;size:36;index"`
	OccurredAt    time.Time       `gorm:"not null;index:idx_transactions_dedup_lookup,priority:1"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null;index:idx_transactions_dedup_lookup,priority:2"`
	Direction     string          `gorm:"not null;size:8;index:idx_transactions_dedup_lookup,priority:3"`
	Currency      string          `gorm:"not null;size:16"`
	Counterparty  string          `gorm:"size:256"`
	Description   string          `gorm:"size:1024"`
	Category      string          `gorm:"size:128"`
	AccountName   string          `gorm:"size:128"`
	Source        string          `gorm:"not null;size:32;uniqueIndex:idx_transactions_source_row,priority:1"`
	SourceRowID   string          `gorm:"not null;size:128;uniqueIndex:idx_transactions_source_row,priority:2"`
	SourceRaw     datatypes.JSON

	Balance               *decimal.Decimal `gorm:"type:numeric(20,2)"`
	Status                string           `gorm:"size:128"`
	CounterpartyAccount   string           `gorm:"size:128"`
	PlatformTransactionID string           `gorm:"size:128"`
	MerchantOrderID       string           `gorm:"size:128"`
	Memo                  string           `gorm:"size:512"`

	// Dedup state
	IsDuplicate          bool    `gorm:"not null;default:false"`
	DuplicateGroupID     *string `gorm:"size:16;index"`
	PrimaryTransactionID *uint64
	DuplicateReason      *string `gorm:"size:128"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
