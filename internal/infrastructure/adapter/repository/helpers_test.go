package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	adapterlogger "github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
)

var shanghai = time.FixedZone("CST", 8*3600)

// newTestDB opens a private in-memory database with the application schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.ImportBatch{}, &model.Transaction{}))
	return db
}

func newRepos(t *testing.T) (*TransactionRepository, *ImportBatchRepository) {
	db := newTestDB(t)
	log := adapterlogger.NewNoopLogger()
	return NewTransactionRepository(db, log), NewImportBatchRepository(db, log)
}

func txn(batchID string, source entity.Source, rowID string, at time.Time, amount, counterparty string) *entity.Transaction {
	return entity.NewTransaction(entity.TransactionDraft{
		OccurredAt:   at,
		Amount:       decimal.RequireFromString(amount),
		Direction:    entity.DirectionOut,
		Currency:     "CNY",
		Counterparty: counterparty,
		Source:       source,
		SourceRowID:  rowID,
		SourceRaw:    map[string]string{"row": rowID},
	}, batchID, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
}
