package migration

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	adapterlogger "github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrateAll_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	mgr := NewMigrationManager(db, adapterlogger.NewNoopLogger())

	version, err := mgr.GetCurrentVersion(ctx)
	assert.Error(t, err, "version table does not exist yet")
	assert.Empty(t, version)

	require.NoError(t, mgr.MigrateAll(ctx))

	version, err = mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
	assert.True(t, db.Migrator().HasIndex("transactions", "idx_transactions_primary_rows"))

	// Rerunning records nothing new
	require.NoError(t, mgr.MigrateAll(ctx))
	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateAll_From1_0_0BackfillsDuplicateReason(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}, &model.ImportBatch{}, &model.Transaction{}))
	require.NoError(t, db.Create(&model.MigrationVersion{
		Version:   "1.0.0",
		AppliedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	primaryID := uint64(1)
	group := "0123456789abcdef"
	rows := []model.Transaction{
		{ImportBatchID: "b1", OccurredAt: time.Date(2024, 1, 15, 4, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("9.90"),
			Direction: "out", Currency: "CNY", Counterparty: "Shop", Source: "alipay", SourceRowID: "A1",
			DuplicateGroupID: &group, CreatedAt: time.Now().UTC()},
		{ImportBatchID: "b2", OccurredAt: time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("9.90"),
			Direction: "out", Currency: "CNY", Counterparty: "Shop", Source: "cmb", SourceRowID: "C1",
			IsDuplicate: true, DuplicateGroupID: &group, PrimaryTransactionID: &primaryID, CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, db.Create(&rows).Error)

	mgr := NewMigrationManager(db, adapterlogger.NewNoopLogger())
	require.NoError(t, mgr.MigrateAll(ctx))

	var stored []model.Transaction
	require.NoError(t, db.Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Nil(t, stored[0].DuplicateReason)
	require.NotNil(t, stored[1].DuplicateReason)
	assert.Equal(t, entity.DuplicateReasonCrossSource, *stored[1].DuplicateReason)

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}

func TestMigrateAll_From1_1_0NormalizesCounterparty(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}, &model.ImportBatch{}, &model.Transaction{}))
	require.NoError(t, db.Create(&model.MigrationVersion{
		Version:   "1.1.0",
		AppliedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.Exec(
		"CREATE INDEX idx_transactions_group_lookup ON transactions (amount, direction, TRIM(counterparty), occurred_at)",
	).Error)

	newRow := func(source, rowID, counterparty string) model.Transaction {
		return model.Transaction{
			ImportBatchID: "b1", OccurredAt: time.Date(2024, 1, 15, 4, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("9.90"), Direction: "out", Currency: "CNY",
			Counterparty: counterparty, Source: source, SourceRowID: rowID, CreatedAt: time.Now().UTC(),
		}
	}
	rows := []model.Transaction{
		newRow("alipay", "A1", "Shop\t"),
		newRow("cmb", "C1", "　Shop"),
		newRow("wechat", "W1", "Shop"),
		newRow("icbc", "I1", " \t "),
	}
	require.NoError(t, db.Create(&rows).Error)

	mgr := NewMigrationManager(db, adapterlogger.NewNoopLogger())
	require.NoError(t, mgr.MigrateAll(ctx))

	var stored []model.Transaction
	require.NoError(t, db.Order("id").Find(&stored).Error)
	require.Len(t, stored, 4)
	for _, row := range stored[:3] {
		assert.Equal(t, "Shop", row.Counterparty, row.SourceRowID)
	}
	assert.Empty(t, stored[3].Counterparty)

	var matches int64
	require.NoError(t, db.Model(&model.Transaction{}).Where("counterparty = ?", "Shop").Count(&matches).Error)
	assert.Equal(t, int64(3), matches)
	assert.True(t, db.Migrator().HasIndex("transactions", "idx_transactions_group_lookup"))

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}
