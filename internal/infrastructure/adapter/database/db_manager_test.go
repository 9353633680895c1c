package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
)

func TestManager_ConnectAndMigrate(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)

	version, err := tdb.Manager.MigrationManager().GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// A second run is a no-op
	require.NoError(t, tdb.Manager.Migrate(ctx))

	migrator := tdb.DB().Migrator()
	assert.True(t, migrator.HasTable("transactions"))
	assert.True(t, migrator.HasTable("import_batches"))
	assert.True(t, migrator.HasIndex("transactions", "idx_transactions_source_row"))
	assert.True(t, migrator.HasIndex("transactions", "idx_transactions_group_lookup"))
	assert.True(t, migrator.HasIndex("transactions", "idx_transactions_batch_occurred"))

	health := tdb.Manager.Health(ctx)
	assert.True(t, health.Healthy)
	assert.Equal(t, "sqlite", health.Driver)
	assert.Empty(t, health.Error)
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	uow := tdb.UnitOfWork()

	newBatch := func(name string) *entity.ImportBatch {
		return entity.NewImportBatch(name, 1, entity.SourceAlipay, entity.SourceTypeCSV, 0, tdb.TimeProvider.Now())
	}

	t.Run("Rollback discards writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		batch := newBatch("rolled-back.csv")
		require.NoError(t, uow.GetImportBatchRepository(txCtx).Create(txCtx, batch))
		require.NoError(t, uow.Rollback(txCtx))

		batches, err := uow.GetImportBatchRepository(ctx).List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, batches)
	})

	t.Run("Commit keeps writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		batch := newBatch("kept.csv")
		require.NoError(t, uow.GetImportBatchRepository(txCtx).Create(txCtx, batch))
		require.NoError(t, uow.Commit(txCtx))

		// rolling back a finished transaction is tolerated
		assert.NoError(t, uow.Rollback(txCtx))

		got, err := uow.GetImportBatchRepository(ctx).GetByID(ctx, batch.ID)
		require.NoError(t, err)
		assert.Equal(t, "kept.csv", got.FileName)

		// commits are measured by the collector shared with Health
		assert.GreaterOrEqual(t, tdb.Manager.Health(ctx).Queries.Total, int64(1))
	})

	t.Run("Commit without a transaction", func(t *testing.T) {
		assert.Error(t, uow.Commit(ctx))
		assert.Error(t, uow.Rollback(ctx))
	})
}
