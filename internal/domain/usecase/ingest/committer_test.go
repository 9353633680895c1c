package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	mpers "github.com/amirhossein-jamali/bill-processor/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/bill-processor/mocks/port/usecase"
)

type committerMocks struct {
	uow       *mpers.MockUnitOfWork
	txnRepo   *mpers.MockTransactionRepository
	batchRepo *mpers.MockImportBatchRepository
	dedup     *muse.MockDedupUseCase
}

func newTestCommitter(t *testing.T, limits Limits) (*Committer, *committerMocks) {
	m := &committerMocks{
		uow:       mpers.NewMockUnitOfWork(t),
		txnRepo:   mpers.NewMockTransactionRepository(t),
		batchRepo: mpers.NewMockImportBatchRepository(t),
		dedup:     muse.NewMockDedupUseCase(t),
	}
	m.uow.On("GetTransactionRepository", mock.Anything).Return(m.txnRepo).Maybe()
	m.uow.On("GetImportBatchRepository", mock.Anything).Return(m.batchRepo).Maybe()

	clock := newClock(t)
	limits = limits.withDefaults()
	c := NewCommitter(m.uow, NewDraftValidator(clock), NewIdempotencyHandler(limits.ChunkSize), m.dedup, clock, newLogger(t), limits)
	return c, m
}

// assignIDs mimics the database filling auto-increment keys
func assignIDs(next *uint64) func(context.Context, []*entity.Transaction) error {
	return func(_ context.Context, txns []*entity.Transaction) error {
		for _, txn := range txns {
			*next++
			txn.ID = *next
		}
		return nil
	}
}

func commitRequest(source entity.Source, drafts []entity.TransactionDraft) usecase.CommitRequest {
	return usecase.CommitRequest{
		FileName:     string(source) + ".export",
		FileSize:     2048,
		Source:       source,
		Drafts:       drafts,
		WarningCount: 1,
	}
}

func TestCommitter_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists new rows and deduplicates them", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{ChunkSize: 2})
		drafts := newDrafts(entity.SourceAlipay, 3)
		var nextID uint64
		var batchID string

		m.batchRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ImportBatch")).
			Run(func(_ context.Context, batch *entity.ImportBatch) {
				batchID = batch.ID
				assert.Equal(t, 0, batch.RowCount)
				assert.Equal(t, entity.SourceTypeCSV, batch.SourceType)
				assert.Equal(t, 1, batch.WarningCount)
			}).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceAlipay, mock.Anything).Return(nil, nil).Times(2)
		m.txnRepo.EXPECT().CreateMany(ctx, mock.Anything).RunAndReturn(assignIDs(&nextID)).Times(2)
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.AnythingOfType("string"), 3).Return(nil)
		m.dedup.EXPECT().Detect(ctx, mock.MatchedBy(func(candidates []entity.DuplicateCandidate) bool {
			return len(candidates) == 3 && candidates[0].ID == 1 && candidates[2].ID == 3 && candidates[0].Counterparty == "Meituan"
		})).Return(1, nil)

		result, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, drafts))

		require.NoError(t, err)
		assert.Equal(t, batchID, result.BatchID)
		assert.Equal(t, 3, result.RowCount)
		assert.Equal(t, 0, result.SkippedCount)
		assert.Equal(t, 1, result.ProcessedGroups)
		assert.False(t, result.DedupPending)
	})

	t.Run("Re-committing the same file is a no-op", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		drafts := newDrafts(entity.SourceWechat, 3)
		ids := []string{drafts[0].SourceRowID, drafts[1].SourceRowID, drafts[2].SourceRowID}

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceWechat, ids).Return(ids, nil)
		m.batchRepo.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

		result, err := c.Commit(ctx, commitRequest(entity.SourceWechat, drafts))

		require.NoError(t, err)
		assert.Empty(t, result.BatchID)
		assert.Equal(t, 0, result.RowCount)
		assert.Equal(t, 3, result.SkippedCount)
		m.txnRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
		m.dedup.AssertNotCalled(t, "Detect", mock.Anything, mock.Anything)
	})

	t.Run("Rejects 5001 drafts before any persistence", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{MaxRows: 5000})

		_, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, newDrafts(entity.SourceAlipay, 5001)))

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrs.ErrTooManyRows)
		assert.Contains(t, err.Error(), "5001 exceeds limit 5000")
		m.uow.AssertNotCalled(t, "GetImportBatchRepository", mock.Anything)
		m.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects a draft whose source disagrees with the batch", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		drafts := newDrafts(entity.SourceAlipay, 2)
		drafts[1].Source = entity.SourceWechat

		_, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, drafts))

		assert.ErrorIs(t, err, domainerrs.ErrSourceMismatch)
		m.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects invalid drafts with itemized issues", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		drafts := newDrafts(entity.SourceICBC, 2)
		drafts[1].Direction = "sideways"

		_, err := c.Commit(ctx, commitRequest(entity.SourceICBC, drafts))

		var verr *domainerrs.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, 1, verr.Issues[0].Index)
		m.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects a source type that does not match the source", func(t *testing.T) {
		c, _ := newTestCommitter(t, Limits{})
		req := commitRequest(entity.SourceCMB, newDrafts(entity.SourceCMB, 1))
		req.SourceType = entity.SourceTypeCSV

		_, err := c.Commit(ctx, req)

		assert.ErrorIs(t, err, domainerrs.ErrUnsupportedFormat)
	})

	t.Run("Retries a failed chunk row by row", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		drafts := newDrafts(entity.SourceICBC, 3)
		var nextID uint64

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceICBC, mock.Anything).Return(nil, nil)
		m.txnRepo.EXPECT().CreateMany(ctx, mock.Anything).Return(domainerrs.ErrDuplicateTransaction)
		m.txnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.SourceRowID == drafts[1].SourceRowID
		})).Return(domainerrs.NewDuplicateTransactionError("icbc", drafts[1].SourceRowID))
		m.txnRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			nextID++
			txn.ID = nextID
			return nil
		})
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.Anything, 2).Return(nil)
		m.dedup.EXPECT().Detect(ctx, mock.Anything).Return(0, nil)

		result, err := c.Commit(ctx, commitRequest(entity.SourceICBC, drafts))

		require.NoError(t, err)
		assert.Equal(t, 2, result.RowCount)
		assert.Equal(t, 1, result.SkippedCount)
		assert.Equal(t, 1, result.FailedCount)
		assert.Equal(t, len(drafts), result.RowCount+result.SkippedCount)
	})

	t.Run("Keeps rows committed when dedup fails", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		var nextID uint64

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceCMB, mock.Anything).Return(nil, nil)
		m.txnRepo.EXPECT().CreateMany(ctx, mock.Anything).RunAndReturn(assignIDs(&nextID))
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.Anything, 1).Return(nil)
		m.dedup.EXPECT().Detect(ctx, mock.Anything).Return(0, domainerrs.ErrDatabaseConnection)

		result, err := c.Commit(ctx, commitRequest(entity.SourceCMB, newDrafts(entity.SourceCMB, 1)))

		require.NoError(t, err)
		assert.NotEmpty(t, result.BatchID)
		assert.Equal(t, 1, result.RowCount)
		assert.True(t, result.DedupPending)
	})

	t.Run("Keeps rows committed when the row count cannot be recorded", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		var nextID uint64
		var batchID string

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, batch *entity.ImportBatch) { batchID = batch.ID }).
			Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceAlipay, mock.Anything).Return(nil, nil)
		m.txnRepo.EXPECT().CreateMany(ctx, mock.Anything).RunAndReturn(assignIDs(&nextID))
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.Anything, 2).
			Return(domainerrs.ErrDatabaseConnection).Times(batchWriteAttempts)
		m.dedup.EXPECT().Detect(ctx, mock.Anything).Return(1, nil)

		result, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, newDrafts(entity.SourceAlipay, 2)))

		require.NoError(t, err)
		assert.Equal(t, batchID, result.BatchID)
		assert.Equal(t, 2, result.RowCount)
		assert.Equal(t, 0, result.SkippedCount)
		assert.Equal(t, 1, result.ProcessedGroups)
		assert.True(t, result.BatchPending)
		assert.False(t, result.DedupPending)
		m.batchRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Retries the row count update", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		var nextID uint64

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceWechat, mock.Anything).Return(nil, nil)
		m.txnRepo.EXPECT().CreateMany(ctx, mock.Anything).RunAndReturn(assignIDs(&nextID))
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.Anything, 1).Return(domainerrs.ErrDatabaseConnection).Once()
		m.batchRepo.EXPECT().UpdateRowCount(ctx, mock.Anything, 1).Return(nil).Once()
		m.dedup.EXPECT().Detect(ctx, mock.Anything).Return(0, nil)

		result, err := c.Commit(ctx, commitRequest(entity.SourceWechat, newDrafts(entity.SourceWechat, 1)))

		require.NoError(t, err)
		assert.Equal(t, 1, result.RowCount)
		assert.False(t, result.BatchPending)
	})

	t.Run("Reports an empty batch that cannot be deleted", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})
		drafts := newDrafts(entity.SourceICBC, 2)
		ids := []string{drafts[0].SourceRowID, drafts[1].SourceRowID}
		var batchID string

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, batch *entity.ImportBatch) { batchID = batch.ID }).
			Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceICBC, ids).Return(ids, nil)
		m.batchRepo.EXPECT().Delete(ctx, mock.Anything).
			Return(domainerrs.ErrDatabaseConnection).Times(batchWriteAttempts)

		result, err := c.Commit(ctx, commitRequest(entity.SourceICBC, drafts))

		require.NoError(t, err)
		assert.Equal(t, batchID, result.BatchID)
		assert.Equal(t, 0, result.RowCount)
		assert.Equal(t, 2, result.SkippedCount)
		assert.True(t, result.BatchPending)
		m.dedup.AssertNotCalled(t, "Detect", mock.Anything, mock.Anything)
	})

	t.Run("Drops the batch when the skip-set query fails", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})

		m.batchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.txnRepo.EXPECT().FindExistingSourceRowIDs(ctx, entity.SourceAlipay, mock.Anything).
			Return(nil, domainerrs.ErrDatabaseConnection)
		m.batchRepo.EXPECT().Delete(ctx, mock.Anything).Return(nil)

		_, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, newDrafts(entity.SourceAlipay, 1)))

		assert.ErrorIs(t, err, domainerrs.ErrDatabaseConnection)
	})

	t.Run("Empty request persists nothing", func(t *testing.T) {
		c, m := newTestCommitter(t, Limits{})

		result, err := c.Commit(ctx, commitRequest(entity.SourceAlipay, nil))

		require.NoError(t, err)
		assert.Equal(t, 0, result.RowCount)
		m.batchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
