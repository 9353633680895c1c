package dedup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/bill-processor/mocks/port/core"
	mpers "github.com/amirhossein-jamali/bill-processor/mocks/port/persistence"
)

type contextKey string

const txKey contextKey = "tx"

var shanghai = time.FixedZone("CST", 8*3600)

type fixture struct {
	uow       *mpers.MockUnitOfWork
	repo      *mpers.MockTransactionRepository
	dedup     *Deduplicator
	txCtx     context.Context
	lookupCtx context.Context
}

func newFixture(t *testing.T, config Config) *fixture {
	logger := mcore.NewMockLogger(t)
	logger.On("With", mock.Anything).Return(logger).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	clock.On("Location").Return(shanghai).Maybe()
	clock.On("Since", mock.Anything).Return(coreport.Millisecond).Maybe()

	uow := mpers.NewMockUnitOfWork(t)
	repo := mpers.NewMockTransactionRepository(t)

	ctx := context.Background()
	return &fixture{
		uow:       uow,
		repo:      repo,
		dedup:     NewDeduplicator(uow, clock, logger, config),
		txCtx:     context.WithValue(ctx, txKey, "group"),
		lookupCtx: ctx,
	}
}

func member(id uint64, source entity.Source, at time.Time) *entity.Transaction {
	tx := &entity.Transaction{ID: id}
	tx.OccurredAt = at
	tx.Amount = decimal.RequireFromString("25.00")
	tx.Direction = entity.DirectionOut
	tx.Counterparty = "Luckin Coffee"
	tx.Source = source
	return tx
}

func candidateOf(tx *entity.Transaction) entity.DuplicateCandidate {
	return tx.Candidate()
}

func TestSelectPrimary(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, shanghai)

	t.Run("Preferred source wins regardless of order", func(t *testing.T) {
		members := []*entity.Transaction{
			member(9, entity.SourceAlipay, at.Add(time.Hour)),
			member(3, entity.SourceICBC, at),
			member(5, entity.SourceWechat, at),
		}
		sortMembers(members)

		assert.Equal(t, uint64(9), selectPrimary(members, entity.SourceAlipay).ID)
	})

	t.Run("Earliest wins without a preferred member", func(t *testing.T) {
		members := []*entity.Transaction{
			member(5, entity.SourceWechat, at),
			member(3, entity.SourceICBC, at),
			member(1, entity.SourceCMB, at.Add(time.Minute)),
		}
		sortMembers(members)

		// Ties on occurredAt break on id
		assert.Equal(t, uint64(3), selectPrimary(members, entity.SourceAlipay).ID)
		assert.Equal(t, []uint64{3, 5, 1}, []uint64{members[0].ID, members[1].ID, members[2].ID})
	})
}

func TestDistinctKeys(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, shanghai)
	a := member(1, entity.SourceAlipay, at)
	a.Counterparty = "A "
	b := member(2, entity.SourceWechat, at)
	b.Counterparty = "A"
	blank := member(3, entity.SourceICBC, at)
	blank.Counterparty = "  "
	other := member(4, entity.SourceICBC, at)

	keys := distinctKeys([]entity.DuplicateCandidate{
		candidateOf(other), candidateOf(a), candidateOf(b), candidateOf(blank),
	}, shanghai)

	require.Len(t, keys, 2)
	assert.Equal(t, "2024-01-15|25.00|out|A", keys[0].String())
	assert.Equal(t, "2024-01-15|25.00|out|Luckin Coffee", keys[1].String())
}

func TestDeduplicator_Detect(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, shanghai)
	dayStart := time.Date(2024, 1, 15, 0, 0, 0, 0, shanghai)
	key, ok := entity.NewGroupKey(candidateOf(member(1, entity.SourceICBC, at)), shanghai)
	require.True(t, ok)
	groupID := key.GroupID()

	matchesDay := mock.MatchedBy(func(q persistence.GroupQuery) bool {
		return q.From.Equal(dayStart) && q.To.Equal(dayStart.AddDate(0, 0, 1)) &&
			q.Counterparty == "Luckin Coffee" && q.Direction == entity.DirectionOut
	})

	t.Run("Marks secondaries of a cross-source group", func(t *testing.T) {
		f := newFixture(t, Config{PreferredSource: entity.SourceAlipay})
		icbc := member(1, entity.SourceICBC, at)
		alipay := member(2, entity.SourceAlipay, at.Add(2*time.Minute))

		f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().GetTransactionRepository(f.txCtx).Return(f.repo)
		f.repo.EXPECT().FindGroupMembers(f.txCtx, matchesDay).Return([]*entity.Transaction{icbc, alipay}, nil)
		f.repo.EXPECT().MarkPrimary(f.txCtx, uint64(2), groupID).Return(nil)
		f.repo.EXPECT().MarkDuplicates(f.txCtx, []uint64{1}, uint64(2), groupID, entity.DuplicateReasonCrossSource).Return(nil)
		f.uow.EXPECT().Commit(f.txCtx).Return(nil)

		// Both candidates share one key, so the group is read once
		processed, err := f.dedup.Detect(context.Background(), []entity.DuplicateCandidate{
			candidateOf(icbc), candidateOf(alipay),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("Skips groups from a single source", func(t *testing.T) {
		f := newFixture(t, Config{PreferredSource: entity.SourceAlipay})
		first := member(1, entity.SourceWechat, at)
		second := member(2, entity.SourceWechat, at.Add(time.Hour))

		f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil)
		f.uow.EXPECT().GetTransactionRepository(f.txCtx).Return(f.repo)
		f.repo.EXPECT().FindGroupMembers(f.txCtx, matchesDay).Return([]*entity.Transaction{first, second}, nil)
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil)

		processed, err := f.dedup.Detect(context.Background(), []entity.DuplicateCandidate{candidateOf(first)})

		require.NoError(t, err)
		assert.Equal(t, 0, processed)
		f.repo.AssertNotCalled(t, "MarkPrimary", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ignores candidates without counterparty", func(t *testing.T) {
		f := newFixture(t, Config{})
		blank := member(1, entity.SourceWechat, at)
		blank.Counterparty = ""

		processed, err := f.dedup.Detect(context.Background(), []entity.DuplicateCandidate{candidateOf(blank)})

		require.NoError(t, err)
		assert.Equal(t, 0, processed)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Rolls back the group on write failure", func(t *testing.T) {
		f := newFixture(t, Config{PreferredSource: entity.SourceAlipay})
		icbc := member(1, entity.SourceICBC, at)
		cmb := member(2, entity.SourceCMB, at)

		f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil)
		f.uow.EXPECT().GetTransactionRepository(f.txCtx).Return(f.repo)
		f.repo.EXPECT().FindGroupMembers(f.txCtx, matchesDay).Return([]*entity.Transaction{cmb, icbc}, nil)
		f.repo.EXPECT().MarkPrimary(f.txCtx, uint64(1), groupID).Return(nil)
		f.repo.EXPECT().MarkDuplicates(f.txCtx, []uint64{2}, uint64(1), groupID, entity.DuplicateReasonCrossSource).
			Return(errs.ErrDatabaseConnection)
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil)

		processed, err := f.dedup.Detect(context.Background(), []entity.DuplicateCandidate{candidateOf(icbc)})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 0, processed)
	})
}

func TestDeduplicator_Run(t *testing.T) {
	t.Run("Rejects an inverted range", func(t *testing.T) {
		f := newFixture(t, Config{})
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, shanghai)
		end := start.AddDate(0, 0, -1)

		_, err := f.dedup.Run(context.Background(), usecase.DedupRequest{StartDate: &start, EndDate: &end})

		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("Rejects a candidate set above the ceiling before loading it", func(t *testing.T) {
		f := newFixture(t, Config{MaxCandidates: 100000})

		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.repo)
		f.repo.EXPECT().CountCandidates(mock.Anything, mock.Anything).Return(int64(100001), nil)

		_, err := f.dedup.Run(context.Background(), usecase.DedupRequest{})

		assert.ErrorIs(t, err, errs.ErrCandidateSetTooLarge)
		f.repo.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything)
	})

	t.Run("Reports candidate and group counts", func(t *testing.T) {
		f := newFixture(t, Config{})
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, shanghai)
		blank := member(1, entity.SourceWechat, start.Add(time.Hour))
		blank.Counterparty = ""

		f.uow.EXPECT().GetTransactionRepository(f.lookupCtx).Return(f.repo)
		f.repo.EXPECT().CountCandidates(f.lookupCtx, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.From != nil && filter.From.Equal(start) && filter.To == nil && filter.IncludeDuplicates
		})).Return(int64(1), nil)
		f.repo.EXPECT().FindCandidates(f.lookupCtx, mock.Anything).
			Return([]entity.DuplicateCandidate{candidateOf(blank)}, nil)

		result, err := f.dedup.Run(f.lookupCtx, usecase.DedupRequest{StartDate: &start})

		require.NoError(t, err)
		assert.Equal(t, 1, result.CandidateCount)
		assert.Equal(t, 0, result.ProcessedGroups)
	})

	t.Run("Propagates count failures", func(t *testing.T) {
		f := newFixture(t, Config{})

		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.repo)
		f.repo.EXPECT().CountCandidates(mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

		_, err := f.dedup.Run(context.Background(), usecase.DedupRequest{})

		assert.ErrorContains(t, err, "connection reset")
	})
}
