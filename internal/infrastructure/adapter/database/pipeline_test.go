package database_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/dedup"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/ingest"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/parser"
)

var shanghai = time.FixedZone("CST", 8*3600)

// Three spending rows on 2024-01-15, one of them at Meituan for 25.00
var alipayExport = strings.Join([]string{
	"------------------------------------------------------------------------------------",
	"导出信息：",
	"共3笔记录",
	"------------------------支付宝（中国）网络技术有限公司  电子客户回单------------------------",
	"交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态,交易订单号,商家订单号,备注,",
	"2024-01-15 08:10:00,餐饮美食,Luckin Coffee,/,生椰拿铁,支出,19.90,招商银行储蓄卡(1234),交易成功,2024011522001100001\t,,,",
	"2024-01-15 12:30:00,餐饮美食,美团,/,外卖,支出,25.00,招商银行储蓄卡(1234),交易成功,2024011522001100002\t,,,",
	"2024-01-15 19:45:00,交通出行,滴滴出行,/,快车,支出,31.20,招商银行储蓄卡(1234),交易成功,2024011522001100003\t,,,",
}, "\n")

// The bank side of the Meituan payment
var cmbStatement = strings.Join([]string{
	"招商银行交易流水",
	"记账日期 货币 交易金额 联机余额 交易摘要 对手信息",
	"2024-01-15 CNY -25.00 975.00 快捷支付 美团",
}, "\n")

type pipeline struct {
	db     *database.TestDBManager
	ingest *ingest.Service
	dedup  *dedup.Deduplicator
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()

	log := logger.NewNoopLogger()
	tdb := database.NewTestDBManager(t, log, nil)
	uow := tdb.UnitOfWork()

	deduplicator := dedup.NewDeduplicator(uow, tdb.TimeProvider, log, dedup.Config{
		PreferredSource: entity.SourceAlipay,
		MaxCandidates:   1000,
	})
	service := ingest.NewIngestService(
		uow,
		parser.NewDefaultRegistry(tdb.TimeProvider.Location()),
		deduplicator,
		tdb.TimeProvider,
		log,
		ingest.Limits{},
	)

	return &pipeline{db: tdb, ingest: service, dedup: deduplicator}
}

func (p *pipeline) importAlipay(t *testing.T) *usecase.ImportResult {
	t.Helper()

	result, err := p.ingest.Import(context.Background(), usecase.ParseRequest{
		FileName: "alipay_202401.csv",
		Raw:      []byte(alipayExport),
		Source:   entity.SourceAlipay,
	})
	require.NoError(t, err)
	return result
}

func (p *pipeline) commitCMB(t *testing.T) *usecase.CommitResult {
	t.Helper()

	parsed, err := parser.NewCMBPDFParser(p.db.TimeProvider.Location()).ParseText(cmbStatement)
	require.NoError(t, err)

	result, err := p.ingest.Commit(context.Background(), usecase.CommitRequest{
		FileName:     "cmb_202401.pdf",
		FileSize:     int64(len(cmbStatement)),
		Source:       entity.SourceCMB,
		SourceType:   entity.SourceTypePDF,
		Drafts:       parsed.Drafts,
		WarningCount: len(parsed.Warnings),
	})
	require.NoError(t, err)
	return result
}

func (p *pipeline) all(t *testing.T) []*entity.Transaction {
	t.Helper()

	rows, err := p.ingest.ListTransactions(context.Background(), persistence.TransactionFilter{IncludeDuplicates: true})
	require.NoError(t, err)
	return rows
}

func bySource(rows []*entity.Transaction, source entity.Source, counterparty string) *entity.Transaction {
	for _, row := range rows {
		if row.Source == source && row.Counterparty == counterparty {
			return row
		}
	}
	return nil
}

func TestPipeline_CrossSourceDuplicate(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	imported := p.importAlipay(t)
	assert.Equal(t, 3, imported.RowCount)
	assert.Equal(t, 0, imported.SkippedCount)
	assert.Equal(t, 0, imported.ProcessedGroups)
	require.NotEmpty(t, imported.BatchID)

	committed := p.commitCMB(t)
	assert.Equal(t, 1, committed.RowCount)
	assert.Equal(t, 1, committed.ProcessedGroups)
	assert.False(t, committed.DedupPending)

	rows := p.all(t)
	require.Len(t, rows, 4)

	primary := bySource(rows, entity.SourceAlipay, "美团")
	secondary := bySource(rows, entity.SourceCMB, "美团")
	require.NotNil(t, primary)
	require.NotNil(t, secondary)

	assert.False(t, primary.IsDuplicate)
	require.NotNil(t, primary.DuplicateGroupID)
	assert.Len(t, *primary.DuplicateGroupID, entity.GroupIDLength)

	assert.True(t, secondary.IsDuplicate)
	require.NotNil(t, secondary.PrimaryTransactionID)
	assert.Equal(t, primary.ID, *secondary.PrimaryTransactionID)
	assert.Equal(t, *primary.DuplicateGroupID, *secondary.DuplicateGroupID)
	require.NotNil(t, secondary.DuplicateReason)

	// Exactly one group of size 2
	grouped := 0
	for _, row := range rows {
		if row.DuplicateGroupID != nil {
			grouped++
		}
	}
	assert.Equal(t, 2, grouped)

	// Consumers see each real event once
	visible, err := p.ingest.ListTransactions(ctx, persistence.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 3)

	t.Run("A standalone run re-derives the same state", func(t *testing.T) {
		from := time.Date(2024, 1, 15, 0, 0, 0, 0, shanghai)
		to := from.AddDate(0, 0, 1)
		result, err := p.dedup.Run(ctx, usecase.DedupRequest{StartDate: &from, EndDate: &to})
		require.NoError(t, err)
		assert.Equal(t, 4, result.CandidateCount)
		assert.Equal(t, 1, result.ProcessedGroups)

		again := bySource(p.all(t), entity.SourceCMB, "美团")
		require.NotNil(t, again.PrimaryTransactionID)
		assert.Equal(t, primary.ID, *again.PrimaryTransactionID)
	})

	t.Run("Re-importing the same file adds nothing", func(t *testing.T) {
		again := p.importAlipay(t)
		assert.Equal(t, 0, again.RowCount)
		assert.Equal(t, 3, again.SkippedCount)
		assert.Empty(t, again.BatchID)

		batches, err := p.ingest.ListBatches(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, batches, 2)
		assert.Len(t, p.all(t), 4)
	})

	t.Run("Deleting the primary's batch frees the secondary", func(t *testing.T) {
		deletion, err := p.ingest.DeleteBatch(ctx, imported.BatchID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deletion.DeletedRows)
		assert.Equal(t, 1, deletion.ClearedGroups)
		assert.Equal(t, 0, deletion.ProcessedGroups)

		rows := p.all(t)
		require.Len(t, rows, 1)
		assert.False(t, rows[0].IsDuplicate)
		assert.Nil(t, rows[0].DuplicateGroupID)
		assert.Nil(t, rows[0].PrimaryTransactionID)

		_, err = p.ingest.GetBatch(ctx, imported.BatchID)
		assert.ErrorIs(t, err, errs.ErrBatchNotFound)
	})
}

func TestPipeline_CounterpartyWhitespace(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, shanghai)

	draft := func(source entity.Source, rowID, counterparty string, offset time.Duration) entity.TransactionDraft {
		return entity.TransactionDraft{
			OccurredAt:   at.Add(offset),
			Amount:       decimal.RequireFromString("42.00"),
			Direction:    entity.DirectionOut,
			Currency:     "CNY",
			Counterparty: counterparty,
			Source:       source,
			SourceRowID:  rowID,
		}
	}

	testCases := []struct {
		name   string
		padded string
	}{
		{"Trailing space", "A "},
		{"Trailing tab", "A\t"},
		{"Leading full-width space", "\u3000A"},
		{"Surrounding newlines", "\nA\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			p := newPipeline(t)

			_, err := p.ingest.Commit(ctx, usecase.CommitRequest{
				FileName: "icbc.xlsx",
				Source:   entity.SourceICBC,
				Drafts:   []entity.TransactionDraft{draft(entity.SourceICBC, "I1", tc.padded, 0)},
			})
			require.NoError(t, err)

			result, err := p.ingest.Commit(ctx, usecase.CommitRequest{
				FileName: "wechat.xlsx",
				Source:   entity.SourceWechat,
				Drafts:   []entity.TransactionDraft{draft(entity.SourceWechat, "W1", "A", 2*time.Hour)},
			})
			require.NoError(t, err)
			assert.Equal(t, 1, result.ProcessedGroups)

			rows := p.all(t)
			require.Len(t, rows, 2)
			assert.Equal(t, "A", rows[0].Counterparty)
			require.NotNil(t, rows[0].DuplicateGroupID)
			require.NotNil(t, rows[1].DuplicateGroupID)
			assert.Equal(t, *rows[0].DuplicateGroupID, *rows[1].DuplicateGroupID)

			// Neither source is preferred, so the earlier row is primary
			assert.Equal(t, entity.SourceICBC, rows[0].Source)
			assert.False(t, rows[0].IsDuplicate)
			assert.True(t, rows[1].IsDuplicate)

			// A standalone run finds the same single group
			from := time.Date(2024, 1, 15, 0, 0, 0, 0, shanghai)
			to := from.AddDate(0, 0, 1)
			run, err := p.dedup.Run(ctx, usecase.DedupRequest{StartDate: &from, EndDate: &to})
			require.NoError(t, err)
			assert.Equal(t, 2, run.CandidateCount)
			assert.Equal(t, 1, run.ProcessedGroups)
		})
	}
}

func TestPipeline_BlankCounterpartyIsNotACandidate(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	_, err := p.ingest.Commit(ctx, usecase.CommitRequest{
		FileName: "cmb.pdf",
		Source:   entity.SourceCMB,
		Drafts: []entity.TransactionDraft{{
			OccurredAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, shanghai),
			Amount:       decimal.RequireFromString("5.00"),
			Direction:    entity.DirectionOut,
			Currency:     "CNY",
			Counterparty: "\t\u3000 ",
			Source:       entity.SourceCMB,
			SourceRowID:  "C1",
		}},
	})
	require.NoError(t, err)

	rows := p.all(t)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Counterparty)

	run, err := p.dedup.Run(ctx, usecase.DedupRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, run.CandidateCount)
}

func TestPipeline_DayBoundaryUsesConfiguredZone(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	// 23:30 and 00:30 local straddle midnight in UTC+8 but share a UTC day
	lateNight := time.Date(2024, 1, 15, 23, 30, 0, 0, shanghai)
	afterMidnight := time.Date(2024, 1, 16, 0, 30, 0, 0, shanghai)

	for _, c := range []struct {
		source entity.Source
		at     time.Time
	}{
		{entity.SourceICBC, lateNight},
		{entity.SourceWechat, afterMidnight},
	} {
		_, err := p.ingest.Commit(ctx, usecase.CommitRequest{
			FileName: string(c.source),
			Source:   c.source,
			Drafts: []entity.TransactionDraft{{
				OccurredAt:   c.at,
				Amount:       decimal.RequireFromString("10.00"),
				Direction:    entity.DirectionOut,
				Currency:     "CNY",
				Counterparty: "Shop",
				Source:       c.source,
				SourceRowID:  "R1",
			}},
		})
		require.NoError(t, err)
	}

	for _, row := range p.all(t) {
		assert.False(t, row.IsDuplicate)
		assert.Nil(t, row.DuplicateGroupID)
	}
}

func TestPipeline_RowLimitRejectsBeforePersisting(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, shanghai)

	drafts := make([]entity.TransactionDraft, ingest.DefaultMaxRows+1)
	for i := range drafts {
		drafts[i] = entity.TransactionDraft{
			OccurredAt:   at,
			Amount:       decimal.RequireFromString("1.00"),
			Direction:    entity.DirectionOut,
			Currency:     "CNY",
			Counterparty: "Shop",
			Source:       entity.SourceAlipay,
			SourceRowID:  fmt.Sprintf("row-%d", i),
		}
	}

	_, err := p.ingest.Commit(ctx, usecase.CommitRequest{
		FileName: "huge.csv",
		Source:   entity.SourceAlipay,
		Drafts:   drafts,
	})
	require.ErrorIs(t, err, errs.ErrTooManyRows)

	batches, err := p.ingest.ListBatches(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, batches)
	assert.Empty(t, p.all(t))
}
