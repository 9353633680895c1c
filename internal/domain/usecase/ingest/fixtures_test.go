package ingest

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	mcore "github.com/amirhossein-jamali/bill-processor/mocks/port/core"
)

type contextKey string

const txKey contextKey = "tx"

var (
	shanghai = time.FixedZone("CST", 8*3600)
	fixedNow = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
)

func newLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.On("With", mock.Anything).Return(logger).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newClock(t *testing.T) *mcore.MockTimeProvider {
	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(fixedNow).Maybe()
	clock.On("Location").Return(shanghai).Maybe()
	clock.On("Since", mock.Anything).Return(coreport.Millisecond).Maybe()
	return clock
}

func newDraft(source entity.Source, n int) entity.TransactionDraft {
	return entity.TransactionDraft{
		OccurredAt:   time.Date(2024, 1, 15, 10, n%60, 0, 0, shanghai),
		Amount:       decimal.RequireFromString("12.50"),
		Direction:    entity.DirectionOut,
		Currency:     "CNY",
		Counterparty: "Meituan",
		Source:       source,
		SourceRowID:  fmt.Sprintf("%s-%05d", source, n),
	}
}

func newDrafts(source entity.Source, count int) []entity.TransactionDraft {
	drafts := make([]entity.TransactionDraft, count)
	for i := range drafts {
		drafts[i] = newDraft(source, i)
	}
	return drafts
}
