package parser

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

func icbcColumns() map[Column][]string {
	return map[Column][]string{
		ColOccurredAt:          {"交易日期", "交易时间", "记账日期"},
		ColIncome:              {"记账金额(收入)", "交易金额(收入)", "收入金额", "收入"},
		ColExpense:             {"记账金额(支出)", "交易金额(支出)", "支出金额", "支出"},
		ColAmount:              {"交易金额", "发生额", "金额"},
		ColCurrency:            {"记账币种", "交易币种", "币种"},
		ColBalance:             {"余额"},
		ColSummary:             {"摘要"},
		ColDescription:         {"交易场所", "附言"},
		ColCounterparty:        {"对方户名", "对方名称"},
		ColCounterpartyAccount: {"对方账户", "对方账号"},
		ColAccountName:         {"账号", "卡号"},
	}
}

// ICBCXLSXParser reads the bank's account detail spreadsheet. Amounts arrive either as
// split income/expense columns or as a single signed amount.
type ICBCXLSXParser struct {
	loc      *time.Location
	resolver *ColumnResolver
	splitter *SummarySplitter
	marker   string
}

// NewICBCXLSXParser creates a parser reading dates in loc
func NewICBCXLSXParser(loc *time.Location) *ICBCXLSXParser {
	return &ICBCXLSXParser{
		loc:      loc,
		resolver: NewColumnResolver(icbcColumns()),
		splitter: NewSummarySplitter(bankSummaryKeywords()),
		marker:   "工商银行",
	}
}

// Source returns entity.SourceICBC
func (p *ICBCXLSXParser) Source() entity.Source { return entity.SourceICBC }

// Format returns entity.SourceTypeXLSX
func (p *ICBCXLSXParser) Format() entity.SourceType { return entity.SourceTypeXLSX }

// Detect looks for the bank name or a header carrying a summary column
func (p *ICBCXLSXParser) Detect(raw []byte) bool {
	rows, err := readSheetRows(raw)
	if err != nil {
		return false
	}
	return containsText(rows, p.marker) || findHeaderRow(rows, p.resolver, ColOccurredAt, ColSummary) >= 0
}

// Parse converts the sheet into drafts
func (p *ICBCXLSXParser) Parse(raw []byte) (*entity.ParseResult, error) {
	rows, err := readSheetRows(raw)
	if err != nil {
		return nil, err
	}

	header := findHeaderRow(rows, p.resolver, ColOccurredAt, ColSummary)
	if header < 0 {
		return nil, fmt.Errorf("%w: icbc header row not found", errs.ErrUnreadableFile)
	}
	idx := p.resolver.Index(rows[header])
	if !idx.Has(ColAmount) && !(idx.Has(ColIncome) && idx.Has(ColExpense)) {
		return nil, fmt.Errorf("%w: icbc header has no amount columns", errs.ErrUnreadableFile)
	}

	result := &entity.ParseResult{Source: p.Source(), SourceType: p.Format()}
	ids := newRowFingerprinter(p.Source())
	parseTable(result, rows, header, p.resolver, func(idx HeaderIndex, cells []string) (entity.TransactionDraft, error) {
		return p.parseRow(idx, cells, ids)
	})

	return result, nil
}

func (p *ICBCXLSXParser) parseRow(idx HeaderIndex, cells []string, ids *rowFingerprinter) (entity.TransactionDraft, error) {
	occurredAt, err := parseTime(idx.Get(cells, ColOccurredAt), p.loc)
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	amount, direction, err := p.amountOf(idx, cells)
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	balance, err := optionalAmount(idx.Get(cells, ColBalance))
	if err != nil {
		return entity.TransactionDraft{}, fmt.Errorf("balance: %w", err)
	}

	summary := idx.Get(cells, ColSummary)
	label, counterparty := p.splitter.Split(summary)
	if named := valueOrEmpty(idx.Get(cells, ColCounterparty)); named != "" {
		counterparty = named
	}

	currency := valueOrEmpty(idx.Get(cells, ColCurrency))
	if currency == "" || currency == "人民币" {
		currency = "CNY"
	}

	description := label
	if place := valueOrEmpty(idx.Get(cells, ColDescription)); place != "" {
		description = label + " " + place
	}

	draft := entity.TransactionDraft{
		OccurredAt:          occurredAt,
		Amount:              amount,
		Direction:           direction,
		Currency:            truncate(currency, entity.MaxShortFieldLength),
		Counterparty:        truncate(counterparty, entity.MaxCounterpartyLength),
		Description:         truncate(description, entity.MaxDescriptionLength),
		AccountName:         truncate(valueOrEmpty(idx.Get(cells, ColAccountName)), entity.MaxShortFieldLength),
		Source:              entity.SourceICBC,
		Balance:             balance,
		CounterpartyAccount: truncate(valueOrEmpty(idx.Get(cells, ColCounterpartyAccount)), entity.MaxShortFieldLength),
		Memo:                truncate(summary, entity.MaxMemoLength),
	}

	balanceText := ""
	if balance != nil {
		balanceText = entity.FormatAmount(*balance)
	}
	draft.SourceRowID = ids.ID(idx.Get(cells, ColOccurredAt), entity.FormatAmount(amount), string(direction), balanceText, summary, draft.Counterparty)

	return draft, nil
}

// amountOf reads split income/expense columns, falling back to a signed amount.
// A row may use only one of the two conventions.
func (p *ICBCXLSXParser) amountOf(idx HeaderIndex, cells []string) (decimal.Decimal, entity.Direction, error) {
	income, err := optionalAmount(idx.Get(cells, ColIncome))
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("income: %w", err)
	}
	expense, err := optionalAmount(idx.Get(cells, ColExpense))
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("expense: %w", err)
	}

	hasIncome := income != nil && !income.IsZero()
	hasExpense := expense != nil && !expense.IsZero()

	switch {
	case hasIncome && hasExpense:
		return decimal.Zero, "", fmt.Errorf("%w: row has both income and expense", errs.ErrInvalidAmount)
	case hasIncome:
		magnitude, _ := entity.SplitSigned(*income)
		return magnitude, entity.DirectionIn, nil
	case hasExpense:
		magnitude, _ := entity.SplitSigned(*expense)
		return magnitude, entity.DirectionOut, nil
	}

	signed, err := optionalAmount(idx.Get(cells, ColAmount))
	if err != nil {
		return decimal.Zero, "", err
	}
	if signed == nil || signed.IsZero() {
		return decimal.Zero, "", fmt.Errorf("%w: row has no amount", errs.ErrInvalidAmount)
	}
	magnitude, direction := entity.SplitSigned(*signed)
	return magnitude, direction, nil
}
