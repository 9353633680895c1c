package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

func alipayColumns() map[Column][]string {
	return map[Column][]string{
		ColOccurredAt:          {"交易时间", "交易创建时间", "付款时间"},
		ColAmount:              {"金额(元)", "金额"},
		ColDirection:           {"收/支"},
		ColCounterparty:        {"交易对方"},
		ColCounterpartyAccount: {"对方账号"},
		ColDescription:         {"商品说明", "商品名称"},
		ColTransactionType:     {"交易分类", "类型"},
		ColAccountName:         {"收/付款方式"},
		ColStatus:              {"交易状态"},
		ColPlatformTxnID:       {"交易订单号", "交易号", "订单号"},
		ColMerchantOrderID:     {"商家订单号"},
		ColMemo:                {"备注"},
	}
}

// AlipayCSVParser reads the consumer payment platform's CSV bill export.
// Exports are GBK or UTF-8 and start with an explanatory preamble.
type AlipayCSVParser struct {
	loc      *time.Location
	resolver *ColumnResolver
	marker   string
}

// NewAlipayCSVParser creates a parser reading timestamps in loc
func NewAlipayCSVParser(loc *time.Location) *AlipayCSVParser {
	return &AlipayCSVParser{
		loc:      loc,
		resolver: NewColumnResolver(alipayColumns()),
		marker:   "支付宝",
	}
}

// Source returns entity.SourceAlipay
func (p *AlipayCSVParser) Source() entity.Source { return entity.SourceAlipay }

// Format returns entity.SourceTypeCSV
func (p *AlipayCSVParser) Format() entity.SourceType { return entity.SourceTypeCSV }

// Detect looks for the platform name or an alipay header row
func (p *AlipayCSVParser) Detect(raw []byte) bool {
	rows, err := p.records(raw)
	if err != nil {
		return false
	}
	if containsText(rows, p.marker) {
		return true
	}
	row := findHeaderRow(rows, p.resolver, ColOccurredAt, ColAmount, ColDirection, ColCounterparty)
	return row >= 0 && p.resolver.Index(rows[row]).Has(ColPlatformTxnID)
}

// Parse converts the export into drafts
func (p *AlipayCSVParser) Parse(raw []byte) (*entity.ParseResult, error) {
	rows, err := p.records(raw)
	if err != nil {
		return nil, err
	}

	header := findHeaderRow(rows, p.resolver, ColOccurredAt, ColAmount, ColDirection)
	if header < 0 {
		return nil, fmt.Errorf("%w: alipay header row not found", errs.ErrUnreadableFile)
	}

	result := &entity.ParseResult{Source: p.Source(), SourceType: p.Format()}
	ids := newRowFingerprinter(p.Source())
	parseTable(result, rows, header, p.resolver, func(idx HeaderIndex, cells []string) (entity.TransactionDraft, error) {
		return p.parseRow(idx, cells, ids)
	})

	return result, nil
}

func (p *AlipayCSVParser) records(raw []byte) ([][]string, error) {
	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}
	return readCSV(text)
}

func (p *AlipayCSVParser) parseRow(idx HeaderIndex, cells []string, ids *rowFingerprinter) (entity.TransactionDraft, error) {
	occurredAt, err := parseTime(idx.Get(cells, ColOccurredAt), p.loc)
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	amount, err := entity.ParseAmount(idx.Get(cells, ColAmount))
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	label := idx.Get(cells, ColDirection)
	direction, ok := parseDirection(label)
	if !ok {
		if label == "" || label == "不计收支" {
			return entity.TransactionDraft{}, fmt.Errorf("%w: neutral transaction (%s) carries no income or expense", errs.ErrInvalidDirection, orDash(label))
		}
		return entity.TransactionDraft{}, fmt.Errorf("%w: %q", errs.ErrInvalidDirection, label)
	}

	draft := entity.TransactionDraft{
		OccurredAt:            occurredAt,
		Amount:                amount,
		Direction:             direction,
		Currency:              "CNY",
		Counterparty:          truncate(valueOrEmpty(idx.Get(cells, ColCounterparty)), entity.MaxCounterpartyLength),
		Description:           truncate(valueOrEmpty(idx.Get(cells, ColDescription)), entity.MaxDescriptionLength),
		AccountName:           truncate(valueOrEmpty(idx.Get(cells, ColAccountName)), entity.MaxShortFieldLength),
		Source:                entity.SourceAlipay,
		Status:                truncate(idx.Get(cells, ColStatus), entity.MaxShortFieldLength),
		CounterpartyAccount:   truncate(valueOrEmpty(idx.Get(cells, ColCounterpartyAccount)), entity.MaxShortFieldLength),
		PlatformTransactionID: truncate(idx.Get(cells, ColPlatformTxnID), entity.MaxShortFieldLength),
		MerchantOrderID:       truncate(idx.Get(cells, ColMerchantOrderID), entity.MaxShortFieldLength),
		Memo:                  truncate(valueOrEmpty(idx.Get(cells, ColMemo)), entity.MaxMemoLength),
	}

	draft.SourceRowID = draft.PlatformTransactionID
	if draft.SourceRowID == "" {
		draft.SourceRowID = ids.ID(idx.Get(cells, ColOccurredAt), entity.FormatAmount(amount), string(direction), draft.Counterparty)
	}

	return draft, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
