package parser

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

func wechatColumns() map[Column][]string {
	return map[Column][]string{
		ColOccurredAt:      {"交易时间"},
		ColTransactionType: {"交易类型"},
		ColCounterparty:    {"交易对方"},
		ColDescription:     {"商品"},
		ColDirection:       {"收/支"},
		ColAmount:          {"金额(元)", "金额"},
		ColAccountName:     {"支付方式"},
		ColStatus:          {"当前状态"},
		ColPlatformTxnID:   {"交易单号"},
		ColMerchantOrderID: {"商户单号"},
		ColMemo:            {"备注"},
	}
}

// WechatXLSXParser reads the wallet's bill spreadsheet. The sheet opens with a summary
// preamble and amounts carry a ¥ prefix; "/" marks an empty cell.
type WechatXLSXParser struct {
	loc      *time.Location
	resolver *ColumnResolver
	marker   string
}

// NewWechatXLSXParser creates a parser reading timestamps in loc
func NewWechatXLSXParser(loc *time.Location) *WechatXLSXParser {
	return &WechatXLSXParser{
		loc:      loc,
		resolver: NewColumnResolver(wechatColumns()),
		marker:   "微信支付",
	}
}

// Source returns entity.SourceWechat
func (p *WechatXLSXParser) Source() entity.Source { return entity.SourceWechat }

// Format returns entity.SourceTypeXLSX
func (p *WechatXLSXParser) Format() entity.SourceType { return entity.SourceTypeXLSX }

// Detect looks for the wallet name or its merchant-order header
func (p *WechatXLSXParser) Detect(raw []byte) bool {
	rows, err := readSheetRows(raw)
	if err != nil {
		return false
	}
	if containsText(rows, p.marker) {
		return true
	}
	row := findHeaderRow(rows, p.resolver, ColOccurredAt, ColAmount, ColDirection)
	return row >= 0 && p.resolver.Index(rows[row]).Has(ColMerchantOrderID)
}

// Parse converts the sheet into drafts
func (p *WechatXLSXParser) Parse(raw []byte) (*entity.ParseResult, error) {
	rows, err := readSheetRows(raw)
	if err != nil {
		return nil, err
	}

	header := findHeaderRow(rows, p.resolver, ColOccurredAt, ColAmount, ColDirection)
	if header < 0 {
		return nil, fmt.Errorf("%w: wechat header row not found", errs.ErrUnreadableFile)
	}

	result := &entity.ParseResult{Source: p.Source(), SourceType: p.Format()}
	ids := newRowFingerprinter(p.Source())
	parseTable(result, rows, header, p.resolver, func(idx HeaderIndex, cells []string) (entity.TransactionDraft, error) {
		return p.parseRow(idx, cells, ids)
	})

	return result, nil
}

func (p *WechatXLSXParser) parseRow(idx HeaderIndex, cells []string, ids *rowFingerprinter) (entity.TransactionDraft, error) {
	occurredAt, err := parseTime(idx.Get(cells, ColOccurredAt), p.loc)
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	amount, err := entity.ParseAmount(idx.Get(cells, ColAmount))
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	label := valueOrEmpty(idx.Get(cells, ColDirection))
	direction, ok := parseDirection(label)
	if !ok {
		return entity.TransactionDraft{}, fmt.Errorf("%w: neutral or unknown type %q", errs.ErrInvalidDirection, orDash(label))
	}

	description := valueOrEmpty(idx.Get(cells, ColDescription))
	if description == "" {
		description = valueOrEmpty(idx.Get(cells, ColTransactionType))
	}

	draft := entity.TransactionDraft{
		OccurredAt:            occurredAt,
		Amount:                amount,
		Direction:             direction,
		Currency:              "CNY",
		Counterparty:          truncate(valueOrEmpty(idx.Get(cells, ColCounterparty)), entity.MaxCounterpartyLength),
		Description:           truncate(description, entity.MaxDescriptionLength),
		AccountName:           truncate(valueOrEmpty(idx.Get(cells, ColAccountName)), entity.MaxShortFieldLength),
		Source:                entity.SourceWechat,
		Status:                truncate(valueOrEmpty(idx.Get(cells, ColStatus)), entity.MaxShortFieldLength),
		PlatformTransactionID: truncate(valueOrEmpty(idx.Get(cells, ColPlatformTxnID)), entity.MaxShortFieldLength),
		MerchantOrderID:       truncate(valueOrEmpty(idx.Get(cells, ColMerchantOrderID)), entity.MaxShortFieldLength),
		Memo:                  truncate(valueOrEmpty(idx.Get(cells, ColMemo)), entity.MaxMemoLength),
	}

	draft.SourceRowID = draft.PlatformTransactionID
	if draft.SourceRowID == "" {
		draft.SourceRowID = ids.ID(idx.Get(cells, ColOccurredAt), entity.FormatAmount(amount), string(direction), draft.Counterparty)
	}

	return draft, nil
}
