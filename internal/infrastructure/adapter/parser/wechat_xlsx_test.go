package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

func wechatRows() [][]any {
	return [][]any{
		{"微信支付账单明细"},
		{"微信昵称：[测试]"},
		{"起始时间：[2024-01-01 00:00:00] 终止时间：[2024-01-31 23:59:59]"},
		{"----------------------微信支付账单明细列表--------------------"},
		{"交易时间", "交易类型", "交易对方", "商品", "收/支", "金额(元)", "支付方式", "当前状态", "交易单号", "商户单号", "备注"},
		{"2024-01-15 12:31:05", "商户消费", "Luckin Coffee", "生椰拿铁", "支出", "¥25.00", "零钱", "支付成功", "4200001", "M0001", "/"},
		{"2024-01-16 09:00:00", "转账", "李四", "/", "收入", "¥100.00", "/", "已收钱", "1000050001", "/", "/"},
		{"2024-01-17 10:00:00", "零钱提现", "/", "/", "/", "¥50.00", "零钱", "提现已到账", "1000060001", "/", "/"},
		{"2024-01-18 10:00:00", "商户消费", "美团", "外卖", "支出", "abc", "零钱", "支付成功", "4200002", "/", "/"},
	}
}

func TestWechatXLSXParser_Parse(t *testing.T) {
	p := NewWechatXLSXParser(shanghai)

	result, err := p.Parse(xlsxBytes(t, wechatRows()))
	require.NoError(t, err)

	assert.Equal(t, entity.SourceWechat, result.Source)
	assert.Equal(t, entity.SourceTypeXLSX, result.SourceType)
	assert.Equal(t, 4, result.DataRows)
	require.Len(t, result.Drafts, 2)
	require.Len(t, result.Warnings, 2)

	first := result.Drafts[0]
	assert.True(t, time.Date(2024, 1, 15, 12, 31, 5, 0, shanghai).Equal(first.OccurredAt))
	assert.True(t, decimal.RequireFromString("25").Equal(first.Amount))
	assert.Equal(t, entity.DirectionOut, first.Direction)
	assert.Equal(t, "Luckin Coffee", first.Counterparty)
	assert.Equal(t, "4200001", first.SourceRowID)
	assert.Equal(t, "M0001", first.MerchantOrderID)
	assert.Empty(t, first.Memo)

	// Placeholder "/" cells are blank; the description falls back to the type
	second := result.Drafts[1]
	assert.Equal(t, entity.DirectionIn, second.Direction)
	assert.Equal(t, "转账", second.Description)
	assert.Empty(t, second.AccountName)
	assert.Empty(t, second.MerchantOrderID)

	assert.Equal(t, 8, result.Warnings[0].Row)
	assert.Contains(t, result.Warnings[0].Reason, "neutral")
	assert.Equal(t, 9, result.Warnings[1].Row)
}

func TestWechatXLSXParser_Detect(t *testing.T) {
	p := NewWechatXLSXParser(shanghai)

	assert.True(t, p.Detect(xlsxBytes(t, wechatRows())))
	assert.False(t, p.Detect(xlsxBytes(t, icbcRows())))
	assert.False(t, p.Detect([]byte("not a workbook")))
}

func TestWechatXLSXParser_Unreadable(t *testing.T) {
	_, err := NewWechatXLSXParser(shanghai).Parse([]byte("PK\x03\x04 truncated"))
	assert.ErrorIs(t, err, errs.ErrUnreadableFile)

	_, err = NewWechatXLSXParser(shanghai).Parse(xlsxBytes(t, [][]any{{"hello"}}))
	assert.ErrorIs(t, err, errs.ErrUnreadableFile)
}
