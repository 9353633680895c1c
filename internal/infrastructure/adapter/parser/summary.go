package parser

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SummaryKeyword tags a bank summary containing Keyword with Label
type SummaryKeyword struct {
	Keyword string
	Label   string
}

// SummarySplitter decomposes a free-text bank summary into a transaction type label
// and a counterparty name
type SummarySplitter struct {
	keywords []SummaryKeyword
}

// NewSummarySplitter copies keywords and orders them longest first, so 跨行转账
// is preferred over 转账
func NewSummarySplitter(keywords []SummaryKeyword) *SummarySplitter {
	sorted := make([]SummaryKeyword, 0, len(keywords))
	for _, k := range keywords {
		if strings.TrimSpace(k.Keyword) != "" {
			sorted = append(sorted, k)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Keyword) > utf8.RuneCountInString(sorted[j].Keyword)
	})
	return &SummarySplitter{keywords: sorted}
}

// Split returns (label, counterparty). Without a keyword match the first
// whitespace-separated token is the label and the remainder the counterparty.
func (s *SummarySplitter) Split(summary string) (string, string) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", ""
	}

	for _, k := range s.keywords {
		i := strings.Index(summary, k.Keyword)
		if i < 0 {
			continue
		}
		rest := summary[:i] + " " + summary[i+len(k.Keyword):]
		return k.Label, trimSummaryNoise(rest)
	}

	fields := strings.Fields(summary)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], trimSummaryNoise(strings.Join(fields[1:], " "))
}

func trimSummaryNoise(s string) string {
	return strings.Trim(strings.Join(strings.Fields(s), " "), "-—_:：/|·()（） ")
}

// bankSummaryKeywords is shared by the bank statement parsers
func bankSummaryKeywords() []SummaryKeyword {
	return []SummaryKeyword{
		{Keyword: "跨行转账", Label: "跨行转账"},
		{Keyword: "他行汇入", Label: "转账"},
		{Keyword: "转账汇款", Label: "转账"},
		{Keyword: "转账", Label: "转账"},
		{Keyword: "汇款", Label: "转账"},
		{Keyword: "快捷支付", Label: "快捷支付"},
		{Keyword: "网联支付", Label: "快捷支付"},
		{Keyword: "银联支付", Label: "快捷支付"},
		{Keyword: "银联消费", Label: "消费"},
		{Keyword: "消费", Label: "消费"},
		{Keyword: "代发工资", Label: "工资"},
		{Keyword: "工资", Label: "工资"},
		{Keyword: "结息", Label: "利息"},
		{Keyword: "利息", Label: "利息"},
		{Keyword: "信用卡还款", Label: "还款"},
		{Keyword: "还款", Label: "还款"},
		{Keyword: "退款", Label: "退款"},
		{Keyword: "ATM取款", Label: "取现"},
		{Keyword: "取现", Label: "取现"},
		{Keyword: "手续费", Label: "手续费"},
		{Keyword: "年费", Label: "手续费"},
	}
}
