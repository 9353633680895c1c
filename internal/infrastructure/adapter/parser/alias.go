package parser

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Column is a canonical column every export header is mapped onto
type Column string

// Canonical columns
const (
	ColOccurredAt          Column = "occurredAt"
	ColAmount              Column = "amount"
	ColIncome              Column = "income"
	ColExpense             Column = "expense"
	ColDirection           Column = "direction"
	ColCurrency            Column = "currency"
	ColCounterparty        Column = "counterparty"
	ColCounterpartyAccount Column = "counterpartyAccount"
	ColDescription         Column = "description"
	ColTransactionType     Column = "transactionType"
	ColSummary             Column = "summary"
	ColAccountName         Column = "accountName"
	ColStatus              Column = "status"
	ColBalance             Column = "balance"
	ColPlatformTxnID       Column = "platformTransactionId"
	ColMerchantOrderID     Column = "merchantOrderId"
	ColMemo                Column = "memo"
)

type alias struct {
	text   string
	column Column
}

// ColumnResolver maps raw header cells to canonical columns.
// It is immutable once built; aliases are tried longest first so a specific header
// such as 商家订单号 is never captured by a shorter alias like 订单号.
type ColumnResolver struct {
	aliases []alias
}

// NewColumnResolver builds a resolver from a column -> aliases table
func NewColumnResolver(table map[Column][]string) *ColumnResolver {
	aliases := make([]alias, 0, len(table)*3)
	for column, texts := range table {
		for _, text := range texts {
			aliases = append(aliases, alias{text: normalizeHeader(text), column: column})
		}
	}

	sort.Slice(aliases, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(aliases[i].text), utf8.RuneCountInString(aliases[j].text)
		if li != lj {
			return li > lj
		}
		return aliases[i].text < aliases[j].text
	})

	return &ColumnResolver{aliases: aliases}
}

// Resolve maps one header cell. Exact matches win over substring matches.
func (r *ColumnResolver) Resolve(header string) (Column, bool) {
	h := normalizeHeader(header)
	if h == "" {
		return "", false
	}
	for _, a := range r.aliases {
		if a.text == h {
			return a.column, true
		}
	}
	for _, a := range r.aliases {
		if strings.Contains(h, a.text) {
			return a.column, true
		}
	}
	return "", false
}

// Index resolves a whole header row; the first cell mapping to a column wins
func (r *ColumnResolver) Index(headers []string) HeaderIndex {
	idx := HeaderIndex{
		columns: make(map[Column]int, len(headers)),
		headers: make([]string, len(headers)),
	}
	for i, header := range headers {
		idx.headers[i] = cleanCell(header)
		column, ok := r.Resolve(header)
		if !ok {
			continue
		}
		if _, exists := idx.columns[column]; !exists {
			idx.columns[column] = i
		}
	}
	return idx
}

// HeaderIndex locates canonical columns inside a row
type HeaderIndex struct {
	columns map[Column]int
	headers []string
}

// Has reports whether the header row contains column
func (h HeaderIndex) Has(column Column) bool {
	_, ok := h.columns[column]
	return ok
}

// Get returns the cleaned cell of column, or "" when absent
func (h HeaderIndex) Get(cells []string, column Column) string {
	i, ok := h.columns[column]
	if !ok || i >= len(cells) {
		return ""
	}
	return cleanCell(cells[i])
}

// Headers returns the cleaned header cells
func (h HeaderIndex) Headers() []string {
	return h.headers
}

var headerReplacer = strings.NewReplacer(
	"（", "(",
	"）", ")",
	"\ufeff", "",
	" ", "",
	"\u3000", "",
	"\t", "",
)

func normalizeHeader(header string) string {
	return headerReplacer.Replace(cleanCell(header))
}
