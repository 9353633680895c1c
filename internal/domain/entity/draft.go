package entity

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field-length caps enforced by the validator and respected by parsers
const (
	MaxSourceRowIDLength  = 128
	MaxCounterpartyLength = 256
	MaxDescriptionLength  = 1024
	MaxMemoLength         = 512
	MaxShortFieldLength   = 128
	MaxSourceRawBytes     = 4096
	maxSourceRawValue     = 256
)

// TransactionDraft is a normalized, unpersisted transaction produced by a parser
type TransactionDraft struct {
	OccurredAt   time.Time
	Amount       decimal.Decimal // always a magnitude; sign lives in Direction
	Direction    Direction
	Currency     string
	Counterparty string
	Description  string
	Category     string // owned by an external classifier
	AccountName  string
	Source       Source
	SourceRaw    map[string]string
	SourceRowID  string

	Balance               *decimal.Decimal
	Status                string
	CounterpartyAccount   string
	PlatformTransactionID string
	MerchantOrderID       string
	Memo                  string
}

// ParseWarning records a row a parser skipped and why
type ParseWarning struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ParseResult is the output of one parse call
type ParseResult struct {
	Source     Source
	SourceType SourceType
	Drafts     []TransactionDraft
	Warnings   []ParseWarning
	// DataRows counts every row below the header, so DataRows == len(Drafts) + len(Warnings)
	DataRows int
}

// AddWarning records a skipped row
func (r *ParseResult) AddWarning(row int, reason string) {
	r.Warnings = append(r.Warnings, ParseWarning{Row: row, Reason: reason})
}

// NewSourceRaw builds a bounded copy of an original row payload.
// Long values are truncated and keys stop being added once the payload reaches MaxSourceRawBytes.
func NewSourceRaw(headers, cells []string) map[string]string {
	raw := make(map[string]string, len(headers))
	size := 2
	for i, header := range headers {
		if header == "" || i >= len(cells) {
			continue
		}
		value := truncateRunes(cells[i], maxSourceRawValue)
		entry := len(header) + len(value) + 6
		if size+entry > MaxSourceRawBytes {
			break
		}
		raw[header] = value
		size += entry
	}
	return raw
}

// SourceRawSize approximates the JSON size of a raw payload
func SourceRawSize(raw map[string]string) int {
	size := 2
	for k, v := range raw {
		size += len(k) + len(v) + 6
	}
	return size
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
