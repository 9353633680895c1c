package entity

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GroupIDLength is the number of hex characters kept from the group hash
const GroupIDLength = 16

// DuplicateReasonCrossSource is stored on every secondary row
const DuplicateReasonCrossSource = "cross-source duplicate: same day, amount, direction and counterparty"

// DuplicateCandidate carries the fields a row is grouped on
type DuplicateCandidate struct {
	ID           uint64
	OccurredAt   time.Time
	Amount       decimal.Decimal
	Direction    Direction
	Counterparty string
	Source       Source
}

// GroupKey identifies one (calendar day, amount, direction, counterparty) bucket
type GroupKey struct {
	Day          string
	DayStart     time.Time
	DayEnd       time.Time
	Amount       decimal.Decimal
	Direction    Direction
	Counterparty string
}

// NormalizeCounterparty trims surrounding whitespace
func NormalizeCounterparty(counterparty string) string {
	return strings.TrimSpace(counterparty)
}

// NewGroupKey builds the key of a candidate. It returns false when the candidate has no
// usable counterparty and therefore cannot be grouped.
func NewGroupKey(c DuplicateCandidate, loc *time.Location) (GroupKey, bool) {
	counterparty := NormalizeCounterparty(c.Counterparty)
	if counterparty == "" {
		return GroupKey{}, false
	}
	start, end := DayBounds(c.OccurredAt, loc)
	return GroupKey{
		Day:          CalendarDay(c.OccurredAt, loc),
		DayStart:     start,
		DayEnd:       end,
		Amount:       c.Amount,
		Direction:    c.Direction,
		Counterparty: counterparty,
	}, true
}

// String renders the canonical key text that the group id is derived from
func (k GroupKey) String() string {
	return strings.Join([]string{k.Day, FormatAmount(k.Amount), string(k.Direction), k.Counterparty}, "|")
}

// GroupID is a truncated SHA-1 of the key text
func (k GroupKey) GroupID() string {
	sum := sha1.Sum([]byte(k.String()))
	return hex.EncodeToString(sum[:])[:GroupIDLength]
}
