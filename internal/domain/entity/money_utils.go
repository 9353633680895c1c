package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest magnitude a single transaction may carry
var MaxAmount = decimal.New(1, 10)

var currencyMarks = []string{"CNY", "RMB", "¥", "￥", "$", "元", "\u00a0", " ", "\t", "\""}

// ParseSignedAmount parses an amount as exported by a platform and keeps its sign.
//
// Accepted shapes include "1,234.56", "-12.50", "+12.50", "(12.50)", "¥12.50", "12.50元" and
// the decimal-comma form "1.234,56".
func ParseSignedAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	for _, mark := range currencyMarks {
		s = strings.ReplaceAll(s, mark, "")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	switch {
	case strings.HasPrefix(s, "-"):
		negative = !negative
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasSuffix(s, "-"):
		negative = !negative
		s = s[:len(s)-1]
	}

	s = normalizeSeparators(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseAmount parses a magnitude and rejects negative input
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := ParseSignedAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errs.ErrNegativeAmount
	}
	return d, nil
}

// SplitSigned turns a signed amount into a magnitude and a direction
func SplitSigned(d decimal.Decimal) (decimal.Decimal, Direction) {
	if d.IsNegative() {
		return d.Neg(), DirectionOut
	}
	return d, DirectionIn
}

// ValidateAmount checks the magnitude invariants every persisted amount satisfies
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.ErrNegativeAmount
	}
	if !d.IsPositive() {
		return fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}
	if d.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: exceeds %s", errs.ErrInvalidAmount, MaxAmount.String())
	}
	if !d.Equal(d.Round(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MaxDecimalPlaces)
}

// normalizeSeparators strips grouping separators and turns a decimal comma into a point
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot < 0 && strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2:
		// 12,5 or 12,50
		return strings.Replace(s, ",", ".", 1)
	default:
		return strings.ReplaceAll(s, ",", "")
	}
}
