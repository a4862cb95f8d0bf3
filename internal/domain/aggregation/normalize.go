// Package aggregation derives dashboard figures from a raw transaction batch.
//
// Everything in this package is a pure function of its arguments: no I/O, no
// shared state, and no failure mode for well-typed input. A malformed field
// only removes its record from the aggregate that needs that field.
package aggregation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/domain/valueobject"
)

// groupingSeparator is stripped from amounts before parsing ("1,250.00").
const groupingSeparator = ","

// Bounds on a parsed amount; values outside them are unparsable.
const (
	maxAmountExponent = 30
	maxAmountDigits   = 40
)

// dateLayouts lists the date formats accepted for a transaction date, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-Jan-2006",
}

// NormalizedTransaction is a raw transaction with its amount resolved into a
// flow and its date parsed. Fields that failed to parse are flagged, never
// guessed.
type NormalizedTransaction struct {
	Flow      valueobject.Flow
	Date      time.Time
	DateValid bool
	Category  string
}

// ParseAmount parses a monetary string such as "-1,250.50".
// The whole string must be numeric once separators are removed, with at most
// maxAmountDigits significant digits and an exponent within ±maxAmountExponent.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, groupingSeparator, ""))
	if cleaned == "" || len(cleaned) > 2*maxAmountDigits {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, false
	}
	if amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseDate parses a transaction date using the accepted layouts.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CategoryLabel returns the bucket label of a category, defaulting empty
// labels to the uncategorized bucket.
func CategoryLabel(category string) string {
	if strings.TrimSpace(category) == "" {
		return entity.UncategorizedLabel
	}
	return category
}

// Normalize resolves a raw transaction. The input is not modified.
func Normalize(tx entity.RawTransaction) NormalizedTransaction {
	normalized := NormalizedTransaction{
		Flow:     valueobject.InvalidFlow(),
		Category: CategoryLabel(tx.Category),
	}

	if amount, ok := ParseAmount(tx.Amount); ok {
		normalized.Flow = valueobject.FlowFromSigned(amount)
	}

	normalized.Date, normalized.DateValid = ParseDate(tx.Date)

	return normalized
}
