package aggregation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/valueobject"
)

// AverageMonthDays is the mean Gregorian month length.
var AverageMonthDays = decimal.RequireFromString("30.44")

var (
	oneMonth = decimal.NewFromInt(1)
	dayNanos = decimal.NewFromInt(int64(24 * time.Hour))
)

// SpanBasis selects which records feed the month-count estimate.
type SpanBasis int

const (
	// SpanAllTransactions uses every record with a parsed date.
	SpanAllTransactions SpanBasis = iota
	// SpanExpensesOnly uses only valid expense records with a parsed date.
	SpanExpensesOnly
)

// String returns the configuration name of the basis.
func (b SpanBasis) String() string {
	if b == SpanExpensesOnly {
		return "expenses"
	}
	return "all"
}

// ParseSpanBasis reads "all" or "expenses".
func ParseSpanBasis(s string) (SpanBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return SpanAllTransactions, nil
	case "expenses":
		return SpanExpensesOnly, nil
	default:
		return SpanAllTransactions, fmt.Errorf("unknown span basis %q", s)
	}
}

// spanAccumulator tracks min/max of observed dates. Merging is min/max, so
// it is associative and commutative.
type spanAccumulator struct {
	rng  valueobject.DateRange
	seen bool
}

func (s *spanAccumulator) observe(t time.Time) {
	if !s.seen {
		s.rng = valueobject.DateRange{Min: t, Max: t}
		s.seen = true
		return
	}
	s.rng = s.rng.Extend(t)
}

func (s *spanAccumulator) merge(other spanAccumulator) {
	if !other.seen {
		return
	}
	if !s.seen {
		*s = other
		return
	}
	s.rng = s.rng.Union(other.rng)
}

func (s *spanAccumulator) dateRange() *valueobject.DateRange {
	if !s.seen {
		return nil
	}
	rng := s.rng
	return &rng
}

// DaySpan returns the length of a range in fractional days.
func DaySpan(r valueobject.DateRange) decimal.Decimal {
	return decimal.NewFromInt(int64(r.Span())).Div(dayNanos)
}

// EstimateMonthCount converts a date range into a month count rounded to one
// decimal place and never below one. A nil range counts as one month.
func EstimateMonthCount(r *valueobject.DateRange) decimal.Decimal {
	if r == nil {
		return oneMonth
	}
	months := DaySpan(*r).Div(AverageMonthDays).Round(1)
	if months.LessThan(oneMonth) {
		return oneMonth
	}
	return months
}
