package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/entity"
)

// NormalizeCashFlow reconciles the observed burn against a monthly income.
//
// Savings are clamped at zero: a shortfall is reported as fully consumed
// income, not as debt. The transfer residual is the gap between the raw
// total and its monthly figure.
func NormalizeCashFlow(totalExpense, monthCount, monthlyIncome decimal.Decimal) entity.CashFlow {
	if !monthCount.IsPositive() {
		monthCount = oneMonth
	}

	normalized := totalExpense.Div(monthCount)

	savings := monthlyIncome.Sub(normalized)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return entity.CashFlow{
		Income:           monthlyIncome,
		Expense:          normalized,
		Savings:          savings,
		TransferResidual: totalExpense.Sub(normalized).Abs(),
	}
}

// ParseIncome parses a declared monthly income. Unparsable input degrades to
// zero and reports false so the caller can surface a warning.
func ParseIncome(raw string) (decimal.Decimal, bool) {
	income, ok := ParseAmount(raw)
	if !ok {
		return decimal.Zero, false
	}
	return income, true
}
