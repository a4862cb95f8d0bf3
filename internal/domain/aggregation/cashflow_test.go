package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, mustDecimal(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestNormalizeCashFlow(t *testing.T) {
	t.Run("income covers burn", func(t *testing.T) {
		cf := NormalizeCashFlow(mustDecimal("1500"), mustDecimal("1"), mustDecimal("5000"))

		assertDecimal(t, "5000", cf.Income)
		assertDecimal(t, "1500", cf.Expense)
		assertDecimal(t, "3500", cf.Savings)
		assertDecimal(t, "0", cf.TransferResidual)
	})

	t.Run("shortfall clamps savings at zero", func(t *testing.T) {
		cf := NormalizeCashFlow(mustDecimal("3000"), mustDecimal("2"), mustDecimal("1000"))

		assertDecimal(t, "1500", cf.Expense)
		assertDecimal(t, "0", cf.Savings)
		assertDecimal(t, "1500", cf.TransferResidual)
	})

	t.Run("non-positive month count is treated as one month", func(t *testing.T) {
		cf := NormalizeCashFlow(mustDecimal("900"), decimal.Zero, mustDecimal("1000"))

		assertDecimal(t, "900", cf.Expense)
		assertDecimal(t, "100", cf.Savings)
	})

	t.Run("savings never negative", func(t *testing.T) {
		incomes := []string{"0", "1", "499.99", "500", "10000", "-200"}
		for _, income := range incomes {
			cf := NormalizeCashFlow(mustDecimal("1000"), mustDecimal("2"), mustDecimal(income))
			assert.False(t, cf.Savings.IsNegative(), "income %s", income)
			assert.False(t, cf.TransferResidual.IsNegative(), "income %s", income)
		}
	})
}

func TestParseIncome(t *testing.T) {
	income, ok := ParseIncome("5,000")
	assert.True(t, ok)
	assertDecimal(t, "5000", income)

	income, ok = ParseIncome("five thousand")
	assert.False(t, ok)
	assert.True(t, income.IsZero())

	_, ok = ParseIncome("")
	assert.False(t, ok)
}
