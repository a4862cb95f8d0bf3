package aggregation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/domain/entity"
)

func TestComputeSummary_Scenarios(t *testing.T) {
	t.Run("expense and salary records", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-1000", Date: "2024-01-05", Category: "Food"},
			{Amount: "-500", Date: "2024-02-05", Category: "Food"},
			{Amount: "2000", Date: "2024-01-01", Category: "Salary"},
		}

		s := ComputeSummary(batch, "5000")

		assertDecimal(t, "1500", s.TotalExpense)
		require.Len(t, s.CategoryTotals, 1)
		assert.Equal(t, "Food", s.CategoryTotals[0].Category)
		assertDecimal(t, "1500", s.CategoryTotals[0].Total)

		// The salary date widens the observed span to 35 days.
		require.NotNil(t, s.ObservedDateRange)
		assert.True(t, day(2024, time.January, 1).Equal(s.ObservedDateRange.Min))
		assert.True(t, day(2024, time.February, 5).Equal(s.ObservedDateRange.Max))
		assertDecimal(t, "1.1", s.EstimatedMonthCount)

		normalized := s.TotalExpense.Div(s.EstimatedMonthCount)
		assert.True(t, normalized.Equal(s.NormalizedMonthlyExpense))
		assert.True(t, mustDecimal("5000").Sub(normalized).Equal(s.CashFlow.Savings))
		assert.True(t, s.TotalExpense.Sub(normalized).Equal(s.CashFlow.TransferResidual))
	})

	t.Run("expense and salary records with expense span basis", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-1000", Date: "2024-01-05", Category: "Food"},
			{Amount: "-500", Date: "2024-02-05", Category: "Food"},
			{Amount: "2000", Date: "2024-01-01", Category: "Salary"},
		}

		s := ComputeSummary(batch, "5000", WithSpanBasis(SpanExpensesOnly))

		assertDecimal(t, "1500", s.TotalExpense)
		assertDecimal(t, "1", s.EstimatedMonthCount)
		assertDecimal(t, "1500", s.NormalizedMonthlyExpense)
		assertDecimal(t, "5000", s.CashFlow.Income)
		assertDecimal(t, "1500", s.CashFlow.Expense)
		assertDecimal(t, "3500", s.CashFlow.Savings)
		assertDecimal(t, "0", s.CashFlow.TransferResidual)
		// The observed range still covers every record.
		assert.True(t, day(2024, time.January, 1).Equal(s.ObservedDateRange.Min))
	})

	t.Run("empty batch", func(t *testing.T) {
		s := ComputeSummary(nil, "5000")

		assertDecimal(t, "0", s.TotalExpense)
		assert.NotNil(t, s.CategoryTotals)
		assert.Empty(t, s.CategoryTotals)
		assert.Nil(t, s.ObservedDateRange)
		assertDecimal(t, "1", s.EstimatedMonthCount)
		assertDecimal(t, "0", s.NormalizedMonthlyExpense)
		assertDecimal(t, "5000", s.CashFlow.Savings)
		assertDecimal(t, "0", s.CashFlow.TransferResidual)
		assert.True(t, s.Diagnostics.IncomeValid)
	})

	t.Run("sixty day span", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-1000", Date: "2024-01-01", Category: "Rent"},
			{Amount: "-1000", Date: "2024-01-31", Category: "Rent"},
			{Amount: "-1000", Date: "2024-03-01", Category: "Rent"},
		}

		s := ComputeSummary(batch, "1000")

		assertDecimal(t, "3000", s.TotalExpense)
		assertDecimal(t, "2", s.EstimatedMonthCount)
		assertDecimal(t, "1500", s.NormalizedMonthlyExpense)
		assertDecimal(t, "1500", s.CashFlow.TransferResidual)
		assertDecimal(t, "0", s.CashFlow.Savings)
	})

	t.Run("unparsable amount is skipped", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "abc"},
			{Amount: "-200", Date: "2024-03-01", Category: "Rent"},
		}

		s := ComputeSummary(batch, "1000")

		assertDecimal(t, "200", s.TotalExpense)
		require.Len(t, s.CategoryTotals, 1)
		assert.Equal(t, "Rent", s.CategoryTotals[0].Category)
		assert.Equal(t, 1, s.Diagnostics.InvalidAmountRecords)
		assert.Equal(t, 1, s.Diagnostics.ExpenseRecords)
	})
}

func TestComputeSummary_MalformedRecordResilience(t *testing.T) {
	batch := []entity.RawTransaction{
		{Amount: "-50", Date: "not-a-date", Category: "Food"},
		{Amount: "xyz", Date: "2024-01-01", Category: "Food"},
		{Amount: "-100", Date: "2024-01-10", Category: "Food"},
	}

	var s *entity.DerivedSummary
	require.NotPanics(t, func() {
		s = ComputeSummary(batch, "oops")
	})

	assertDecimal(t, "150", s.TotalExpense)
	require.Len(t, s.CategoryTotals, 1)
	assertDecimal(t, "150", s.CategoryTotals[0].Total)
	require.NotNil(t, s.ObservedDateRange)
	assert.True(t, day(2024, time.January, 1).Equal(s.ObservedDateRange.Min))
	assert.True(t, day(2024, time.January, 10).Equal(s.ObservedDateRange.Max))
	assert.Equal(t, 1, s.Diagnostics.InvalidAmountRecords)
	assert.Equal(t, 1, s.Diagnostics.InvalidDateRecords)

	// Unparsable income degrades to zero.
	assert.False(t, s.Diagnostics.IncomeValid)
	assertDecimal(t, "0", s.CashFlow.Income)
	assertDecimal(t, "0", s.CashFlow.Savings)
}

func TestComputeSummary_OutOfRangeExponents(t *testing.T) {
	batch := []entity.RawTransaction{
		{Amount: "-1e100000000", Date: "2024-01-01", Category: "Food"},
		{Amount: "-1.5", Date: "2024-01-02", Category: "Food"},
	}

	done := make(chan *entity.DerivedSummary, 1)
	go func() {
		done <- ComputeSummary(batch, "1e100000000")
	}()

	select {
	case s := <-done:
		assertDecimal(t, "1.5", s.TotalExpense)
		assert.Equal(t, 1, s.Diagnostics.InvalidAmountRecords)
		assert.False(t, s.Diagnostics.IncomeValid)
		assertDecimal(t, "0", s.CashFlow.Income)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "summary of a batch with an out-of-range exponent did not return")
	}
}

func TestComputeSummary_Properties(t *testing.T) {
	batches := map[string][]entity.RawTransaction{
		"empty":       {},
		"single day":  {{Amount: "-10", Date: "2024-05-05"}, {Amount: "-15", Date: "2024-05-05"}},
		"income only": {{Amount: "100", Date: "2024-05-05"}},
		"mixed":       generateBatch(500),
		"separators":  {{Amount: "-1,000.10", Date: "2024-01-01", Category: "A"}, {Amount: "-2,000", Date: "2024-06-30", Category: "B"}},
	}
	incomes := []string{"0", "100", "2,500", "1000000", "bad"}

	for name, batch := range batches {
		for _, income := range incomes {
			t.Run(fmt.Sprintf("%s/%s", name, income), func(t *testing.T) {
				s := ComputeSummary(batch, income)

				assert.False(t, s.TotalExpense.IsNegative())
				assert.True(t, s.TotalExpense.Equal(expectedBurn(batch)))

				sum := decimal.Zero
				for _, ct := range s.CategoryTotals {
					sum = sum.Add(ct.Total)
				}
				assert.True(t, sum.Equal(s.TotalExpense), "categories sum %s, total %s", sum, s.TotalExpense)

				assert.True(t, s.EstimatedMonthCount.GreaterThanOrEqual(decimal.NewFromInt(1)))
				assert.True(t, s.NormalizedMonthlyExpense.Equal(s.TotalExpense.Div(s.EstimatedMonthCount)))
				assert.False(t, s.CashFlow.Savings.IsNegative())
				assert.False(t, s.CashFlow.TransferResidual.IsNegative())

				again := ComputeSummary(batch, income)
				assert.Equal(t, render(s), render(again))
			})
		}
	}
}

func TestComputeSummary_ShardedMatchesSequential(t *testing.T) {
	batch := generateBatch(10000)

	sequential := ComputeSummary(batch, "25,000", WithShardSize(0))
	sharded := ComputeSummary(batch, "25,000", WithShardSize(333), WithMaxWorkers(4))
	defaultSharding := ComputeSummary(batch, "25,000")

	assert.Equal(t, render(sequential), render(sharded))
	assert.Equal(t, render(sequential), render(defaultSharding))
}

func TestComputeSummary_DoesNotMutateInput(t *testing.T) {
	batch := generateBatch(50)
	snapshot := make([]entity.RawTransaction, len(batch))
	copy(snapshot, batch)

	_ = ComputeSummary(batch, "1000", WithShardSize(7))

	assert.Equal(t, snapshot, batch)
}

// expectedBurn recomputes the total independently of the engine.
func expectedBurn(batch []entity.RawTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range batch {
		amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(tx.Amount), ",", ""))
		if err != nil || !amount.IsNegative() {
			continue
		}
		total = total.Add(amount.Neg())
	}
	return total
}

func generateBatch(n int) []entity.RawTransaction {
	categories := []string{"Food", "Rent", "Travel", "Health", "Shopping"}
	start := day(2024, time.January, 1)

	batch := make([]entity.RawTransaction, n)
	for i := 0; i < n; i++ {
		tx := entity.RawTransaction{
			Amount:      fmt.Sprintf("-%d.25", i%97),
			Date:        start.AddDate(0, 0, i%120).Format("2006-01-02"),
			Category:    categories[i%len(categories)],
			Description: fmt.Sprintf("tx %d", i),
		}
		switch {
		case i%11 == 0:
			tx.Amount = "bad"
		case i%7 == 0:
			tx.Amount = fmt.Sprintf("1,2%02d", i%100)
		case i%23 == 0:
			tx.Amount = fmt.Sprintf("-1,%03d.50", i%1000)
		}
		if i%13 == 0 {
			tx.Date = "32/13/2024"
		}
		if i%17 == 0 {
			tx.Category = ""
		}
		batch[i] = tx
	}
	return batch
}

func render(s *entity.DerivedSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%s months=%s normalized=%s\n", s.TotalExpense, s.EstimatedMonthCount, s.NormalizedMonthlyExpense)
	fmt.Fprintf(&b, "cashflow=%s/%s/%s/%s\n", s.CashFlow.Income, s.CashFlow.Expense, s.CashFlow.Savings, s.CashFlow.TransferResidual)
	if s.ObservedDateRange != nil {
		fmt.Fprintf(&b, "range=%s..%s\n", s.ObservedDateRange.Min, s.ObservedDateRange.Max)
	}
	for _, ct := range s.CategoryTotals {
		fmt.Fprintf(&b, "%s=%s\n", ct.Category, ct.Total)
	}
	fmt.Fprintf(&b, "%+v\n", s.Diagnostics)
	return b.String()
}
