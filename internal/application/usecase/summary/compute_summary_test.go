package summary

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

func TestComputeSummaryUseCase_Execute(t *testing.T) {
	t.Run("computes the batch", func(t *testing.T) {
		uc := NewComputeSummaryUseCase(0)

		out, err := uc.Execute(context.Background(), ComputeSummaryInput{
			Transactions: []entity.RawTransaction{
				{Amount: "-300", Date: "2024-01-01", Category: "Rent"},
				{Amount: "-100", Date: "2024-01-15"},
				{Amount: "abc", Date: "2024-01-20", Category: "Rent"},
			},
			MonthlyIncome: "1000",
		})

		require.NoError(t, err)
		assert.True(t, out.TotalExpense.Equal(decimal.NewFromInt(400)))
		require.Len(t, out.CategoryTotals, 2)
		assert.Equal(t, "Rent", out.CategoryTotals[0].Category)
		assert.Equal(t, entity.UncategorizedLabel, out.CategoryTotals[1].Category)
		assert.Equal(t, 1, out.Diagnostics.InvalidAmountRecords)
		assert.True(t, out.CashFlow.Savings.Equal(decimal.NewFromInt(600)))
	})

	t.Run("rejects oversized batches", func(t *testing.T) {
		uc := NewComputeSummaryUseCase(2)

		_, err := uc.Execute(context.Background(), ComputeSummaryInput{
			Transactions: make([]entity.RawTransaction, 3),
		})

		var summaryErr *domainerror.SummaryError
		require.ErrorAs(t, err, &summaryErr)
		assert.Equal(t, domainerror.ErrCodeBatchTooLarge, summaryErr.Code)
		assert.ErrorIs(t, err, domainerror.ErrBatchTooLarge)
	})
}
