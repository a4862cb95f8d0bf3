package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/domain/valueobject"
)

func newTestCache(t *testing.T) (adapter.SummaryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSummaryCache(client, time.Hour), mr
}

func sampleSummary() *entity.DerivedSummary {
	return &entity.DerivedSummary{
		TotalExpense: decimal.NewFromInt(1500),
		CategoryTotals: []entity.CategoryTotal{
			{Category: "Food", Total: decimal.NewFromInt(1200)},
			{Category: "Uncategorized", Total: decimal.NewFromInt(300)},
		},
		ObservedDateRange: &valueobject.DateRange{
			Min: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Max: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		EstimatedMonthCount:      decimal.RequireFromString("1.1"),
		NormalizedMonthlyExpense: decimal.RequireFromString("1363.6363636363636364"),
		CashFlow: entity.CashFlow{
			Income:           decimal.NewFromInt(5000),
			Expense:          decimal.RequireFromString("1363.6363636363636364"),
			Savings:          decimal.RequireFromString("3636.3636363636363636"),
			TransferResidual: decimal.RequireFromString("136.3636363636363636"),
		},
		Diagnostics: entity.SummaryDiagnostics{IncomeValid: true, ExpenseRecords: 2, IncomeRecords: 1},
	}
}

func TestSummaryCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := adapter.SummaryCacheKey{UserID: uuid.New(), Fingerprint: "abc", Income: "5000"}

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache must miss")

	want := sampleSummary()
	require.NoError(t, c.Set(ctx, key, want))

	got, err = c.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, want.TotalExpense.Equal(got.TotalExpense))
	assert.True(t, want.EstimatedMonthCount.Equal(got.EstimatedMonthCount))
	assert.True(t, want.CashFlow.Savings.Equal(got.CashFlow.Savings))
	require.Len(t, got.CategoryTotals, 2)
	assert.Equal(t, "Food", got.CategoryTotals[0].Category)
	require.NotNil(t, got.ObservedDateRange)
	assert.True(t, want.ObservedDateRange.Max.Equal(got.ObservedDateRange.Max))
	assert.Equal(t, want.Diagnostics, got.Diagnostics)
}

func TestSummaryCache_KeyParts(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	key := adapter.SummaryCacheKey{UserID: userID, Fingerprint: "abc", Income: "5000"}
	require.NoError(t, c.Set(ctx, key, sampleSummary()))

	for name, other := range map[string]adapter.SummaryCacheKey{
		"other income":      {UserID: userID, Fingerprint: "abc", Income: "4000"},
		"other fingerprint": {UserID: userID, Fingerprint: "def", Income: "5000"},
		"other user":        {UserID: uuid.New(), Fingerprint: "abc", Income: "5000"},
		"other span basis":  {UserID: userID, Basis: "expenses", Fingerprint: "abc", Income: "5000"},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := c.Get(ctx, other)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSummaryCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	key := adapter.SummaryCacheKey{UserID: userID, Fingerprint: "abc", Income: "5000"}
	otherKey := adapter.SummaryCacheKey{UserID: otherUser, Fingerprint: "abc", Income: "5000"}

	require.NoError(t, c.Set(ctx, key, sampleSummary()))
	require.NoError(t, c.Set(ctx, otherKey, sampleSummary()))
	require.NoError(t, c.Invalidate(ctx, userID))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "invalidated entry must not be served")

	got, err = c.Get(ctx, otherKey)
	require.NoError(t, err)
	assert.NotNil(t, got, "other users keep their entries")

	require.NoError(t, c.Set(ctx, key, sampleSummary()))
	got, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.NotNil(t, got, "new version is writable")
}

func TestSummaryCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := adapter.SummaryCacheKey{UserID: uuid.New(), Fingerprint: "abc", Income: ""}
	require.NoError(t, c.Set(ctx, key, sampleSummary()))

	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
