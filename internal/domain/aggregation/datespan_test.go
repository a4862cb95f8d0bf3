package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestEstimateMonthCount(t *testing.T) {
	start := day(2024, time.January, 1)

	tests := []struct {
		name     string
		rng      *valueobject.DateRange
		expected string
	}{
		{name: "no dates", rng: nil, expected: "1"},
		{name: "same day", rng: &valueobject.DateRange{Min: start, Max: start}, expected: "1"},
		{name: "two weeks", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 14)}, expected: "1"},
		{name: "31 days", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 31)}, expected: "1"},
		{name: "35 days", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 35)}, expected: "1.1"},
		{name: "45 days", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 45)}, expected: "1.5"},
		{name: "60 days", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 60)}, expected: "2"},
		{name: "91 days", rng: &valueobject.DateRange{Min: start, Max: start.AddDate(0, 0, 91)}, expected: "3"},
		{name: "half day counts", rng: &valueobject.DateRange{Min: start, Max: start.Add(46*24*time.Hour + 12*time.Hour)}, expected: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months := EstimateMonthCount(tt.rng)
			assert.True(t, months.Equal(mustDecimal(tt.expected)), "expected %s, got %s", tt.expected, months)
			assert.True(t, months.GreaterThanOrEqual(oneMonth))
		})
	}
}

func TestObservedRange(t *testing.T) {
	t.Run("spans every parsed date", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-1", Date: "2024-02-05"},
			{Amount: "2000", Date: "2024-01-01"},
			{Amount: "junk", Date: "2024-03-01"},
			{Amount: "-1", Date: "not a date"},
		}

		rng := aggregate(batch).observed.dateRange()

		require.NotNil(t, rng)
		assert.True(t, day(2024, time.January, 1).Equal(rng.Min))
		assert.True(t, day(2024, time.March, 1).Equal(rng.Max))
		assert.Equal(t, "Jan 2024 - Mar 2024", rng.Label())
	})

	t.Run("no parsable date", func(t *testing.T) {
		p := aggregate([]entity.RawTransaction{{Amount: "-1", Date: "?"}})
		assert.Nil(t, p.observed.dateRange())
	})
}

func TestDaySpan(t *testing.T) {
	rng := valueobject.DateRange{Min: day(2024, time.January, 1), Max: day(2024, time.January, 1).Add(36 * time.Hour)}
	assert.Equal(t, "1.5", DaySpan(rng).String())
}

func TestParseSpanBasis(t *testing.T) {
	basis, err := ParseSpanBasis("")
	require.NoError(t, err)
	assert.Equal(t, SpanAllTransactions, basis)

	basis, err = ParseSpanBasis(" Expenses ")
	require.NoError(t, err)
	assert.Equal(t, SpanExpensesOnly, basis)
	assert.Equal(t, "expenses", basis.String())
	assert.Equal(t, "all", ResolveOptions().SpanBasis.String())

	_, err = ParseSpanBasis("weekly")
	assert.Error(t, err)
}
