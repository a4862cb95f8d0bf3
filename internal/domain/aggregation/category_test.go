package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/domain/entity"
)

func rankCategories(batch []entity.RawTransaction) []entity.CategoryTotal {
	return aggregate(batch).categories.ranked()
}

func TestCategoryRanking(t *testing.T) {
	t.Run("ranks descending and ignores non-expenses", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-100", Category: "Food"},
			{Amount: "-300", Category: "Rent"},
			{Amount: "-50", Category: "Food"},
			{Amount: "5000", Category: "Salary"},
			{Amount: "oops", Category: "Rent"},
			{Amount: "-20"},
		}

		totals := rankCategories(batch)

		require.Len(t, totals, 3)
		assert.Equal(t, "Rent", totals[0].Category)
		assert.Equal(t, "300", totals[0].Total.String())
		assert.Equal(t, "Food", totals[1].Category)
		assert.Equal(t, "150", totals[1].Total.String())
		assert.Equal(t, entity.UncategorizedLabel, totals[2].Category)
		assert.Equal(t, "20", totals[2].Total.String())
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		batch := []entity.RawTransaction{
			{Amount: "-100", Category: "Travel"},
			{Amount: "-100", Category: "Books"},
			{Amount: "-200", Category: "Health"},
			{Amount: "-100", Category: "Games"},
		}

		totals := rankCategories(batch)

		got := make([]string, len(totals))
		for i, ct := range totals {
			got[i] = ct.Category
		}
		assert.Equal(t, []string{"Health", "Travel", "Books", "Games"}, got)
	})

	t.Run("no expenses yields an empty list", func(t *testing.T) {
		totals := rankCategories([]entity.RawTransaction{{Amount: "10"}})
		assert.NotNil(t, totals)
		assert.Empty(t, totals)
	})

	t.Run("merged shards keep first-seen order", func(t *testing.T) {
		first := aggregate([]entity.RawTransaction{
			{Amount: "-100", Category: "Travel"},
			{Amount: "-100", Category: "Books"},
		})
		second := aggregate([]entity.RawTransaction{
			{Amount: "-100", Category: "Games"},
			{Amount: "-50", Category: "Travel"},
		})
		first.merge(second)

		totals := first.categories.ranked()

		require.Len(t, totals, 3)
		assert.Equal(t, "Travel", totals[0].Category)
		assert.Equal(t, "150", totals[0].Total.String())
		assert.Equal(t, "Books", totals[1].Category)
		assert.Equal(t, "Games", totals[2].Category)
	})
}
