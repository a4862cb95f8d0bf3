package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/entity"
)

// categoryAccumulator sums expense magnitudes per label and remembers the
// order in which labels were first seen.
type categoryAccumulator struct {
	index  map[string]int
	totals []entity.CategoryTotal
}

func newCategoryAccumulator() *categoryAccumulator {
	return &categoryAccumulator{index: make(map[string]int)}
}

func (a *categoryAccumulator) add(category string, amount decimal.Decimal) {
	if i, ok := a.index[category]; ok {
		a.totals[i].Total = a.totals[i].Total.Add(amount)
		return
	}
	a.index[category] = len(a.totals)
	a.totals = append(a.totals, entity.CategoryTotal{Category: category, Total: amount})
}

// merge folds other into a. Merging partials in batch order keeps the
// first-seen order identical to a single sequential pass.
func (a *categoryAccumulator) merge(other *categoryAccumulator) {
	for _, ct := range other.totals {
		a.add(ct.Category, ct.Total)
	}
}

// ranked returns the totals sorted by descending amount. Ties keep the
// first-seen order.
func (a *categoryAccumulator) ranked() []entity.CategoryTotal {
	out := make([]entity.CategoryTotal, len(a.totals))
	copy(out, a.totals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}
