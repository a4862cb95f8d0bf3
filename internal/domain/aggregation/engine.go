package aggregation

import (
	"runtime"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/domain/valueobject"
)

// DefaultShardSize is the batch length above which records are aggregated
// on several goroutines.
const DefaultShardSize = 4096

// Options tunes a summary computation. The result never depends on
// ShardSize or MaxWorkers.
type Options struct {
	SpanBasis  SpanBasis
	ShardSize  int
	MaxWorkers int
}

// Option mutates Options.
type Option func(*Options)

// WithSpanBasis selects the records used for the month-count estimate.
func WithSpanBasis(basis SpanBasis) Option {
	return func(o *Options) {
		o.SpanBasis = basis
	}
}

// WithShardSize sets the per-goroutine shard length. Values below one
// disable sharding.
func WithShardSize(size int) Option {
	return func(o *Options) {
		o.ShardSize = size
	}
}

// WithMaxWorkers bounds the number of goroutines used for sharded batches.
func WithMaxWorkers(n int) Option {
	return func(o *Options) {
		o.MaxWorkers = n
	}
}

func defaultOptions() Options {
	return Options{
		SpanBasis:  SpanAllTransactions,
		ShardSize:  DefaultShardSize,
		MaxWorkers: runtime.GOMAXPROCS(0),
	}
}

// ResolveOptions applies opts over the defaults.
func ResolveOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// partial is the aggregate of one contiguous slice of the batch.
type partial struct {
	total         decimal.Decimal
	categories    *categoryAccumulator
	observed      spanAccumulator
	expenseSpan   spanAccumulator
	expenses      int
	incomes       int
	invalidAmount int
	invalidDate   int
}

func newPartial() *partial {
	return &partial{
		total:      decimal.Zero,
		categories: newCategoryAccumulator(),
	}
}

func (p *partial) add(r NormalizedTransaction) {
	if r.DateValid {
		p.observed.observe(r.Date)
	} else {
		p.invalidDate++
	}

	switch {
	case r.Flow.IsExpense():
		p.expenses++
		p.total = p.total.Add(r.Flow.Amount)
		p.categories.add(r.Category, r.Flow.Amount)
		if r.DateValid {
			p.expenseSpan.observe(r.Date)
		}
	case r.Flow.Kind == valueobject.FlowInvalid:
		p.invalidAmount++
	default:
		p.incomes++
	}
}

func (p *partial) merge(other *partial) {
	p.total = p.total.Add(other.total)
	p.categories.merge(other.categories)
	p.observed.merge(other.observed)
	p.expenseSpan.merge(other.expenseSpan)
	p.expenses += other.expenses
	p.incomes += other.incomes
	p.invalidAmount += other.invalidAmount
	p.invalidDate += other.invalidDate
}

func aggregate(batch []entity.RawTransaction) *partial {
	p := newPartial()
	for _, tx := range batch {
		p.add(Normalize(tx))
	}
	return p
}

// aggregateSharded splits the batch into contiguous shards, aggregates them
// concurrently and merges the partials in shard order.
func aggregateSharded(batch []entity.RawTransaction, opts Options) *partial {
	if opts.ShardSize < 1 || len(batch) <= opts.ShardSize {
		return aggregate(batch)
	}

	shards := (len(batch) + opts.ShardSize - 1) / opts.ShardSize
	partials := make([]*partial, shards)

	var g errgroup.Group
	if opts.MaxWorkers > 0 {
		g.SetLimit(opts.MaxWorkers)
	}
	for i := 0; i < shards; i++ {
		start := i * opts.ShardSize
		end := min(start+opts.ShardSize, len(batch))
		g.Go(func() error {
			partials[i] = aggregate(batch[start:end])
			return nil
		})
	}
	// Shard workers never fail.
	_ = g.Wait()

	merged := newPartial()
	for _, p := range partials {
		merged.merge(p)
	}
	return merged
}

// ComputeSummary derives the dashboard summary of a batch for a declared
// monthly income.
//
// It is total: malformed amounts, dates or income never fail the call. Two
// calls with equal inputs return equal summaries.
func ComputeSummary(transactions []entity.RawTransaction, monthlyIncome string, opts ...Option) *entity.DerivedSummary {
	o := ResolveOptions(opts...)

	p := aggregateSharded(transactions, o)

	observed := p.observed.dateRange()
	basis := observed
	if o.SpanBasis == SpanExpensesOnly {
		basis = p.expenseSpan.dateRange()
	}
	months := EstimateMonthCount(basis)

	income, incomeValid := ParseIncome(monthlyIncome)
	cashFlow := NormalizeCashFlow(p.total, months, income)

	return &entity.DerivedSummary{
		TotalExpense:             p.total,
		CategoryTotals:           p.categories.ranked(),
		ObservedDateRange:        observed,
		EstimatedMonthCount:      months,
		NormalizedMonthlyExpense: cashFlow.Expense,
		CashFlow:                 cashFlow,
		Diagnostics: entity.SummaryDiagnostics{
			IncomeValid:          incomeValid,
			ExpenseRecords:       p.expenses,
			IncomeRecords:        p.incomes,
			InvalidAmountRecords: p.invalidAmount,
			InvalidDateRecords:   p.invalidDate,
		},
	}
}
