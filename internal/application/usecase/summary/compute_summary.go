package summary

import (
	"context"

	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// DefaultMaxBatchSize bounds request-supplied batches when no limit is configured.
const DefaultMaxBatchSize = 100_000

// ComputeSummaryInput carries a caller-supplied batch and income.
type ComputeSummaryInput struct {
	Transactions  []entity.RawTransaction
	MonthlyIncome string
}

// ComputeSummaryUseCase runs the aggregation engine on a batch without touching storage.
type ComputeSummaryUseCase struct {
	maxBatchSize int
	options      []aggregation.Option
}

// NewComputeSummaryUseCase creates a new ComputeSummaryUseCase instance.
func NewComputeSummaryUseCase(maxBatchSize int, options ...aggregation.Option) *ComputeSummaryUseCase {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &ComputeSummaryUseCase{
		maxBatchSize: maxBatchSize,
		options:      options,
	}
}

// Execute computes the summary.
func (uc *ComputeSummaryUseCase) Execute(_ context.Context, input ComputeSummaryInput) (*entity.DerivedSummary, error) {
	if len(input.Transactions) > uc.maxBatchSize {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeBatchTooLarge,
			"transaction batch exceeds the request limit",
			domainerror.ErrBatchTooLarge,
		)
	}
	return aggregation.ComputeSummary(input.Transactions, input.MonthlyIncome, uc.options...), nil
}
