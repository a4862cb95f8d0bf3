package summary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// IncomeSource tells where the income used for a summary came from.
type IncomeSource string

const (
	IncomeFromRequest IncomeSource = "request"
	IncomeFromProfile IncomeSource = "profile"
	IncomeMissing     IncomeSource = "none"
)

// GetSummaryInput represents the input for summarizing a user's stored transactions.
// MonthlyIncome overrides the profile income when set.
type GetSummaryInput struct {
	UserID        uuid.UUID
	MonthlyIncome *string
}

// GetSummaryOutput represents the derived summary of a user.
type GetSummaryOutput struct {
	Summary      *entity.DerivedSummary
	IncomeSource IncomeSource
	Cached       bool
}

// GetSummaryUseCase summarizes the stored batch of a user.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
	summaryCache    adapter.SummaryCache
	options         []aggregation.Option
	basis           string
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
// summaryCache may be nil when caching is disabled.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
	summaryCache adapter.SummaryCache,
	options ...aggregation.Option,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		summaryCache:    summaryCache,
		options:         options,
		basis:           aggregation.ResolveOptions(options...).SpanBasis.String(),
	}
}

// Execute loads the batch and income, then returns a cached or fresh summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeTransactionStore,
			"failed to load transactions",
			err,
		)
	}

	income, source, err := uc.resolveIncome(ctx, input)
	if err != nil {
		return nil, err
	}

	batch := entity.RawBatch(transactions)
	key := adapter.SummaryCacheKey{
		UserID:      input.UserID,
		Basis:       uc.basis,
		Fingerprint: Fingerprint(batch),
		Income:      strings.TrimSpace(income),
	}

	if cached := uc.lookup(ctx, key); cached != nil {
		return &GetSummaryOutput{Summary: cached, IncomeSource: source, Cached: true}, nil
	}

	summary := aggregation.ComputeSummary(batch, income, uc.options...)
	uc.store(ctx, key, summary)

	return &GetSummaryOutput{
		Summary:      summary,
		IncomeSource: source,
	}, nil
}

func (uc *GetSummaryUseCase) resolveIncome(ctx context.Context, input GetSummaryInput) (string, IncomeSource, error) {
	if input.MonthlyIncome != nil {
		return *input.MonthlyIncome, IncomeFromRequest, nil
	}

	profile, err := uc.profileRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		return "", "", domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to load profile",
			err,
		)
	}
	if profile == nil {
		return "", IncomeMissing, nil
	}
	return profile.MonthlyIncome, IncomeFromProfile, nil
}

func (uc *GetSummaryUseCase) lookup(ctx context.Context, key adapter.SummaryCacheKey) *entity.DerivedSummary {
	if uc.summaryCache == nil {
		return nil
	}
	cached, err := uc.summaryCache.Get(ctx, key)
	if err != nil {
		slog.Warn("Summary cache read failed", "user_id", key.UserID, "error", err)
		return nil
	}
	return cached
}

func (uc *GetSummaryUseCase) store(ctx context.Context, key adapter.SummaryCacheKey, summary *entity.DerivedSummary) {
	if uc.summaryCache == nil {
		return
	}
	if err := uc.summaryCache.Set(ctx, key, summary); err != nil {
		slog.Warn("Summary cache write failed", "user_id", key.UserID, "error", err)
	}
}
