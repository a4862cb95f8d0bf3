// Package insight contains the savings insight use case.
package insight

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// topExpenseCount is how many of the largest expenses are reported.
const topExpenseCount = 5

// SuggestionSource tells who wrote the suggestions.
type SuggestionSource string

const (
	SourceAI       SuggestionSource = "ai"
	SourceTemplate SuggestionSource = "template"
)

// GenerateInsightsInput represents the input for generating insights.
type GenerateInsightsInput struct {
	UserID        uuid.UUID
	MonthlyIncome *string
}

// GenerateInsightsOutput carries the savings insights of a user.
type GenerateInsightsOutput struct {
	SavingsRatePct           decimal.Decimal
	MonthlySurplus           decimal.Decimal
	NormalizedMonthlyExpense decimal.Decimal
	EstimatedMonthCount      decimal.Decimal
	TopExpenses              []adapter.SpendItem
	Suggestions              []string
	Source                   SuggestionSource
	Alerts                   []Alert
}

// GenerateInsightsUseCase derives suggestions and spending alerts.
type GenerateInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
	generator       adapter.InsightGenerator
	options         []aggregation.Option
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
// generator may be nil; templates are used then.
func NewGenerateInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
	generator adapter.InsightGenerator,
	options ...aggregation.Option,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		generator:       generator,
		options:         options,
	}
}

// SavingsRate returns round((income - expense) / income * 100, 1), or 0 when income is not positive.
func SavingsRate(income, monthlyExpense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(monthlyExpense).Div(income).Mul(hundred).Round(1)
}

// Execute computes the insights.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeTransactionStore,
			"failed to load transactions",
			err,
		)
	}

	profile, err := uc.profileRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to load profile",
			err,
		)
	}
	if profile == nil {
		profile = &entity.Profile{}
	}

	incomeText := profile.MonthlyIncome
	if input.MonthlyIncome != nil {
		incomeText = *input.MonthlyIncome
	}

	batch := entity.RawBatch(transactions)
	summary := aggregation.ComputeSummary(batch, incomeText, uc.options...)
	income := summary.CashFlow.Income
	expenses := collectExpenses(batch)

	req := &adapter.InsightRequest{
		JobTitle:                 profile.JobTitle,
		EducationLevel:           profile.EducationLevel,
		MonthCount:               summary.EstimatedMonthCount,
		MonthlyIncome:            income,
		NormalizedMonthlyExpense: summary.NormalizedMonthlyExpense,
		MonthlySurplus:           income.Sub(summary.NormalizedMonthlyExpense),
		SavingsRatePct:           SavingsRate(income, summary.NormalizedMonthlyExpense),
		MonthlyEMI:               profile.MonthlyEMI,
		LoanInterestRatePct:      profile.LoanInterestRatePct,
		TopExpenses:              topExpenses(expenses, summary.EstimatedMonthCount),
	}

	suggestions, source := uc.suggest(ctx, input.UserID, req)

	return &GenerateInsightsOutput{
		SavingsRatePct:           req.SavingsRatePct,
		MonthlySurplus:           req.MonthlySurplus,
		NormalizedMonthlyExpense: req.NormalizedMonthlyExpense,
		EstimatedMonthCount:      req.MonthCount,
		TopExpenses:              req.TopExpenses,
		Suggestions:              suggestions,
		Source:                   source,
		Alerts:                   detectAnomalies(expenses),
	}, nil
}

func (uc *GenerateInsightsUseCase) suggest(ctx context.Context, userID uuid.UUID, req *adapter.InsightRequest) ([]string, SuggestionSource) {
	if uc.generator != nil && uc.generator.IsAvailable() {
		suggestions, err := uc.generator.Suggest(ctx, req)
		if err == nil && len(suggestions) > 0 {
			return suggestions, SourceAI
		}
		slog.Warn("Falling back to template insights",
			"user_id", userID,
			"error", err,
		)
	}
	return templateSuggestions(req), SourceTemplate
}

// topExpenses returns the largest expenses, each divided by the month count.
func topExpenses(expenses []expenseRecord, months decimal.Decimal) []adapter.SpendItem {
	sorted := make([]expenseRecord, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].amount.GreaterThan(sorted[j].amount)
	})
	if len(sorted) > topExpenseCount {
		sorted = sorted[:topExpenseCount]
	}

	items := make([]adapter.SpendItem, len(sorted))
	for i, e := range sorted {
		items[i] = adapter.SpendItem{
			Description:   e.description,
			Category:      e.category,
			MonthlyAmount: e.amount.Div(months),
		}
	}
	return items
}
