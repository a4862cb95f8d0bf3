package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SpendItem is one large expense, normalized to a monthly amount.
type SpendItem struct {
	Description   string
	Category      string
	MonthlyAmount decimal.Decimal
}

// InsightRequest is the financial snapshot handed to the suggestion generator.
type InsightRequest struct {
	JobTitle                 string
	EducationLevel           string
	MonthCount               decimal.Decimal
	MonthlyIncome            decimal.Decimal
	NormalizedMonthlyExpense decimal.Decimal
	MonthlySurplus           decimal.Decimal // Negative on a deficit
	SavingsRatePct           decimal.Decimal
	MonthlyEMI               decimal.Decimal
	LoanInterestRatePct      decimal.Decimal
	TopExpenses              []SpendItem
}

// InsightGenerator defines the interface for AI-written saving suggestions.
type InsightGenerator interface {
	// Suggest returns short, actionable suggestions for the snapshot.
	Suggest(ctx context.Context, request *InsightRequest) ([]string, error)

	// IsAvailable checks if the generator is configured.
	IsAvailable() bool
}
