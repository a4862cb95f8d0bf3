package dto

import (
	"github.com/finflow/backend/internal/application/usecase/insight"
)

// SpendItemResponse represents one of the largest monthly expenses.
type SpendItemResponse struct {
	Description   string `json:"description"`
	Category      string `json:"category"`
	MonthlyAmount string `json:"monthly_amount"`
}

// AlertResponse represents an unusually large expense.
type AlertResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	ZScore      string `json:"z_score"`
}

// InsightsResponse represents the savings insights of a user.
type InsightsResponse struct {
	SavingsRatePct           string              `json:"savings_rate_pct"`
	MonthlySurplus           string              `json:"monthly_surplus"`
	NormalizedMonthlyExpense string              `json:"normalized_monthly_expense"`
	EstimatedMonthCount      string              `json:"estimated_month_count"`
	TopExpenses              []SpendItemResponse `json:"top_expenses"`
	Suggestions              []string            `json:"suggestions"`
	Source                   string              `json:"source"`
	Alerts                   []AlertResponse     `json:"alerts"`
}

// ToInsightsResponse converts a GenerateInsightsOutput to its response DTO.
func ToInsightsResponse(output *insight.GenerateInsightsOutput) InsightsResponse {
	top := make([]SpendItemResponse, len(output.TopExpenses))
	for i, item := range output.TopExpenses {
		top[i] = SpendItemResponse{
			Description:   item.Description,
			Category:      item.Category,
			MonthlyAmount: item.MonthlyAmount.StringFixed(2),
		}
	}

	alerts := make([]AlertResponse, len(output.Alerts))
	for i, a := range output.Alerts {
		alerts[i] = AlertResponse{
			Date:        a.Date,
			Description: a.Description,
			Category:    a.Category,
			Amount:      a.Amount.StringFixed(2),
			ZScore:      a.ZScore.StringFixed(1),
		}
	}

	suggestions := output.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return InsightsResponse{
		SavingsRatePct:           output.SavingsRatePct.StringFixed(1),
		MonthlySurplus:           output.MonthlySurplus.StringFixed(2),
		NormalizedMonthlyExpense: output.NormalizedMonthlyExpense.StringFixed(2),
		EstimatedMonthCount:      output.EstimatedMonthCount.StringFixed(1),
		TopExpenses:              top,
		Suggestions:              suggestions,
		Source:                   string(output.Source),
		Alerts:                   alerts,
	}
}
