package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/adapter"
)

var (
	highSavingsThreshold = decimal.NewFromInt(20)
	cutShare             = decimal.RequireFromString("0.2")
	hundred              = decimal.NewFromInt(100)
)

const fallbackMerchant = "Retail"

// templateSuggestions writes deterministic suggestions when no generator is usable.
func templateSuggestions(req *adapter.InsightRequest) []string {
	suggestions := make([]string, 0, 3)

	if req.SavingsRatePct.GreaterThanOrEqual(highSavingsThreshold) {
		suggestions = append(suggestions, fmt.Sprintf(
			"Your %s%% savings rate is strong. Put the %s monthly surplus to work in a long-term index fund.",
			req.SavingsRatePct.StringFixed(1), req.MonthlySurplus.StringFixed(0),
		))
	} else {
		merchant, amount := fallbackMerchant, decimal.Zero
		if len(req.TopExpenses) > 0 {
			top := req.TopExpenses[0]
			merchant, amount = top.Description, top.MonthlyAmount
			if merchant == "" {
				merchant = top.Category
			}
		}
		suggestions = append(suggestions,
			fmt.Sprintf(
				"Your savings rate is %s%%. %s took %s a month; decide whether it is a need or a want.",
				req.SavingsRatePct.StringFixed(1), merchant, amount.StringFixed(0),
			),
			fmt.Sprintf(
				"Cutting %s by 20%% would free about %s every month.",
				merchant, amount.Mul(cutShare).StringFixed(0),
			),
		)
	}

	if req.MonthlyEMI.IsPositive() {
		ratio := decimal.Zero
		if req.MonthlyIncome.IsPositive() {
			ratio = req.MonthlyEMI.Div(req.MonthlyIncome).Mul(hundred).Round(1)
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Loan payments take %s%% of your income at %s%% interest. Refinancing or prepaying could lower the burden.",
			ratio.StringFixed(1), req.LoanInterestRatePct.StringFixed(1),
		))
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
