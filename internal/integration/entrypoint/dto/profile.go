package dto

import (
	"github.com/finflow/backend/internal/domain/entity"
)

// ProfileResponse represents the latest profile and prediction of a user.
type ProfileResponse struct {
	ID                        string `json:"id"`
	MonthlyIncome             string `json:"monthly_income"`
	JobTitle                  string `json:"job_title"`
	EducationLevel            string `json:"education_level"`
	EmploymentStatus          string `json:"employment_status"`
	CreditScore               int    `json:"credit_score"`
	LoanType                  string `json:"loan_type"`
	LoanTermMonths            int    `json:"loan_term_months"`
	MonthlyEMI                string `json:"monthly_emi"`
	LoanInterestRatePct       string `json:"loan_interest_rate_pct"`
	ActualMonthlyExpense      string `json:"actual_monthly_expense"`
	PredictedNextMonthExpense string `json:"predicted_next_month_expense"`
	Suggestion                string `json:"suggestion"`
	CalculationDate           string `json:"calculation_date"`
}

// ToProfileResponse converts a Profile entity to its response DTO.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                        p.ID.String(),
		MonthlyIncome:             p.MonthlyIncome,
		JobTitle:                  p.JobTitle,
		EducationLevel:            p.EducationLevel,
		EmploymentStatus:          p.EmploymentStatus,
		CreditScore:               p.CreditScore,
		LoanType:                  p.LoanType,
		LoanTermMonths:            p.LoanTermMonths,
		MonthlyEMI:                p.MonthlyEMI.StringFixed(2),
		LoanInterestRatePct:       p.LoanInterestRatePct.String(),
		ActualMonthlyExpense:      p.ActualMonthlyExpense.StringFixed(2),
		PredictedNextMonthExpense: p.PredictedNextMonthExpense.StringFixed(2),
		Suggestion:                p.Suggestion,
		CalculationDate:           formatTimestamp(p.CalculationDate),
	}
}
