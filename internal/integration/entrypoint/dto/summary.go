package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/usecase/summary"
	"github.com/finflow/backend/internal/domain/entity"
)

// Cash-flow chart buckets and their colors.
const (
	CashFlowIncome        = "Income"
	CashFlowExpenses      = "Expenses"
	CashFlowSavings       = "Savings"
	CashFlowMoneyTransfer = "Money Transfer"

	colorIncome        = "#34D399"
	colorExpenses      = "#F87171"
	colorSavings       = "#38BDF8"
	colorMoneyTransfer = "#A78BFA"
)

// TransactionPayload is a raw transaction as sent by a client.
type TransactionPayload struct {
	Amount      FlexibleString `json:"amount"`
	Date        string         `json:"date"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
}

// ComputeSummaryRequest represents the request body for an ad hoc summary.
type ComputeSummaryRequest struct {
	Transactions  []TransactionPayload `json:"transactions"`
	MonthlyIncome FlexibleString       `json:"monthly_income"`
}

// ToRawTransactions converts the payload to engine input.
func (r *ComputeSummaryRequest) ToRawTransactions() []entity.RawTransaction {
	batch := make([]entity.RawTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		batch[i] = entity.RawTransaction{
			Amount:      string(t.Amount),
			Date:        t.Date,
			Category:    t.Category,
			Description: t.Description,
		}
	}
	return batch
}

// CategoryTotalResponse represents one category in the breakdown.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    string  `json:"total"`
	Value    float64 `json:"value"`
}

// DateRangeResponse represents the observed date range.
type DateRangeResponse struct {
	Min   string `json:"min"`
	Max   string `json:"max"`
	Label string `json:"label"`
}

// CashFlowBucketResponse is one slice of the cash-flow chart.
type CashFlowBucketResponse struct {
	Name   string  `json:"name"`
	Amount string  `json:"amount"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// DiagnosticsResponse reports skipped or degraded input.
type DiagnosticsResponse struct {
	IncomeValid          bool `json:"income_valid"`
	ExpenseRecords       int  `json:"expense_records"`
	IncomeRecords        int  `json:"income_records"`
	InvalidAmountRecords int  `json:"invalid_amount_records"`
	InvalidDateRecords   int  `json:"invalid_date_records"`
}

// SummaryResponse represents a derived summary.
type SummaryResponse struct {
	TotalExpense             string                   `json:"total_expense"`
	CategoryTotals           []CategoryTotalResponse  `json:"category_totals"`
	DateRange                *DateRangeResponse       `json:"date_range"`
	EstimatedMonthCount      string                   `json:"estimated_month_count"`
	NormalizedMonthlyExpense string                   `json:"normalized_monthly_expense"`
	MonthlyIncome            string                   `json:"monthly_income"`
	MonthlySavings           string                   `json:"monthly_savings"`
	CashFlow                 []CashFlowBucketResponse `json:"cash_flow"`
	Diagnostics              DiagnosticsResponse      `json:"diagnostics"`
	IncomeSource             string                   `json:"income_source,omitempty"`
	Cached                   bool                     `json:"cached"`
}

// ToSummaryResponse converts a DerivedSummary to its response DTO.
func ToSummaryResponse(s *entity.DerivedSummary) SummaryResponse {
	categories := make([]CategoryTotalResponse, len(s.CategoryTotals))
	for i, ct := range s.CategoryTotals {
		value, _ := ct.Total.Float64()
		categories[i] = CategoryTotalResponse{
			Category: ct.Category,
			Total:    ct.Total.StringFixed(2),
			Value:    value,
		}
	}

	var dateRange *DateRangeResponse
	if s.ObservedDateRange != nil {
		dateRange = &DateRangeResponse{
			Min:   s.ObservedDateRange.Min.Format("2006-01-02"),
			Max:   s.ObservedDateRange.Max.Format("2006-01-02"),
			Label: s.ObservedDateRange.Label(),
		}
	}

	cf := s.CashFlow

	return SummaryResponse{
		TotalExpense:             s.TotalExpense.StringFixed(2),
		CategoryTotals:           categories,
		DateRange:                dateRange,
		EstimatedMonthCount:      s.EstimatedMonthCount.StringFixed(1),
		NormalizedMonthlyExpense: s.NormalizedMonthlyExpense.StringFixed(2),
		MonthlyIncome:            cf.Income.StringFixed(2),
		MonthlySavings:           cf.Savings.StringFixed(2),
		CashFlow: []CashFlowBucketResponse{
			newBucket(CashFlowIncome, colorIncome, cf.Income),
			newBucket(CashFlowExpenses, colorExpenses, cf.Expense),
			newBucket(CashFlowSavings, colorSavings, cf.Savings),
			newBucket(CashFlowMoneyTransfer, colorMoneyTransfer, cf.TransferResidual),
		},
		Diagnostics: DiagnosticsResponse{
			IncomeValid:          s.Diagnostics.IncomeValid,
			ExpenseRecords:       s.Diagnostics.ExpenseRecords,
			IncomeRecords:        s.Diagnostics.IncomeRecords,
			InvalidAmountRecords: s.Diagnostics.InvalidAmountRecords,
			InvalidDateRecords:   s.Diagnostics.InvalidDateRecords,
		},
	}
}

// ToGetSummaryResponse converts a GetSummaryOutput to its response DTO.
func ToGetSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	response := ToSummaryResponse(output.Summary)
	response.IncomeSource = string(output.IncomeSource)
	response.Cached = output.Cached
	return response
}

func newBucket(name, color string, amount decimal.Decimal) CashFlowBucketResponse {
	value, _ := amount.Float64()
	return CashFlowBucketResponse{
		Name:   name,
		Amount: amount.StringFixed(2),
		Value:  value,
		Color:  color,
	}
}
