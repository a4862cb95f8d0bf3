// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/valueobject"
)

// CategoryTotal is the accumulated burn of a single category label.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CashFlow is the monthly four-way breakdown shown on the dashboard.
type CashFlow struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal // Normalized monthly expense
	Savings          decimal.Decimal // Never negative
	TransferResidual decimal.Decimal // |total expense - normalized expense|
}

// SummaryDiagnostics reports what the engine had to skip or degrade.
type SummaryDiagnostics struct {
	IncomeValid          bool
	ExpenseRecords       int
	IncomeRecords        int
	InvalidAmountRecords int
	InvalidDateRecords   int
}

// DerivedSummary is the full set of figures derived from a transaction batch
// and a declared monthly income. A new value is built on every computation.
type DerivedSummary struct {
	TotalExpense             decimal.Decimal
	CategoryTotals           []CategoryTotal
	ObservedDateRange        *valueobject.DateRange // nil when no date parsed
	EstimatedMonthCount      decimal.Decimal
	NormalizedMonthlyExpense decimal.Decimal
	CashFlow                 CashFlow
	Diagnostics              SummaryDiagnostics
}
