// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is the most recent profile/prediction record of a user as written
// by the ingestion service after a forecast request.
type Profile struct {
	ID                        uuid.UUID
	UserID                    uuid.UUID
	MonthlyIncome             string // Declared income, kept as entered
	JobTitle                  string
	EducationLevel            string
	EmploymentStatus          string
	CreditScore               int
	LoanType                  string
	LoanTermMonths            int
	MonthlyEMI                decimal.Decimal
	LoanInterestRatePct       decimal.Decimal
	ActualMonthlyExpense      decimal.Decimal
	PredictedNextMonthExpense decimal.Decimal
	Suggestion                string
	CalculationDate           time.Time
}

// Loan is a single liability entered on the dashboard before a forecast sync.
type Loan struct {
	Type            string
	MonthlyEMI      decimal.Decimal
	InterestRatePct decimal.Decimal
	DurationMonths  int
}
