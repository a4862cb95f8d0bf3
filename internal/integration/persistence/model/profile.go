package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/entity"
)

// ProfileModel represents the spending_results table in the database.
type ProfileModel struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthlyIncomeUSD          string          `gorm:"column:monthly_income_usd;type:varchar(64)"`
	JobTitle                  string          `gorm:"type:varchar(100)"`
	EducationLevel            string          `gorm:"type:varchar(100)"`
	EmploymentStatus          string          `gorm:"type:varchar(50)"`
	CreditScore               int             `gorm:"type:integer"`
	LoanType                  string          `gorm:"type:varchar(50)"`
	LoanTermMonths            int             `gorm:"type:integer"`
	MonthlyEMIUSD             decimal.Decimal `gorm:"column:monthly_emi_usd;type:decimal(15,2)"`
	LoanInterestRatePct       decimal.Decimal `gorm:"type:decimal(6,2)"`
	ActualMonthlyExpense      decimal.Decimal `gorm:"type:decimal(15,2)"`
	PredictedNextMonthExpense decimal.Decimal `gorm:"type:decimal(15,2)"`
	Suggestion                string          `gorm:"type:text"`
	CalculationDate           time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "spending_results"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:                        m.ID,
		UserID:                    m.UserID,
		MonthlyIncome:             m.MonthlyIncomeUSD,
		JobTitle:                  m.JobTitle,
		EducationLevel:            m.EducationLevel,
		EmploymentStatus:          m.EmploymentStatus,
		CreditScore:               m.CreditScore,
		LoanType:                  m.LoanType,
		LoanTermMonths:            m.LoanTermMonths,
		MonthlyEMI:                m.MonthlyEMIUSD,
		LoanInterestRatePct:       m.LoanInterestRatePct,
		ActualMonthlyExpense:      m.ActualMonthlyExpense,
		PredictedNextMonthExpense: m.PredictedNextMonthExpense,
		Suggestion:                m.Suggestion,
		CalculationDate:           m.CalculationDate,
	}
}

// ProfileFromEntity converts a domain Profile entity to a ProfileModel.
func ProfileFromEntity(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:                        p.ID,
		UserID:                    p.UserID,
		MonthlyIncomeUSD:          p.MonthlyIncome,
		JobTitle:                  p.JobTitle,
		EducationLevel:            p.EducationLevel,
		EmploymentStatus:          p.EmploymentStatus,
		CreditScore:               p.CreditScore,
		LoanType:                  p.LoanType,
		LoanTermMonths:            p.LoanTermMonths,
		MonthlyEMIUSD:             p.MonthlyEMI,
		LoanInterestRatePct:       p.LoanInterestRatePct,
		ActualMonthlyExpense:      p.ActualMonthlyExpense,
		PredictedNextMonthExpense: p.PredictedNextMonthExpense,
		Suggestion:                p.Suggestion,
		CalculationDate:           p.CalculationDate,
	}
}

// AllModels returns every model managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&TransactionModel{},
		&ProfileModel{},
	}
}
