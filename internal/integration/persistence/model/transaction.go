// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Amount and Date are stored as text exactly as the ingestion service wrote them.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        string    `gorm:"type:varchar(64);index"`
	Description string    `gorm:"type:text"`
	Amount      string    `gorm:"type:varchar(64)"`
	Category    string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:     m.ID,
		UserID: m.UserID,
		RawTransaction: entity.RawTransaction{
			Amount:      m.Amount,
			Date:        m.Date,
			Category:    m.Category,
			Description: m.Description,
		},
		CreatedAt: m.CreatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
}
