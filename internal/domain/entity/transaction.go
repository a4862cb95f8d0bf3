// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedLabel is the category bucket for transactions without a label.
const UncategorizedLabel = "Uncategorized"

// RawTransaction is a transaction exactly as the ingestion service wrote it.
// Amount and Date are kept as text: they may carry grouping separators or be
// malformed, and the aggregation engine decides what to do with them.
type RawTransaction struct {
	Amount      string // Negative for expenses
	Date        string
	Category    string
	Description string
}

// Transaction represents a stored transaction row owned by a user.
type Transaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	RawTransaction
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, raw RawTransaction) *Transaction {
	return &Transaction{
		ID:             uuid.New(),
		UserID:         userID,
		RawTransaction: raw,
		CreatedAt:      time.Now().UTC(),
	}
}

// RawBatch extracts the raw records of a list of stored transactions.
func RawBatch(transactions []*Transaction) []RawTransaction {
	batch := make([]RawTransaction, 0, len(transactions))
	for _, t := range transactions {
		if t == nil {
			continue
		}
		batch = append(batch, t.RawTransaction)
	}
	return batch
}
