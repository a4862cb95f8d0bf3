package dto

import (
	"time"

	"github.com/finflow/backend/internal/application/usecase/transaction"
)

// TransactionResponse represents a single stored transaction in API responses.
// Amount and date are returned as stored.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionListResponse converts a ListTransactionsOutput to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for _, t := range output.Transactions {
		if t == nil {
			continue
		}
		transactions = append(transactions, TransactionResponse{
			ID:          t.ID.String(),
			Date:        t.Date,
			Description: t.Description,
			Amount:      t.Amount,
			Category:    t.Category,
			CreatedAt:   t.CreatedAt,
		})
	}

	return TransactionListResponse{
		Transactions: transactions,
		Total:        output.Total,
	}
}
