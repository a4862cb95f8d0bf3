// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/domain/entity"
)

// TransactionRepository defines the read side of the transaction store.
// Rows are written by the ingestion service, never by this backend.
type TransactionRepository interface {
	// FindByUser retrieves all transactions for a given user, most recent date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// CountByUser returns the number of stored transactions for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
