package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/domain/entity"
)

type stubTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (s *stubTransactionRepository) FindByUser(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return s.transactions, s.err
}

func (s *stubTransactionRepository) CountByUser(context.Context, uuid.UUID) (int64, error) {
	return int64(len(s.transactions)), s.err
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("returns rows untouched", func(t *testing.T) {
		rows := []*entity.Transaction{
			entity.NewTransaction(userID, entity.RawTransaction{Amount: "-1,200.50", Date: "garbage"}),
			entity.NewTransaction(userID, entity.RawTransaction{Amount: "300", Date: "2024-01-01"}),
		}
		uc := NewListTransactionsUseCase(&stubTransactionRepository{transactions: rows})

		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})

		require.NoError(t, err)
		assert.Equal(t, 2, out.Total)
		assert.Equal(t, "-1,200.50", out.Transactions[0].Amount)
		assert.Equal(t, "garbage", out.Transactions[0].Date)
	})

	t.Run("nil result becomes an empty list", func(t *testing.T) {
		uc := NewListTransactionsUseCase(&stubTransactionRepository{})

		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})

		require.NoError(t, err)
		assert.NotNil(t, out.Transactions)
		assert.Zero(t, out.Total)
	})

	t.Run("repository error", func(t *testing.T) {
		uc := NewListTransactionsUseCase(&stubTransactionRepository{err: errors.New("db down")})

		_, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})

		assert.Error(t, err)
	})
}
