package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func seedTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, raw entity.RawTransaction) {
	t.Helper()
	tx := entity.NewTransaction(userID, raw)
	require.NoError(t, db.Create(model.TransactionFromEntity(tx)).Error)
}

func TestTransactionRepository_FindByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	seedTransaction(t, db, alice, entity.RawTransaction{Amount: "-1,000", Date: "2024-01-05", Category: "Food"})
	seedTransaction(t, db, alice, entity.RawTransaction{Amount: "2000", Date: "2024-02-10", Category: "Salary"})
	seedTransaction(t, db, alice, entity.RawTransaction{Amount: "abc", Date: "not a date"})
	seedTransaction(t, db, bob, entity.RawTransaction{Amount: "-5", Date: "2024-03-01"})

	t.Run("returns only the user's rows, most recent first", func(t *testing.T) {
		got, err := repo.FindByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "not a date", got[0].Date)
		assert.Equal(t, "2024-02-10", got[1].Date)
		assert.Equal(t, "2024-01-05", got[2].Date)
		assert.Equal(t, "-1,000", got[2].Amount)
		for _, tx := range got {
			assert.Equal(t, alice, tx.UserID)
		}
	})

	t.Run("unknown user yields an empty batch", func(t *testing.T) {
		got, err := repo.FindByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("counts rows per user", func(t *testing.T) {
		count, err := repo.CountByUser(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestProfileRepository_FindLatestByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no profile yet", func(t *testing.T) {
		got, err := repo.FindLatestByUser(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	older := &entity.Profile{
		ID:              uuid.New(),
		UserID:          userID,
		MonthlyIncome:   "4000",
		JobTitle:        "Teacher",
		CalculationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &entity.Profile{
		ID:                        uuid.New(),
		UserID:                    userID,
		MonthlyIncome:             "5000",
		JobTitle:                  "AI/ML Engineer",
		MonthlyEMI:                decimal.NewFromInt(300),
		PredictedNextMonthExpense: decimal.RequireFromString("2750.5"),
		Suggestion:                "Cut dining | Automate savings",
		CalculationDate:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(model.ProfileFromEntity(older)).Error)
	require.NoError(t, db.Create(model.ProfileFromEntity(newer)).Error)

	t.Run("returns the most recent row", func(t *testing.T) {
		got, err := repo.FindLatestByUser(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, newer.ID, got.ID)
		assert.Equal(t, "5000", got.MonthlyIncome)
		assert.Equal(t, "AI/ML Engineer", got.JobTitle)
		assert.True(t, got.MonthlyEMI.Equal(decimal.NewFromInt(300)))
		assert.True(t, got.PredictedNextMonthExpense.Equal(decimal.RequireFromString("2750.5")))
	})
}
