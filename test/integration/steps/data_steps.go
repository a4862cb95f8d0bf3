package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/integration/persistence/model"
)

// registerDataSteps registers steps that seed or inspect stored data.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have the following transactions:$`, iHaveTheFollowingTransactions)
	ctx.Step(`^my latest profile declares a monthly income of "([^"]*)"$`, myLatestProfileDeclaresAMonthlyIncomeOf)
	ctx.Step(`^another user has a transaction of "([^"]*)" in "([^"]*)"$`, anotherUserHasATransactionOfIn)
	ctx.Step(`^the summary cache should hold (\d+) entr(?:y|ies) for me$`, theSummaryCacheShouldHoldEntriesForMe)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

// iHaveTheFollowingTransactions stores rows from a table with the columns
// amount, date, category and description.
func iHaveTheFollowingTransactions(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 1 {
		return fmt.Errorf("transactions table needs a header row")
	}

	header := table.Rows[0].Cells
	for i, row := range table.Rows[1:] {
		raw := entity.RawTransaction{}
		for j, cell := range row.Cells {
			switch header[j].Value {
			case "amount":
				raw.Amount = cell.Value
			case "date":
				raw.Date = cell.Value
			case "category":
				raw.Category = cell.Value
			case "description":
				raw.Description = cell.Value
			default:
				return fmt.Errorf("unknown column %q", header[j].Value)
			}
		}

		tx := entity.NewTransaction(tc.userID, raw)
		// Stable insertion order for rows sharing a date.
		tx.CreatedAt = tx.CreatedAt.Add(time.Duration(i) * time.Millisecond)
		if err := testDB.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
			return err
		}
	}
	return nil
}

func myLatestProfileDeclaresAMonthlyIncomeOf(ctx context.Context, income string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	profile := &entity.Profile{
		ID:                        uuid.New(),
		UserID:                    tc.userID,
		MonthlyIncome:             income,
		JobTitle:                  "Engineer",
		LoanType:                  "None",
		ActualMonthlyExpense:      decimal.Zero,
		PredictedNextMonthExpense: decimal.Zero,
		CalculationDate:           time.Now().UTC(),
	}
	return testDB.DbConn.Create(model.ProfileFromEntity(profile)).Error
}

func anotherUserHasATransactionOfIn(ctx context.Context, amount, category string) error {
	tx := entity.NewTransaction(uuid.New(), entity.RawTransaction{
		Amount:   amount,
		Date:     "2024-01-15",
		Category: category,
	})
	return testDB.DbConn.Create(model.TransactionFromEntity(tx)).Error
}

// theSummaryCacheShouldHoldEntriesForMe counts entries under the user's
// current cache version; invalidated entries live on until their TTL.
func theSummaryCacheShouldHoldEntriesForMe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	version, err := testRedis.Client.Get(ctx, fmt.Sprintf("finflow:summary:%s:version", tc.userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	keys, err := testRedis.Keys(fmt.Sprintf("finflow:summary:%s:v%d:*", tc.userID, version))
	if err != nil {
		return err
	}
	if len(keys) != expected {
		return fmt.Errorf("expected %d cached summaries, got %d: %v", expected, len(keys), keys)
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, expected int, table string) error {
	count, err := testDB.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}
