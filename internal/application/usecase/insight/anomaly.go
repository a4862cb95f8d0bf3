package insight

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
)

const (
	// minAnomalySample is the number of expenses above which outliers are looked for.
	minAnomalySample = 3
	anomalyZScore    = 2.0
	anomalyFloor     = 1000.0
)

// Alert flags an expense far above the user's typical spend.
type Alert struct {
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
	ZScore      decimal.Decimal
}

type expenseRecord struct {
	date        string
	description string
	category    string
	amount      decimal.Decimal
}

// detectAnomalies returns expenses above mean + 2σ (population σ) that also
// exceed 1000. Fewer than four expenses never alert.
func detectAnomalies(expenses []expenseRecord) []Alert {
	alerts := []Alert{}
	if len(expenses) <= minAnomalySample {
		return alerts
	}

	values := make([]float64, len(expenses))
	var sum float64
	for i, e := range expenses {
		values[i] = e.amount.InexactFloat64()
		sum += values[i]
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(len(values)))
	if std == 0 {
		return alerts
	}

	for i, e := range expenses {
		v := values[i]
		if v > mean+anomalyZScore*std && v > anomalyFloor {
			alerts = append(alerts, Alert{
				Date:        e.date,
				Description: e.description,
				Category:    e.category,
				Amount:      e.amount,
				ZScore:      decimal.NewFromFloat((v - mean) / std).Round(1),
			})
		}
	}
	return alerts
}

// collectExpenses keeps the valid expense records of a batch in input order.
func collectExpenses(batch []entity.RawTransaction) []expenseRecord {
	out := make([]expenseRecord, 0, len(batch))
	for _, tx := range batch {
		n := aggregation.Normalize(tx)
		if !n.Flow.IsExpense() {
			continue
		}
		out = append(out, expenseRecord{
			date:        tx.Date,
			description: tx.Description,
			category:    n.Category,
			amount:      n.Flow.Amount,
		})
	}
	return out
}
