// Package valueobject contains domain value objects for the FinFlow system.
package valueobject

import "github.com/shopspring/decimal"

// FlowKind tags the direction of a normalized transaction amount.
type FlowKind int

const (
	// FlowInvalid marks an amount that could not be parsed.
	FlowInvalid FlowKind = iota
	// FlowIncome marks a non-negative amount. The burn view ignores it.
	FlowIncome
	// FlowExpense marks a negative amount; the flow holds its magnitude.
	FlowExpense
)

// String implements fmt.Stringer.
func (k FlowKind) String() string {
	switch k {
	case FlowIncome:
		return "income"
	case FlowExpense:
		return "expense"
	default:
		return "invalid"
	}
}

// Flow is a signed amount resolved into an explicit direction. Expense flows
// carry a positive magnitude, so callers never reason about signs again.
type Flow struct {
	Kind   FlowKind
	Amount decimal.Decimal
}

// Expense builds an expense flow from a magnitude.
func Expense(magnitude decimal.Decimal) Flow {
	return Flow{Kind: FlowExpense, Amount: magnitude.Abs()}
}

// Income builds an income flow.
func Income(amount decimal.Decimal) Flow {
	return Flow{Kind: FlowIncome, Amount: amount}
}

// InvalidFlow is the flow of an unparsable amount.
func InvalidFlow() Flow {
	return Flow{Kind: FlowInvalid, Amount: decimal.Zero}
}

// FlowFromSigned applies the negative-is-expense convention.
func FlowFromSigned(amount decimal.Decimal) Flow {
	if amount.IsNegative() {
		return Expense(amount)
	}
	return Income(amount)
}

// IsExpense reports whether the flow is a valid expense.
func (f Flow) IsExpense() bool {
	return f.Kind == FlowExpense
}
