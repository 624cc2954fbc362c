package person

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
)

// Spending models a person's discretionary spending: a base amount with
// a yearly percentage increase, plus one-time expenses that apply to the
// current year only.
type Spending struct {
	model.Lifecycle

	Base            decimal.Decimal
	YearlyIncrease  decimal.Decimal // percent, 10 = 10%
	OneTimeExpenses decimal.Decimal
}

// NewSpending creates a Spending agent and registers it with the model.
func NewSpending(m *model.Model, base, yearlyIncreasePct decimal.Decimal) *Spending {
	s := &Spending{Base: base, YearlyIncrease: yearlyIncreasePct}
	m.AddAgent(s)
	return s
}

// AddExpense adds a one-time expense for the current year.
func (s *Spending) AddExpense(amount decimal.Decimal) {
	s.OneTimeExpenses = s.OneTimeExpenses.Add(amount)
}

// YearlySpending returns this year's total spending.
func (s *Spending) YearlySpending() decimal.Decimal {
	return s.Base.Add(s.OneTimeExpenses)
}

// PostStep applies the yearly increase and clears one-time expenses.
// Both run after settlement so the year's spending is stable while
// bills are paid.
func (s *Spending) PostStep() error {
	s.Base = s.Base.Add(s.Base.Mul(s.YearlyIncrease).Div(decimal.NewFromInt(100)))
	s.OneTimeExpenses = decimal.Zero
	return nil
}
