package work

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
)

// Salary is a base pay amount with an annual raise and an optional
// yearly bonus. The raise applies in Step, after income for the year
// has already been posted in the job's PreStep.
type Salary struct {
	model.Lifecycle

	Base           decimal.Decimal
	YearlyIncrease decimal.Decimal // percent
	Bonus          decimal.Decimal
}

// NewSalary creates a Salary agent and registers it with the model.
func NewSalary(m *model.Model, base, yearlyIncreasePct, bonus decimal.Decimal) *Salary {
	s := &Salary{Base: base, YearlyIncrease: yearlyIncreasePct, Bonus: bonus}
	m.AddAgent(s)
	return s
}

// Gross returns this year's gross pay.
func (s *Salary) Gross() decimal.Decimal {
	return s.Base.Add(s.Bonus)
}

// Step applies the annual raise.
func (s *Salary) Step() error {
	s.Base = s.Base.Add(s.Base.Mul(s.YearlyIncrease).Div(decimal.NewFromInt(100)))
	return nil
}
