package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// Plan529 is an education savings account. Contributions are after-tax
// and come out of the bank; the balance grows and qualified education
// expenses draw from it tax-free.
type Plan529 struct {
	model.Lifecycle

	Beneficiary        string
	YearlyContribution decimal.Decimal
	AverageGrowth      decimal.Decimal // annual percent

	owner   *person.Person
	balance decimal.Decimal
}

// NewPlan529 creates the account as a model agent.
func NewPlan529(owner *person.Person, beneficiary string, balance, yearlyContribution, averageGrowthPct decimal.Decimal) *Plan529 {
	a := &Plan529{
		Beneficiary:        beneficiary,
		YearlyContribution: yearlyContribution,
		AverageGrowth:      averageGrowthPct,
		owner:              owner,
		balance:            balance,
	}
	owner.Model().AddAgent(a)
	return a
}

// Balance returns the current balance.
func (a *Plan529) Balance() decimal.Decimal { return a.balance }

// PayEducation covers a qualified education expense from the account.
// Returns the portion the balance could not cover.
func (a *Plan529) PayEducation(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(zero) {
		return zero
	}
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)
	return amount.Sub(taken)
}

// PreStep grows the balance and makes the year's contribution from the
// owner's bank accounts.
func (a *Plan529) PreStep() error {
	a.balance = a.balance.Add(interest.Continuous(a.balance, a.AverageGrowth, 1))

	if a.YearlyContribution.GreaterThan(zero) {
		unfunded := a.owner.DeductFromBankAccounts(a.YearlyContribution)
		a.balance = a.balance.Add(a.YearlyContribution.Sub(unfunded))
	}
	return nil
}
