package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// HSA is a health savings account. Contributions come out of the bank
// and reduce taxable income, the balance grows, and qualified medical
// withdrawals are tax-free. It does not participate in the general
// bill settlement; money leaves only through PayMedical.
type HSA struct {
	model.Lifecycle

	YearlyContribution decimal.Decimal
	AverageGrowth      decimal.Decimal // annual percent

	owner   *person.Person
	balance decimal.Decimal
}

// NewHSA creates the account as a model agent.
func NewHSA(owner *person.Person, balance, yearlyContribution, averageGrowthPct decimal.Decimal) *HSA {
	a := &HSA{
		YearlyContribution: yearlyContribution,
		AverageGrowth:      averageGrowthPct,
		owner:              owner,
		balance:            balance,
	}
	owner.Model().AddAgent(a)
	return a
}

// Balance returns the current balance.
func (a *HSA) Balance() decimal.Decimal { return a.balance }

// PayMedical covers a qualified medical expense from the account,
// tax-free. Returns the portion the balance could not cover, which the
// caller should treat as ordinary spending.
func (a *HSA) PayMedical(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(zero) {
		return zero
	}
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)
	return amount.Sub(taken)
}

// PreStep grows the balance and makes the year's pretax contribution
// from the owner's bank accounts.
func (a *HSA) PreStep() error {
	a.balance = a.balance.Add(interest.Continuous(a.balance, a.AverageGrowth, 1))

	desired := decimal.Min(a.YearlyContribution, a.owner.Config().HSAContributionLimit(a.owner.Age))
	if desired.GreaterThan(zero) {
		unfunded := a.owner.DeductFromBankAccounts(desired)
		contributed := desired.Sub(unfunded)
		a.balance = a.balance.Add(contributed)
		a.owner.TaxableIncome = a.owner.TaxableIncome.Sub(contributed)
	}
	return nil
}
