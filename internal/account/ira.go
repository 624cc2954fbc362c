package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// TraditionalIRA is a pretax individual retirement account. Yearly
// contributions come out of the owner's bank accounts, capped at the
// IRS limit, and reduce taxable income. It follows the same required
// distribution table as employer plans.
type TraditionalIRA struct {
	model.Lifecycle

	YearlyContribution decimal.Decimal
	AverageGrowth      decimal.Decimal // annual percent

	owner      *person.Person
	balance    decimal.Decimal
	rmdStarted bool
	yearRMD    decimal.Decimal
}

// NewTraditionalIRA creates the account and registers it with the
// owner's retirement registry.
func NewTraditionalIRA(owner *person.Person, balance, yearlyContribution, averageGrowthPct decimal.Decimal) *TraditionalIRA {
	a := &TraditionalIRA{
		YearlyContribution: yearlyContribution,
		AverageGrowth:      averageGrowthPct,
		owner:              owner,
		balance:            balance,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.RetirementAccounts.Register(owner, a)
	return a
}

// Balance returns the current balance.
func (a *TraditionalIRA) Balance() decimal.Decimal { return a.balance }

// PretaxBalance returns the balance; a traditional IRA is all pretax.
func (a *TraditionalIRA) PretaxBalance() decimal.Decimal { return a.balance }

// RothBalance returns zero.
func (a *TraditionalIRA) RothBalance() decimal.Decimal { return zero }

// DeductPretax removes up to amount and returns the uncovered
// remainder.
func (a *TraditionalIRA) DeductPretax(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)
	return amount.Sub(taken)
}

// DeductRoth is a no-op; there is no Roth sub-balance.
func (a *TraditionalIRA) DeductRoth(amount decimal.Decimal) decimal.Decimal { return amount }

// IsUsable reports whether withdrawals avoid the early penalty at the
// given age.
func (a *TraditionalIRA) IsUsable(age int) bool {
	return float64(age) >= a.owner.Config().FederalRetirementAge()
}

// PreStep grows the balance, makes the year's contribution from the
// owner's bank accounts, and forces any required distribution.
func (a *TraditionalIRA) PreStep() error {
	a.yearRMD = zero
	a.balance = a.balance.Add(interest.Continuous(a.balance, a.AverageGrowth, 1))

	desired := decimal.Min(a.YearlyContribution, a.owner.Config().IRAContributionLimit(a.owner.Age))
	if desired.GreaterThan(zero) {
		unfunded := a.owner.DeductFromBankAccounts(desired)
		contributed := desired.Sub(unfunded)
		a.balance = a.balance.Add(contributed)
		a.owner.TaxableIncome = a.owner.TaxableIncome.Sub(contributed)
	}

	rmd := requiredMinDistribution(a.owner, a.balance)
	if rmd.GreaterThan(zero) {
		a.balance = a.balance.Sub(rmd)
		if err := forceDistribution(a.owner, "traditional IRA", rmd, &a.rmdStarted); err != nil {
			return err
		}
		a.yearRMD = rmd
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (a *TraditionalIRA) ReportStats(stats model.Stats) {
	if a.IsUsable(a.owner.Age) {
		stats.Add(model.StatUsableBalance, a.balance)
	}
	stats.Add(model.StatRequiredMinDist, a.yearRMD)
}

// RothIRA is an after-tax individual retirement account. Contributions
// can always be withdrawn; withdrawing earnings before the federal
// retirement age incurs the early-withdrawal penalty.
type RothIRA struct {
	model.Lifecycle

	YearlyContribution decimal.Decimal
	AverageGrowth      decimal.Decimal // annual percent

	owner   *person.Person
	balance decimal.Decimal
	basis   decimal.Decimal
}

// NewRothIRA creates the account and registers it with the owner's
// retirement registry. The starting balance counts entirely as
// contribution basis.
func NewRothIRA(owner *person.Person, balance, yearlyContribution, averageGrowthPct decimal.Decimal) *RothIRA {
	a := &RothIRA{
		YearlyContribution: yearlyContribution,
		AverageGrowth:      averageGrowthPct,
		owner:              owner,
		balance:            balance,
		basis:              balance,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.RetirementAccounts.Register(owner, a)
	return a
}

// Balance returns the current balance.
func (a *RothIRA) Balance() decimal.Decimal { return a.balance }

// Basis returns the cumulative contributions still in the account.
func (a *RothIRA) Basis() decimal.Decimal { return a.basis }

// PretaxBalance returns zero.
func (a *RothIRA) PretaxBalance() decimal.Decimal { return zero }

// RothBalance returns the balance.
func (a *RothIRA) RothBalance() decimal.Decimal { return a.balance }

// DeductPretax is a no-op; there is no pretax sub-balance.
func (a *RothIRA) DeductPretax(amount decimal.Decimal) decimal.Decimal { return amount }

// DeductRoth removes up to amount, consuming contribution basis before
// earnings. An earnings portion taken before the federal retirement age
// feeds the owner's early-withdrawal accumulator. Returns the uncovered
// remainder.
func (a *RothIRA) DeductRoth(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)

	earnings := decimal.Max(taken.Sub(a.basis), zero)
	a.basis = decimal.Max(a.basis.Sub(taken), zero)
	if earnings.GreaterThan(zero) && !a.IsUsable(a.owner.Age) {
		a.owner.EarlyWithdrawal = a.owner.EarlyWithdrawal.Add(earnings)
	}
	return amount.Sub(taken)
}

// IsUsable reports whether earnings can be withdrawn without penalty at
// the given age.
func (a *RothIRA) IsUsable(age int) bool {
	return float64(age) >= a.owner.Config().FederalRetirementAge()
}

// PreStep grows the balance and makes the year's after-tax contribution
// from the owner's bank accounts.
func (a *RothIRA) PreStep() error {
	a.balance = a.balance.Add(interest.Continuous(a.balance, a.AverageGrowth, 1))

	desired := decimal.Min(a.YearlyContribution, a.owner.Config().IRAContributionLimit(a.owner.Age))
	if desired.GreaterThan(zero) {
		unfunded := a.owner.DeductFromBankAccounts(desired)
		contributed := desired.Sub(unfunded)
		a.balance = a.balance.Add(contributed)
		a.basis = a.basis.Add(contributed)
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (a *RothIRA) ReportStats(stats model.Stats) {
	stats.Add(model.StatUsableBalance, a.balance)
}
