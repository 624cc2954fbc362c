package insurance

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// Annuity accumulates after-tax contributions with growth, then pays a
// level annual amount over a fixed period once annuitized. Earnings are
// taxable as they are paid out; the contribution basis comes back
// tax-free through an exclusion ratio.
type Annuity struct {
	model.Lifecycle

	YearlyContribution decimal.Decimal
	AverageGrowth      decimal.Decimal // annual percent

	owner *person.Person

	value decimal.Decimal
	basis decimal.Decimal

	annuitized      bool
	payoutYears     int
	annualPayout    decimal.Decimal
	excludedPortion decimal.Decimal // per-payment return of basis
	yearPayout      decimal.Decimal
}

// NewAnnuity creates the annuity as a model agent.
func NewAnnuity(owner *person.Person, value, yearlyContribution, averageGrowthPct decimal.Decimal) *Annuity {
	a := &Annuity{
		YearlyContribution: yearlyContribution,
		AverageGrowth:      averageGrowthPct,
		owner:              owner,
		value:              value,
		basis:              value,
	}
	owner.Model().AddAgent(a)
	return a
}

// Value returns the current contract value.
func (a *Annuity) Value() decimal.Decimal { return a.value }

// Annuitized reports whether payout has begun.
func (a *Annuity) Annuitized() bool { return a.annuitized }

// AnnualPayout returns the level payment once annuitized.
func (a *Annuity) AnnualPayout() decimal.Decimal { return a.annualPayout }

// Annuitize converts the contract value into level payments over the
// given number of years and stops further contributions.
func (a *Annuity) Annuitize(payoutYears int) {
	if a.annuitized || payoutYears <= 0 || a.value.LessThanOrEqual(zero) {
		return
	}
	years := decimal.NewFromInt(int64(payoutYears))
	a.annuitized = true
	a.payoutYears = payoutYears
	a.annualPayout = a.value.Div(years)
	a.excludedPortion = a.basis.Div(years)
	a.owner.Model().Events.Addf("%s annuitized a contract paying %s per year", a.owner.Name, a.annualPayout.StringFixed(2))
}

// Surrender cashes out an un-annuitized contract: the value goes to the
// bank and the earnings above basis are taxable, with the early
// penalty applying under the federal retirement age.
func (a *Annuity) Surrender() (decimal.Decimal, error) {
	if a.annuitized || a.value.LessThanOrEqual(zero) {
		return zero, nil
	}
	value := a.value
	earnings := decimal.Max(value.Sub(a.basis), zero)
	a.value = zero
	a.basis = zero
	if err := a.owner.DepositToBankAccount(value); err != nil {
		return zero, err
	}
	a.owner.TaxableIncome = a.owner.TaxableIncome.Add(earnings)
	if float64(a.owner.Age) < a.owner.Config().FederalRetirementAge() {
		a.owner.EarlyWithdrawal = a.owner.EarlyWithdrawal.Add(earnings)
	}
	return value, nil
}

// PreStep runs the accumulation or payout for the year.
func (a *Annuity) PreStep() error {
	a.yearPayout = zero
	if !a.annuitized {
		a.value = a.value.Add(interest.Continuous(a.value, a.AverageGrowth, 1))
		if a.YearlyContribution.GreaterThan(zero) {
			unfunded := a.owner.DeductFromBankAccounts(a.YearlyContribution)
			contributed := a.YearlyContribution.Sub(unfunded)
			a.value = a.value.Add(contributed)
			a.basis = a.basis.Add(contributed)
		}
		return nil
	}

	if a.payoutYears <= 0 {
		return nil
	}
	a.payoutYears--
	payout := decimal.Min(a.annualPayout, a.value)
	a.value = a.value.Sub(payout)
	if err := a.owner.DepositToBankAccount(payout); err != nil {
		return err
	}
	taxable := decimal.Max(payout.Sub(a.excludedPortion), zero)
	a.owner.TaxableIncome = a.owner.TaxableIncome.Add(taxable)
	a.yearPayout = payout
	return nil
}

// ReportStats implements model.StatReporter.
func (a *Annuity) ReportStats(stats model.Stats) {
	stats.Add(model.StatGrossIncome, a.yearPayout)
}
