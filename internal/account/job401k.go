package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// Job401k is an employer-sponsored retirement plan with pretax and Roth
// sub-balances. Elective deferrals are a percentage of salary, matched
// by the employer up to a percentage of the deferral. Balances grow
// continuously and pretax money is force-distributed once the owner
// reaches the IRS distribution table.
type Job401k struct {
	model.Lifecycle

	PretaxContribPercent decimal.Decimal
	RothContribPercent   decimal.Decimal
	CompanyMatchPercent  decimal.Decimal
	AverageGrowth        decimal.Decimal // annual percent

	owner         *person.Person
	pretaxBalance decimal.Decimal
	rothBalance   decimal.Decimal

	rmdStarted bool
	yearRMD    decimal.Decimal
}

// NewJob401k creates the plan and registers it with the owner's
// retirement registry.
func NewJob401k(owner *person.Person, pretaxBalance, pretaxContribPct, rothBalance, rothContribPct, averageGrowthPct, companyMatchPct decimal.Decimal) *Job401k {
	a := &Job401k{
		PretaxContribPercent: pretaxContribPct,
		RothContribPercent:   rothContribPct,
		CompanyMatchPercent:  companyMatchPct,
		AverageGrowth:        averageGrowthPct,
		owner:                owner,
		pretaxBalance:        pretaxBalance,
		rothBalance:          rothBalance,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.RetirementAccounts.Register(owner, a)
	return a
}

// Owner returns the person holding the plan.
func (a *Job401k) Owner() *person.Person { return a.owner }

// PretaxBalance returns the pretax sub-balance.
func (a *Job401k) PretaxBalance() decimal.Decimal { return a.pretaxBalance }

// RothBalance returns the Roth sub-balance.
func (a *Job401k) RothBalance() decimal.Decimal { return a.rothBalance }

// Balance returns the combined balance.
func (a *Job401k) Balance() decimal.Decimal { return a.pretaxBalance.Add(a.rothBalance) }

// PretaxContribution returns the elective pretax deferral for the given
// salary.
func (a *Job401k) PretaxContribution(salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(a.PretaxContribPercent).Div(hundred)
}

// RothContribution returns the elective Roth deferral for the given
// salary.
func (a *Job401k) RothContribution(salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(a.RothContribPercent).Div(hundred)
}

// CompanyMatch returns the employer match for a combined deferral.
func (a *Job401k) CompanyMatch(contribution decimal.Decimal) decimal.Decimal {
	return contribution.Mul(a.CompanyMatchPercent).Div(hundred)
}

// AddPretax adds to the pretax sub-balance.
func (a *Job401k) AddPretax(amount decimal.Decimal) {
	a.pretaxBalance = a.pretaxBalance.Add(amount)
}

// AddRoth adds to the Roth sub-balance.
func (a *Job401k) AddRoth(amount decimal.Decimal) {
	a.rothBalance = a.rothBalance.Add(amount)
}

// DeductPretax removes up to amount from the pretax sub-balance and
// returns the uncovered remainder.
func (a *Job401k) DeductPretax(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, a.pretaxBalance)
	a.pretaxBalance = a.pretaxBalance.Sub(taken)
	return amount.Sub(taken)
}

// DeductRoth removes up to amount from the Roth sub-balance and returns
// the uncovered remainder.
func (a *Job401k) DeductRoth(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, a.rothBalance)
	a.rothBalance = a.rothBalance.Sub(taken)
	return amount.Sub(taken)
}

// IsUsable reports whether the balance can be drawn without penalty at
// the given age.
func (a *Job401k) IsUsable(age int) bool {
	return float64(age) >= a.owner.Config().FederalRetirementAge()
}

// PreStep applies the year's growth, then forces any required minimum
// distribution before the owner settles taxes.
func (a *Job401k) PreStep() error {
	a.yearRMD = zero
	a.pretaxBalance = a.pretaxBalance.Add(interest.Continuous(a.pretaxBalance, a.AverageGrowth, 1))
	a.rothBalance = a.rothBalance.Add(interest.Continuous(a.rothBalance, a.AverageGrowth, 1))

	rmd := requiredMinDistribution(a.owner, a.pretaxBalance)
	if rmd.GreaterThan(zero) {
		a.pretaxBalance = a.pretaxBalance.Sub(rmd)
		if err := forceDistribution(a.owner, "401k", rmd, &a.rmdStarted); err != nil {
			return err
		}
		a.yearRMD = rmd
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (a *Job401k) ReportStats(stats model.Stats) {
	stats.Add(model.Stat401kBalance, a.Balance())
	if a.IsUsable(a.owner.Age) {
		stats.Add(model.StatUsableBalance, a.Balance())
	}
	stats.Add(model.StatRequiredMinDist, a.yearRMD)
}
