// Package work models employment: salaries with annual raises and jobs
// that post income, fund retirement plans, and can be retired from.
package work

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

var zero = decimal.Zero

// Job is employment held by a person. Each year it posts gross pay,
// routes elective deferrals and the company match into the attached
// retirement plan, deposits take-home pay into the owner's bank
// account, and accumulates taxable income.
type Job struct {
	model.Lifecycle

	Company string
	Role    string
	Salary  *Salary

	owner   *person.Person
	plan    finance.RetirementPlan
	retired bool

	yearGross    decimal.Decimal
	yearDeferred decimal.Decimal
	yearMatch    decimal.Decimal
}

// NewJob creates a Job, registers it with the model and the owner's
// job registry.
func NewJob(owner *person.Person, company, role string, salary *Salary) *Job {
	j := &Job{Company: company, Role: role, Salary: salary, owner: owner}
	m := owner.Model()
	m.AddAgent(j)
	m.Registries.Jobs.Register(owner, j)
	return j
}

// SetRetirementPlan attaches the employer-sponsored plan contributions
// flow into.
func (j *Job) SetRetirementPlan(plan finance.RetirementPlan) { j.plan = plan }

// RetirementPlan returns the attached plan, if any.
func (j *Job) RetirementPlan() finance.RetirementPlan { return j.plan }

// Owner returns the person holding this job.
func (j *Job) Owner() *person.Person { return j.owner }

// Retire ends the job. Idempotent.
func (j *Job) Retire() {
	if j.retired {
		return
	}
	j.retired = true
	j.owner.Model().Events.Addf("%s retired from %s", j.owner.Name, j.Company)
}

// Retired reports whether the job has ended.
func (j *Job) Retired() bool { return j.retired }

// PreStep posts the year's income: elective deferrals up to the annual
// limit, the company match, take-home pay to the bank account, and
// taxable income (Roth deferrals stay taxable; pretax deferrals do
// not).
func (j *Job) PreStep() error {
	j.yearGross = zero
	j.yearDeferred = zero
	j.yearMatch = zero
	if j.retired {
		return nil
	}

	gross := j.Salary.Gross()
	j.yearGross = gross

	pretax := zero
	roth := zero
	if j.plan != nil {
		limit := j.owner.Config().Job401kContributionLimit(j.owner.Age)
		pretax = decimal.Min(j.plan.PretaxContribution(gross), limit)
		roth = decimal.Min(j.plan.RothContribution(gross), limit.Sub(pretax))
		j.plan.AddPretax(pretax)
		j.plan.AddRoth(roth)

		match := j.plan.CompanyMatch(pretax.Add(roth))
		j.plan.AddPretax(match)
		j.yearMatch = match
	}
	j.yearDeferred = pretax.Add(roth)

	takeHome := gross.Sub(pretax).Sub(roth)
	if err := j.owner.DepositToBankAccount(takeHome); err != nil {
		return err
	}
	j.owner.TaxableIncome = j.owner.TaxableIncome.Add(gross.Sub(pretax))
	return nil
}

// ReportStats implements model.StatReporter.
func (j *Job) ReportStats(stats model.Stats) {
	stats.Add(model.StatGrossIncome, j.yearGross)
	stats.Add(model.StatRetirementContrib, j.yearDeferred)
	stats.Add(model.StatRetirementMatch, j.yearMatch)
}
