package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

// Pension is a defined-benefit plan: once the owner has retired and
// reached the start age, it deposits a fixed annual benefit into the
// bank account as taxable income.
type Pension struct {
	model.Lifecycle

	Company  string
	Benefit  decimal.Decimal // annual
	StartAge int

	owner   *person.Person
	started bool
}

// NewPension creates the pension and registers it with the owner's
// benefit registry.
func NewPension(owner *person.Person, company string, annualBenefit decimal.Decimal, startAge int) *Pension {
	p := &Pension{Company: company, Benefit: annualBenefit, StartAge: startAge, owner: owner}
	m := owner.Model()
	m.AddAgent(p)
	m.Registries.Benefits.Register(owner, p)
	return p
}

// AnnualBenefit implements finance.Benefit.
func (p *Pension) AnnualBenefit() decimal.Decimal { return p.Benefit }

// Eligible reports whether payments are due: the owner has retired and
// reached the start age.
func (p *Pension) Eligible() bool {
	return p.owner.Retired() && p.owner.Age >= p.StartAge
}

// PreStep deposits the year's benefit when eligible.
func (p *Pension) PreStep() error {
	if !p.Eligible() || p.Benefit.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	if err := p.owner.DepositToBankAccount(p.Benefit); err != nil {
		return err
	}
	p.owner.TaxableIncome = p.owner.TaxableIncome.Add(p.Benefit)
	if !p.started {
		p.started = true
		p.owner.Model().Events.Addf("%s started collecting a pension from %s", p.owner.Name, p.Company)
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (p *Pension) ReportStats(stats model.Stats) {
	if p.Eligible() {
		stats.Add(model.StatGrossIncome, p.Benefit)
	}
}
