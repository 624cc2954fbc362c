// Package insurance models benefit products: social security, life
// insurance policies, and annuities.
package insurance

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// SocialSecurity pays an annual benefit from the start age on, with a
// yearly cost-of-living adjustment.
type SocialSecurity struct {
	model.Lifecycle

	StartAge int
	Benefit  decimal.Decimal // annual, grows by COLA
	COLA     decimal.Decimal // percent

	owner   *person.Person
	started bool
}

// NewSocialSecurity creates the benefit and registers it with the
// owner's benefit registry.
func NewSocialSecurity(owner *person.Person, startAge int, annualBenefit, colaPct decimal.Decimal) *SocialSecurity {
	s := &SocialSecurity{StartAge: startAge, Benefit: annualBenefit, COLA: colaPct, owner: owner}
	m := owner.Model()
	m.AddAgent(s)
	m.Registries.Benefits.Register(owner, s)
	return s
}

// AnnualBenefit implements finance.Benefit.
func (s *SocialSecurity) AnnualBenefit() decimal.Decimal { return s.Benefit }

// Eligible implements finance.Benefit.
func (s *SocialSecurity) Eligible() bool { return s.owner.Age >= s.StartAge }

// PreStep deposits the year's benefit when eligible. The configured
// taxable portion of the benefit (the statutory 85% maximum by
// default) counts as taxable income.
func (s *SocialSecurity) PreStep() error {
	if !s.Eligible() {
		return nil
	}
	if err := s.owner.DepositToBankAccount(s.Benefit); err != nil {
		return err
	}
	taxable := s.Benefit.Mul(s.owner.Config().SocialSecurityTaxablePortion())
	s.owner.TaxableIncome = s.owner.TaxableIncome.Add(taxable)
	if !s.started {
		s.started = true
		s.owner.Model().Events.Addf("%s started collecting social security", s.owner.Name)
	}
	return nil
}

// PostStep applies the cost-of-living adjustment once payments have
// begun.
func (s *SocialSecurity) PostStep() error {
	if s.started {
		s.Benefit = s.Benefit.Add(s.Benefit.Mul(s.COLA).Div(hundred))
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (s *SocialSecurity) ReportStats(stats model.Stats) {
	if s.Eligible() {
		stats.Add(model.StatGrossIncome, s.Benefit)
	}
}
