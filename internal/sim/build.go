// Package sim assembles a runnable model from a parsed simulation
// input: it applies scenario and override configuration, creates the
// family and its members, and wires every owned entity into the model
// registries.
package sim

import (
	"fmt"

	"github.com/lifesim/life-simulator/internal/account"
	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/debt"
	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/housing"
	"github.com/lifesim/life-simulator/internal/insurance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/internal/work"
)

// Simulation couples a built model with the family it simulates.
type Simulation struct {
	Model  *model.Model
	Family *person.Family
	Config *config.FinancialConfig
}

// Build constructs a Simulation from validated input.
func Build(input *config.SimulationInput) (*Simulation, error) {
	cfg := config.New()
	if input.Scenario != "" {
		if err := cfg.ApplyScenario(input.Scenario); err != nil {
			return nil, err
		}
	}
	if len(input.ConfigOverrides) > 0 {
		for key, value := range input.ConfigOverrides {
			cfg.Set(key, value)
		}
	}

	m := model.New(input.StartYear, input.EndYear)
	family := person.NewFamily(m, cfg)

	people := make([]*person.Person, 0, len(input.People))
	for i := range input.People {
		p, err := buildPerson(family, &input.People[i])
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", input.People[i].Name, err)
		}
		people = append(people, p)
	}

	if input.FilingStatus == "married_filing_jointly" {
		people[0].Marry(people[1])
	}

	return &Simulation{Model: m, Family: family, Config: cfg}, nil
}

func buildPerson(family *person.Family, in *config.PersonInput) (*person.Person, error) {
	p := person.New(family, in.Name, in.Age, in.RetirementAge, in.YearlySpending)
	p.Spending.YearlyIncrease = in.SpendingGrowth

	for _, b := range in.BankAccounts {
		account.NewBankAccount(p, b.Name, b.Balance, b.InterestRate, b.CompoundsPerYear)
	}

	for _, j := range in.Jobs {
		salary := work.NewSalary(p.Model(), j.Salary, j.SalaryIncrease, j.Bonus)
		job := work.NewJob(p, j.Company, j.Role, salary)
		if j.Plan401k != nil {
			plan := account.NewJob401k(p,
				j.Plan401k.PretaxBalance, j.Plan401k.PretaxContribPercent,
				j.Plan401k.RothBalance, j.Plan401k.RothContribPercent,
				j.Plan401k.AverageGrowth, j.Plan401k.CompanyMatchPercent)
			job.SetRetirementPlan(plan)
		}
	}

	if in.TraditionalIRA != nil {
		account.NewTraditionalIRA(p, in.TraditionalIRA.Balance, in.TraditionalIRA.YearlyContribution, in.TraditionalIRA.AverageGrowth)
	}
	if in.RothIRA != nil {
		account.NewRothIRA(p, in.RothIRA.Balance, in.RothIRA.YearlyContribution, in.RothIRA.AverageGrowth)
	}
	if in.Brokerage != nil {
		account.NewBrokerageAccount(p, in.Brokerage.Name, in.Brokerage.Balance, in.Brokerage.AverageGrowth)
	}
	if in.HSA != nil {
		account.NewHSA(p, in.HSA.Balance, in.HSA.YearlyContribution, in.HSA.AverageGrowth)
	}
	for _, plan := range in.Plans529 {
		account.NewPlan529(p, plan.Beneficiary, plan.Balance, plan.YearlyContribution, plan.AverageGrowth)
	}
	if in.Pension != nil {
		account.NewPension(p, in.Pension.Company, in.Pension.AnnualBenefit, in.Pension.StartAge)
	}
	if in.SocialSecurity != nil {
		insurance.NewSocialSecurity(p, in.SocialSecurity.StartAge, in.SocialSecurity.AnnualBenefit, in.SocialSecurity.COLA)
	}
	if in.Annuity != nil {
		a := insurance.NewAnnuity(p, in.Annuity.Value, in.Annuity.YearlyContribution, in.Annuity.AverageGrowth)
		if in.Annuity.AnnuitizeAtAge > 0 {
			payoutYears := in.Annuity.PayoutYears
			if payoutYears <= 0 {
				payoutYears = 20
			}
			newAnnuityTrigger(p, a, in.Annuity.AnnuitizeAtAge, payoutYears)
		}
	}
	if in.LifeInsurance != nil {
		li := in.LifeInsurance
		if li.Kind == "whole" {
			insurance.NewWholeLife(p, li.DeathBenefit, li.YearlyPremium, li.CashValueRate, li.CashGrowth)
		} else {
			insurance.NewTermLife(p, li.DeathBenefit, li.YearlyPremium, li.TermYears)
		}
	}

	for _, h := range in.Homes {
		var mortgage *finance.AmortizingLoan
		if h.Mortgage != nil {
			mortgage = finance.NewAmortizingLoan(h.Mortgage.Amount, h.Mortgage.Rate, h.Mortgage.LengthYears)
		}
		housing.NewHome(p, h.Name, h.Value, h.AppreciationRate, housing.Expenses{
			PropertyTaxPercent: h.PropertyTaxPercent,
			YearlyInsurance:    h.YearlyInsurance,
			YearlyMaintenance:  h.YearlyMaintenance,
		}, mortgage)
	}
	for _, a := range in.Apartments {
		housing.NewApartment(p, a.Name, a.MonthlyRent, a.RentIncrease)
	}

	for _, l := range in.CarLoans {
		debt.NewCarLoan(p, l.Description, l.Amount, l.Rate, l.LengthYears)
	}
	for _, l := range in.StudentLoans {
		debt.NewStudentLoan(p, l.Amount, l.Rate, l.LengthYears, l.DefermentYears)
	}
	for _, c := range in.CreditCards {
		debt.NewCreditCard(p, c.Issuer, c.Balance, c.APR)
	}

	return p, nil
}

// annuityTrigger annuitizes a contract once the owner reaches the
// configured age.
type annuityTrigger struct {
	model.Lifecycle

	owner       *person.Person
	annuity     *insurance.Annuity
	age         int
	payoutYears int
}

func newAnnuityTrigger(owner *person.Person, a *insurance.Annuity, age, payoutYears int) *annuityTrigger {
	t := &annuityTrigger{owner: owner, annuity: a, age: age, payoutYears: payoutYears}
	owner.Model().AddAgent(t)
	return t
}

func (t *annuityTrigger) PreStep() error {
	if !t.annuity.Annuitized() && t.owner.Age >= t.age {
		t.annuity.Annuitize(t.payoutYears)
	}
	return nil
}
