package person

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/tax"
)

// Family groups people who settle taxes together. For joint filers the
// family runs the combined settlement; single filers settle in their
// own Step and the family only sweeps leftover debt.
type Family struct {
	model.Lifecycle

	Members []*Person

	model *model.Model
	cfg   *config.FinancialConfig
	taxes *tax.Calculator
}

// NewFamily creates a family bound to the model and configuration and
// registers it as an agent. Members are added via person.New.
func NewFamily(m *model.Model, cfg *config.FinancialConfig) *Family {
	f := &Family{
		model: m,
		cfg:   cfg,
		taxes: tax.NewCalculator(cfg),
	}
	m.AddAgent(f)
	return f
}

// Model returns the simulation model.
func (f *Family) Model() *model.Model { return f.model }

// Config returns the financial configuration.
func (f *Family) Config() *config.FinancialConfig { return f.cfg }

// Taxes returns the family's tax calculator.
func (f *Family) Taxes() *tax.Calculator { return f.taxes }

// FilingStatus returns the filing status shared by the family, taken
// from the first member. An empty family files single.
func (f *Family) FilingStatus() tax.FilingStatus {
	if len(f.Members) == 0 {
		return tax.Single
	}
	return f.Members[0].filingStatus
}

// BankBalance returns the combined liquid balance of all members.
func (f *Family) BankBalance() decimal.Decimal {
	total := zero
	for _, m := range f.Members {
		total = total.Add(m.BankBalance())
	}
	return total
}

// CombinedSpending returns the members' discretionary spending plus
// housing costs for the year.
func (f *Family) CombinedSpending() decimal.Decimal {
	total := zero
	for _, m := range f.Members {
		total = total.Add(m.Spending.YearlySpending())
		for _, home := range m.Homes() {
			total = total.Add(home.YearlyExpensesDue())
		}
		for _, apt := range m.Apartments() {
			total = total.Add(apt.YearlyRent())
		}
	}
	return total
}

// TaxesDue computes the joint tax bill with additionalIncome layered on
// top of the members' combined taxable income. Only valid for joint
// filers.
func (f *Family) TaxesDue(additionalIncome decimal.Decimal) (tax.TaxesDue, error) {
	status := f.FilingStatus()
	if status != tax.MarriedFilingJointly {
		return tax.TaxesDue{}, fmt.Errorf("family-level taxes require joint filing status, have %s", status)
	}
	gross := additionalIncome
	early := zero
	for _, m := range f.Members {
		gross = gross.Add(m.TaxableIncome)
		early = early.Add(m.EarlyWithdrawal)
	}
	return f.taxes.TaxesDue(gross, f.taxes.StandardDeduction(status), status, early), nil
}

// MaxBracketRate returns the top marginal federal rate for the family's
// filing status.
func (f *Family) MaxBracketRate() decimal.Decimal {
	return f.taxes.MaxBracketRate(f.FilingStatus())
}

// WithdrawFromPretax liquidates up to amount across members' pretax
// balances, member by member. Returns the amount actually withdrawn.
func (f *Family) WithdrawFromPretax(amount decimal.Decimal) (decimal.Decimal, error) {
	remaining := amount
	for _, m := range f.Members {
		if remaining.LessThanOrEqual(zero) {
			break
		}
		withdrawn, err := m.WithdrawFromPretax(remaining)
		if err != nil {
			return zero, err
		}
		remaining = remaining.Sub(withdrawn)
	}
	return amount.Sub(remaining), nil
}

// PayBills deducts amount across members: every member's bank accounts
// first, then Roth balances. Returns the unpaid remainder.
func (f *Family) PayBills(amount decimal.Decimal) decimal.Decimal {
	remaining := amount
	for _, m := range f.Members {
		if remaining.LessThanOrEqual(zero) {
			return zero
		}
		remaining = m.DeductFromBankAccounts(remaining)
	}
	for _, m := range f.Members {
		if remaining.LessThanOrEqual(zero) {
			return zero
		}
		remaining = m.DeductFromRoth(remaining)
	}
	return remaining
}

// Step runs the joint settlement for married-filing-jointly families,
// then sweeps each member's carried debt against family funds.
func (f *Family) Step() error {
	if f.FilingStatus() == tax.MarriedFilingJointly && len(f.Members) > 0 {
		bills := f.CombinedSpending()
		_, taxes, err := settlePretaxWithdrawal(f, bills)
		if err != nil {
			return fmt.Errorf("family settlement: %w", err)
		}
		head := f.Members[0]
		head.yearTaxes = taxes
		head.Debt = head.Debt.Add(f.PayBills(bills.Add(taxes.Total())))
	}
	for _, m := range f.Members {
		if m.Debt.GreaterThan(zero) {
			m.Debt = f.PayBills(m.Debt)
		}
	}
	return nil
}
