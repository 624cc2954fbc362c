package person

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/tax"
)

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// Person is the central agent of the simulation. It owns financial
// entities through the model registries and settles its yearly bills,
// taxes, and any forced retirement-account withdrawals in Step.
type Person struct {
	id     uuid.UUID
	family *Family

	Name          string
	Age           int
	RetirementAge float64
	Spending      *Spending

	// Debt carries unpaid obligations forward across years.
	Debt decimal.Decimal

	// TaxableIncome accumulates during the year (salary, pretax
	// withdrawals, benefits) and is cleared in PostStep.
	TaxableIncome decimal.Decimal

	// EarlyWithdrawal accumulates pretax amounts taken before the
	// federal retirement age; it feeds the penalty portion of the
	// year's taxes and is cleared in PostStep.
	EarlyWithdrawal decimal.Decimal

	filingStatus tax.FilingStatus

	yearTaxes        tax.TaxesDue
	yearSpent        decimal.Decimal
	yearHomeExpenses decimal.Decimal
	yearRentPaid     decimal.Decimal
	yearInterestPaid decimal.Decimal
}

// New creates a Person, registers it with the family's model, and adds
// it to the family.
func New(f *Family, name string, age int, retirementAge float64, spendingBase decimal.Decimal) *Person {
	p := &Person{
		id:            uuid.New(),
		family:        f,
		Name:          name,
		Age:           age,
		RetirementAge: retirementAge,
		filingStatus:  tax.Single,
	}
	p.Spending = NewSpending(f.model, spendingBase, decimal.Zero)
	f.model.AddAgent(p)
	f.Members = append(f.Members, p)
	return p
}

// OwnerID implements model.Owner.
func (p *Person) OwnerID() uuid.UUID { return p.id }

// Model returns the simulation model this person belongs to.
func (p *Person) Model() *model.Model { return p.family.model }

// Config returns the family's financial configuration.
func (p *Person) Config() *config.FinancialConfig { return p.family.cfg }

// Family returns the family this person belongs to.
func (p *Person) Family() *Family { return p.family }

// FilingStatus returns this person's tax filing status.
func (p *Person) FilingStatus() tax.FilingStatus { return p.filingStatus }

// Marry links two people and switches both to married-filing-jointly.
func (p *Person) Marry(spouse *Person) {
	p.filingStatus = tax.MarriedFilingJointly
	spouse.filingStatus = tax.MarriedFilingJointly
	p.family.model.Events.Addf("%s and %s got married", p.Name, spouse.Name)
}

// Registry accessors, filtered to entities this person owns.

func (p *Person) BankAccounts() []finance.BalanceBearing {
	return p.family.model.Registries.BankAccounts.Items(p)
}

func (p *Person) RetirementAccounts() []finance.DualBalance {
	return p.family.model.Registries.RetirementAccounts.Items(p)
}

func (p *Person) Jobs() []finance.Employment {
	return p.family.model.Registries.Jobs.Items(p)
}

func (p *Person) Homes() []finance.Housing {
	return p.family.model.Registries.Homes.Items(p)
}

func (p *Person) Apartments() []finance.Rental {
	return p.family.model.Registries.Apartments.Items(p)
}

// BankBalance returns the sum across this person's bank accounts.
func (p *Person) BankBalance() decimal.Decimal {
	total := zero
	for _, acct := range p.BankAccounts() {
		total = total.Add(acct.Balance())
	}
	return total
}

// PretaxBalance returns the combined pretax balance of the person's
// retirement accounts.
func (p *Person) PretaxBalance() decimal.Decimal {
	total := zero
	for _, acct := range p.RetirementAccounts() {
		total = total.Add(acct.PretaxBalance())
	}
	return total
}

// RothBalance returns the combined Roth balance of the person's
// retirement accounts.
func (p *Person) RothBalance() decimal.Decimal {
	total := zero
	for _, acct := range p.RetirementAccounts() {
		total = total.Add(acct.RothBalance())
	}
	return total
}

// Retired reports whether all of the person's jobs have ended. A person
// with no jobs counts as retired.
func (p *Person) Retired() bool {
	for _, job := range p.Jobs() {
		if !job.Retired() {
			return false
		}
	}
	return true
}

// DepositToBankAccount deposits into the person's first bank account.
// It is an error to deposit with no bank account registered.
func (p *Person) DepositToBankAccount(amount decimal.Decimal) error {
	accounts := p.BankAccounts()
	if len(accounts) == 0 {
		return fmt.Errorf("%s has no bank account to deposit into", p.Name)
	}
	if !accounts[0].Deposit(amount) {
		return fmt.Errorf("deposit of %s to %s's bank account rejected", amount.StringFixed(2), p.Name)
	}
	return nil
}

// DeductFromBankAccounts deducts amount across bank accounts in
// registration order, draining each before moving to the next. Returns
// the portion that could not be covered.
func (p *Person) DeductFromBankAccounts(amount decimal.Decimal) decimal.Decimal {
	remaining := amount
	for _, acct := range p.BankAccounts() {
		if remaining.LessThanOrEqual(zero) {
			break
		}
		remaining = remaining.Sub(acct.Withdraw(remaining))
	}
	return remaining
}

// DeductFromPretax deducts amount across pretax retirement balances in
// registration order. Returns the uncovered remainder.
func (p *Person) DeductFromPretax(amount decimal.Decimal) decimal.Decimal {
	remaining := amount
	for _, acct := range p.RetirementAccounts() {
		if remaining.LessThanOrEqual(zero) {
			break
		}
		remaining = acct.DeductPretax(remaining)
	}
	return remaining
}

// DeductFromRoth deducts amount across Roth retirement balances in
// registration order. Returns the uncovered remainder.
func (p *Person) DeductFromRoth(amount decimal.Decimal) decimal.Decimal {
	remaining := amount
	for _, acct := range p.RetirementAccounts() {
		if remaining.LessThanOrEqual(zero) {
			break
		}
		remaining = acct.DeductRoth(remaining)
	}
	return remaining
}

// WithdrawFromPretax liquidates up to amount from pretax retirement
// balances, deposits the proceeds into the bank account, and records
// them as taxable income (plus the early-withdrawal accumulator when
// under the federal retirement age). Returns the amount actually
// withdrawn.
func (p *Person) WithdrawFromPretax(amount decimal.Decimal) (decimal.Decimal, error) {
	remainder := p.DeductFromPretax(amount)
	withdrawn := amount.Sub(remainder)
	if withdrawn.LessThanOrEqual(zero) {
		return zero, nil
	}
	if err := p.DepositToBankAccount(withdrawn); err != nil {
		return zero, err
	}
	p.TaxableIncome = p.TaxableIncome.Add(withdrawn)
	if float64(p.Age) < p.family.cfg.FederalRetirementAge() {
		p.EarlyWithdrawal = p.EarlyWithdrawal.Add(withdrawn)
	}
	return withdrawn, nil
}

// PayBills deducts the given amount from bank accounts first, then from
// Roth balances. Pretax balances are never touched here since drawing
// on them changes the tax picture. Returns the unpaid remainder.
func (p *Person) PayBills(amount decimal.Decimal) decimal.Decimal {
	remaining := p.DeductFromBankAccounts(amount)
	if remaining.GreaterThan(zero) {
		remaining = p.DeductFromRoth(remaining)
	}
	return remaining
}

// FederalDeductions returns the larger of the standard deduction and
// itemized deductions (currently mortgage interest only).
func (p *Person) FederalDeductions() decimal.Decimal {
	standard := p.family.taxes.StandardDeduction(p.filingStatus)
	itemized := zero
	for _, home := range p.Homes() {
		itemized = itemized.Add(home.InterestForYear())
	}
	return decimal.Max(standard, itemized)
}

// TaxesDue computes this person's taxes for the year, with
// additionalIncome layered on top of the accumulated taxable income.
// Only valid for single filers; joint filers settle through the family.
func (p *Person) TaxesDue(additionalIncome decimal.Decimal) (tax.TaxesDue, error) {
	if p.filingStatus != tax.Single {
		return tax.TaxesDue{}, fmt.Errorf("person-level taxes require single filing status, have %s", p.filingStatus)
	}
	gross := p.TaxableIncome.Add(additionalIncome)
	return p.family.taxes.TaxesDue(gross, p.FederalDeductions(), p.filingStatus, p.EarlyWithdrawal), nil
}

// MaxBracketRate returns the top marginal federal rate for this
// person's filing status.
func (p *Person) MaxBracketRate() decimal.Decimal {
	return p.family.taxes.MaxBracketRate(p.filingStatus)
}

// PreStep ages the person by one year.
func (p *Person) PreStep() error {
	p.Age++
	return nil
}

// Step runs the yearly settlement: housing and discretionary bills,
// job retirement checks, taxes, any forced pretax withdrawal, and debt
// paydown.
func (p *Person) Step() error {
	if float64(p.Age) >= p.RetirementAge {
		for _, job := range p.Jobs() {
			if !job.Retired() {
				job.Retire()
			}
		}
	}

	discretionary := p.Spending.YearlySpending()

	homeSpending := zero
	interestPaid := zero
	for _, home := range p.Homes() {
		interestPaid = interestPaid.Add(home.InterestForYear())
		paid, err := home.MakeYearlyPayment()
		if err != nil {
			return fmt.Errorf("home payment for %s: %w", p.Name, err)
		}
		homeSpending = homeSpending.Add(paid)
	}

	rentPaid := zero
	for _, apt := range p.Apartments() {
		rentPaid = rentPaid.Add(apt.YearlyRent())
	}

	bills := discretionary.Add(homeSpending).Add(rentPaid)

	if p.filingStatus == tax.Single {
		withdrawn, taxes, err := settlePretaxWithdrawal(p, bills)
		if err != nil {
			return fmt.Errorf("settlement for %s: %w", p.Name, err)
		}
		p.family.model.Logger.Debugf("%s settled: bills=%s taxes=%s withdrawn=%s",
			p.Name, bills.StringFixed(2), taxes.Total().StringFixed(2), withdrawn.StringFixed(2))
		p.yearTaxes = taxes
		p.Debt = p.Debt.Add(p.PayBills(bills.Add(taxes.Total())))
		p.Debt = p.PayBills(p.Debt)
	}
	// Joint filers settle combined bills and taxes in Family.Step.

	p.yearSpent = discretionary
	p.yearHomeExpenses = homeSpending
	p.yearRentPaid = rentPaid
	p.yearInterestPaid = interestPaid

	if p.Age == int(p.family.cfg.FederalRetirementAge()) {
		p.family.model.Events.Addf("%s reached the federal retirement age", p.Name)
	}
	return nil
}

// PostStep clears the year's income accumulators.
func (p *Person) PostStep() error {
	p.TaxableIncome = zero
	p.EarlyWithdrawal = zero
	return nil
}

// ReportStats implements model.StatReporter.
func (p *Person) ReportStats(stats model.Stats) {
	stats.Add(model.StatBankBalance, p.BankBalance())
	stats.Add(model.StatDebt, p.Debt)
	stats.Add(model.StatTaxesPaid, p.yearTaxes.Total())
	stats.Add(model.StatTaxesFederal, p.yearTaxes.Federal)
	stats.Add(model.StatTaxesState, p.yearTaxes.State)
	stats.Add(model.StatTaxesSS, p.yearTaxes.SocialSecurity)
	stats.Add(model.StatTaxesMedicare, p.yearTaxes.Medicare)
	stats.Add(model.StatMoneySpent, p.yearSpent)
	stats.Add(model.StatHomeExpenses, p.yearHomeExpenses)
	stats.Add(model.StatRentPaid, p.yearRentPaid)
	stats.Add(model.StatInterestPaid, p.yearInterestPaid)
}
