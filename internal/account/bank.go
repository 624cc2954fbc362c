// Package account implements the balance-bearing financial entities a
// person can own: bank accounts, employer retirement plans, IRAs,
// brokerage accounts, HSAs, 529 plans, and pensions.
package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// BankAccount is a liquid deposit account earning compound interest.
type BankAccount struct {
	model.Lifecycle

	Name             string
	InterestRate     decimal.Decimal // annual percent
	CompoundsPerYear int

	owner   *person.Person
	balance decimal.Decimal

	interestHistory []decimal.Decimal
}

// NewBankAccount creates a bank account and registers it with the
// owner's bank registry.
func NewBankAccount(owner *person.Person, name string, balance, annualRatePct decimal.Decimal, compoundsPerYear int) *BankAccount {
	if compoundsPerYear <= 0 {
		compoundsPerYear = 12
	}
	a := &BankAccount{
		Name:             name,
		InterestRate:     annualRatePct,
		CompoundsPerYear: compoundsPerYear,
		owner:            owner,
		balance:          balance,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.BankAccounts.Register(owner, a)
	return a
}

// Balance returns the current balance.
func (a *BankAccount) Balance() decimal.Decimal { return a.balance }

// Deposit adds to the balance. Negative amounts are rejected.
func (a *BankAccount) Deposit(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	a.balance = a.balance.Add(amount)
	return true
}

// Withdraw removes up to amount and returns the amount actually
// withdrawn.
func (a *BankAccount) Withdraw(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(zero) {
		return zero
	}
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)
	return taken
}

// CalculateGrowth returns this year's compound interest without
// applying it.
func (a *BankAccount) CalculateGrowth() decimal.Decimal {
	return interest.Compound(a.balance, a.InterestRate, a.CompoundsPerYear, 1)
}

// ApplyGrowth credits the year's interest and returns it.
func (a *BankAccount) ApplyGrowth() decimal.Decimal {
	earned := a.CalculateGrowth()
	a.balance = a.balance.Add(earned)
	a.interestHistory = append(a.interestHistory, earned)
	return earned
}

// InterestHistory returns interest credited per simulated year.
func (a *BankAccount) InterestHistory() []decimal.Decimal { return a.interestHistory }

// Step credits the year's interest. Interest posts in the settlement
// phase so income deposited in PreStep earns nothing its first year.
func (a *BankAccount) Step() error {
	a.ApplyGrowth()
	return nil
}

// ReportStats implements model.StatReporter.
func (a *BankAccount) ReportStats(stats model.Stats) {
	stats.Add(model.StatUsableBalance, a.balance)
}
