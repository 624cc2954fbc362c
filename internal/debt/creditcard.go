package debt

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// CreditCard is revolving debt. Charges accumulate during the year; at
// settlement the owner pays as much of the balance as the bank can
// cover, and whatever revolves accrues monthly-compounded interest.
type CreditCard struct {
	model.Lifecycle

	Issuer string
	APR    decimal.Decimal // annual percent

	owner   *person.Person
	balance decimal.Decimal

	yearInterest decimal.Decimal
}

// NewCreditCard creates the card as a model agent.
func NewCreditCard(owner *person.Person, issuer string, balance, aprPct decimal.Decimal) *CreditCard {
	c := &CreditCard{Issuer: issuer, APR: aprPct, owner: owner, balance: balance}
	owner.Model().AddAgent(c)
	return c
}

// Balance returns the current revolving balance.
func (c *CreditCard) Balance() decimal.Decimal { return c.balance }

// Charge adds a purchase to the balance. Negative charges are ignored.
func (c *CreditCard) Charge(amount decimal.Decimal) {
	if amount.GreaterThan(zero) {
		c.balance = c.balance.Add(amount)
	}
}

// Step pays down the balance from the owner's bank accounts; the
// unpaid remainder revolves and accrues interest.
func (c *CreditCard) Step() error {
	c.yearInterest = zero
	if c.balance.LessThanOrEqual(zero) {
		return nil
	}

	unfunded := c.owner.DeductFromBankAccounts(c.balance)
	c.balance = unfunded
	if c.balance.GreaterThan(zero) {
		c.yearInterest = interest.Compound(c.balance, c.APR, 12, 1)
		c.balance = c.balance.Add(c.yearInterest)
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (c *CreditCard) ReportStats(stats model.Stats) {
	stats.Add(model.StatDebt, c.balance)
	stats.Add(model.StatInterestPaid, c.yearInterest)
}
