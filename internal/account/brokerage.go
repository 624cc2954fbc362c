package account

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// BrokerageAccount is a taxable investment account. Growth is treated
// as distributions that are reinvested: it lands in the balance and in
// the owner's taxable income each year, so later withdrawals carry no
// further tax. The account is fully liquid and participates in bill
// paying alongside bank accounts.
type BrokerageAccount struct {
	model.Lifecycle

	Name          string
	AverageGrowth decimal.Decimal // annual percent

	owner   *person.Person
	balance decimal.Decimal
}

// NewBrokerageAccount creates the account and registers it with the
// owner's bank registry, after any true bank accounts already
// registered.
func NewBrokerageAccount(owner *person.Person, name string, balance, averageGrowthPct decimal.Decimal) *BrokerageAccount {
	a := &BrokerageAccount{
		Name:          name,
		AverageGrowth: averageGrowthPct,
		owner:         owner,
		balance:       balance,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.BankAccounts.Register(owner, a)
	return a
}

// Balance returns the current balance.
func (a *BrokerageAccount) Balance() decimal.Decimal { return a.balance }

// Deposit adds to the balance. Negative amounts are rejected.
func (a *BrokerageAccount) Deposit(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	a.balance = a.balance.Add(amount)
	return true
}

// Withdraw removes up to amount and returns the amount actually
// withdrawn.
func (a *BrokerageAccount) Withdraw(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(zero) {
		return zero
	}
	taken := decimal.Min(amount, a.balance)
	a.balance = a.balance.Sub(taken)
	return taken
}

// PreStep applies the year's growth and recognizes it as income before
// the owner settles taxes.
func (a *BrokerageAccount) PreStep() error {
	gain := interest.Continuous(a.balance, a.AverageGrowth, 1)
	a.balance = a.balance.Add(gain)
	a.owner.TaxableIncome = a.owner.TaxableIncome.Add(gain)
	return nil
}

// ReportStats implements model.StatReporter.
func (a *BrokerageAccount) ReportStats(stats model.Stats) {
	stats.Add(model.StatUsableBalance, a.balance)
}
