// Package housing models owned and rented residences: homes with
// mortgages, recurring ownership expenses and appreciation, and rented
// apartments with yearly rent increases.
package housing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

var hundred = decimal.NewFromInt(100)

// Expenses are the recurring costs of owning a home, separate from the
// mortgage itself.
type Expenses struct {
	PropertyTaxPercent decimal.Decimal // of home value, yearly
	YearlyInsurance    decimal.Decimal
	YearlyMaintenance  decimal.Decimal
}

// Total returns the year's expenses for a home of the given value.
func (e Expenses) Total(homeValue decimal.Decimal) decimal.Decimal {
	tax := homeValue.Mul(e.PropertyTaxPercent).Div(hundred)
	return tax.Add(e.YearlyInsurance).Add(e.YearlyMaintenance)
}

// Home is an owned residence financed with an amortizing mortgage. The
// home value appreciates yearly; the owner pays the mortgage plus
// property tax, insurance and maintenance.
type Home struct {
	model.Lifecycle

	Name             string
	Value            decimal.Decimal
	AppreciationRate decimal.Decimal // annual percent
	Expenses         Expenses
	Mortgage         *finance.AmortizingLoan

	owner *person.Person
}

// NewHome creates the home, registering it with the owner's home
// registry and its mortgage with the loan registry.
func NewHome(owner *person.Person, name string, value, appreciationPct decimal.Decimal, expenses Expenses, mortgage *finance.AmortizingLoan) *Home {
	h := &Home{
		Name:             name,
		Value:            value,
		AppreciationRate: appreciationPct,
		Expenses:         expenses,
		Mortgage:         mortgage,
		owner:            owner,
	}
	m := owner.Model()
	m.AddAgent(h)
	m.Registries.Homes.Register(owner, h)
	if mortgage != nil {
		m.Registries.Loans.Register(owner, mortgage)
	}
	return h
}

// Owner returns the person who owns the home.
func (h *Home) Owner() *person.Person { return h.owner }

// YearlyExpensesDue returns this year's mortgage payment plus ownership
// expenses.
func (h *Home) YearlyExpensesDue() decimal.Decimal {
	due := h.Expenses.Total(h.Value)
	if h.Mortgage != nil {
		due = due.Add(h.Mortgage.PaymentDueForYear())
	}
	return due
}

// InterestForYear returns the mortgage interest accruing this year, or
// zero for a paid-off home.
func (h *Home) InterestForYear() decimal.Decimal {
	if h.Mortgage == nil {
		return decimal.Zero
	}
	return h.Mortgage.InterestForYear()
}

// MakeYearlyPayment applies the year's mortgage payment and returns the
// total housing cost due, ownership expenses included.
func (h *Home) MakeYearlyPayment() (decimal.Decimal, error) {
	total := h.Expenses.Total(h.Value)
	if h.Mortgage != nil && !h.Mortgage.IsPaidOff() {
		paid, err := h.Mortgage.MakePayment(h.Mortgage.PaymentDueForYear(), decimal.Zero)
		if err != nil {
			return decimal.Zero, fmt.Errorf("mortgage payment on %s: %w", h.Name, err)
		}
		total = total.Add(paid)
		if h.Mortgage.IsPaidOff() {
			h.owner.Model().Events.Addf("%s paid off the mortgage on %s", h.owner.Name, h.Name)
		}
	}
	return total, nil
}

// Step appreciates the home value. Appreciation lands after the year's
// payment so property tax is charged on the starting value.
func (h *Home) Step() error {
	h.Value = h.Value.Add(h.Value.Mul(h.AppreciationRate).Div(hundred))
	return nil
}
