// Package debt models consumer debt: amortizing car and student loans
// paid from the owner's bank accounts, and revolving credit cards.
package debt

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

var zero = decimal.Zero

// CarLoan is an amortizing vehicle loan. Each year it draws the payment
// due from the owner's bank accounts; whatever the bank cannot cover
// capitalizes onto the principal.
type CarLoan struct {
	model.Lifecycle

	Description    string
	ExtraPrincipal decimal.Decimal // optional extra payment per year

	loan  *finance.AmortizingLoan
	owner *person.Person

	yearInterest decimal.Decimal
	paidOff      bool
}

// NewCarLoan creates the loan and registers it with the owner's loan
// registry.
func NewCarLoan(owner *person.Person, description string, amount, annualRatePct decimal.Decimal, lengthYears int) *CarLoan {
	l := &CarLoan{
		Description: description,
		loan:        finance.NewAmortizingLoan(amount, annualRatePct, lengthYears),
		owner:       owner,
	}
	m := owner.Model()
	m.AddAgent(l)
	m.Registries.Loans.Register(owner, l.loan)
	return l
}

// Principal returns the outstanding principal.
func (l *CarLoan) Principal() decimal.Decimal { return l.loan.Principal() }

// Loan returns the underlying amortizing loan.
func (l *CarLoan) Loan() *finance.AmortizingLoan { return l.loan }

// Step pays the year's installment from the owner's bank accounts.
func (l *CarLoan) Step() error {
	l.yearInterest = zero
	if l.loan.IsPaidOff() {
		return nil
	}
	l.yearInterest = l.loan.InterestForYear()

	due := l.loan.PaymentDueForYear()
	unfunded := l.owner.DeductFromBankAccounts(due)
	extra := l.ExtraPrincipal.Sub(l.owner.DeductFromBankAccounts(l.ExtraPrincipal))
	if _, err := l.loan.MakePayment(due.Sub(unfunded), extra); err != nil {
		return fmt.Errorf("car loan payment: %w", err)
	}
	if l.loan.IsPaidOff() && !l.paidOff {
		l.paidOff = true
		l.owner.Model().Events.Addf("%s paid off the car loan (%s)", l.owner.Name, l.Description)
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (l *CarLoan) ReportStats(stats model.Stats) {
	stats.Add(model.StatInterestPaid, l.yearInterest)
}
