package debt

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/finance"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

// StudentLoan is an amortizing education loan with an optional
// deferment period during which no payments are made and interest
// capitalizes onto the principal.
type StudentLoan struct {
	model.Lifecycle

	DefermentYears int

	loan  *finance.AmortizingLoan
	owner *person.Person

	yearInterest decimal.Decimal
	paidOff      bool
}

// NewStudentLoan creates the loan and registers it with the owner's
// loan registry.
func NewStudentLoan(owner *person.Person, amount, annualRatePct decimal.Decimal, lengthYears, defermentYears int) *StudentLoan {
	l := &StudentLoan{
		DefermentYears: defermentYears,
		loan:           finance.NewAmortizingLoan(amount, annualRatePct, lengthYears),
		owner:          owner,
	}
	m := owner.Model()
	m.AddAgent(l)
	m.Registries.Loans.Register(owner, l.loan)
	return l
}

// Principal returns the outstanding principal.
func (l *StudentLoan) Principal() decimal.Decimal { return l.loan.Principal() }

// Loan returns the underlying amortizing loan.
func (l *StudentLoan) Loan() *finance.AmortizingLoan { return l.loan }

// InDeferment reports whether payments are still deferred.
func (l *StudentLoan) InDeferment() bool { return l.DefermentYears > 0 }

// Step pays the year's installment from the owner's bank accounts, or
// capitalizes the year's interest while deferred.
func (l *StudentLoan) Step() error {
	l.yearInterest = zero
	if l.loan.IsPaidOff() {
		return nil
	}
	l.yearInterest = l.loan.InterestForYear()

	if l.DefermentYears > 0 {
		l.DefermentYears--
		// A zero payment falls short of interest, so the full
		// year's interest capitalizes.
		if _, err := l.loan.MakePayment(zero, zero); err != nil {
			return fmt.Errorf("student loan deferment: %w", err)
		}
		return nil
	}

	due := l.loan.PaymentDueForYear()
	unfunded := l.owner.DeductFromBankAccounts(due)
	if _, err := l.loan.MakePayment(due.Sub(unfunded), zero); err != nil {
		return fmt.Errorf("student loan payment: %w", err)
	}
	if l.loan.IsPaidOff() && !l.paidOff {
		l.paidOff = true
		l.owner.Model().Events.Addf("%s paid off the student loans", l.owner.Name)
	}
	return nil
}

// ReportStats implements model.StatReporter.
func (l *StudentLoan) ReportStats(stats model.Stats) {
	stats.Add(model.StatInterestPaid, l.yearInterest)
}
