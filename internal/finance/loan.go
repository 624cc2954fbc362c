package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// AmortizingLoan holds the shared state and math for amortizing debts
// (mortgages, car loans, student loans, carried card balances). Concrete
// loan types embed it and add their own payment policy.
type AmortizingLoan struct {
	LoanAmount    decimal.Decimal
	AnnualRatePct decimal.Decimal
	LengthYears   int

	outstanding decimal.Decimal
	monthlyPay  decimal.Decimal

	// Payment histories, one entry per applied payment.
	PrincipalPayments []decimal.Decimal
	InterestPayments  []decimal.Decimal
}

// NewAmortizingLoan creates a loan with the full amount outstanding.
func NewAmortizingLoan(amount, annualRatePct decimal.Decimal, lengthYears int) *AmortizingLoan {
	l := &AmortizingLoan{
		LoanAmount:    amount,
		AnnualRatePct: annualRatePct,
		LengthYears:   lengthYears,
		outstanding:   amount,
	}
	l.monthlyPay = l.computeMonthlyPayment()
	return l
}

// Principal returns the outstanding principal.
func (l *AmortizingLoan) Principal() decimal.Decimal {
	return l.outstanding
}

// SetPrincipal overrides the outstanding principal, for loans created
// mid-amortization.
func (l *AmortizingLoan) SetPrincipal(principal decimal.Decimal) {
	l.outstanding = principal
}

// MonthlyPayment returns the level monthly payment.
func (l *AmortizingLoan) MonthlyPayment() decimal.Decimal {
	return l.monthlyPay
}

// YearlyPayment returns twelve level monthly payments.
func (l *AmortizingLoan) YearlyPayment() decimal.Decimal {
	return l.monthlyPay.Mul(twelve)
}

// computeMonthlyPayment evaluates the annuity-payment formula
// P*i(1+i)^n / ((1+i)^n - 1), special-cased to P/n for a zero rate.
func (l *AmortizingLoan) computeMonthlyPayment() decimal.Decimal {
	n := int64(l.LengthYears * 12)
	if n <= 0 {
		return decimal.Zero
	}
	if l.AnnualRatePct.IsZero() {
		return l.LoanAmount.Div(decimal.NewFromInt(n))
	}
	i := l.AnnualRatePct.Div(hundred).Div(twelve)
	compounded := decimal.NewFromInt(1).Add(i).Pow(decimal.NewFromInt(n))
	return l.LoanAmount.Mul(i).Mul(compounded).Div(compounded.Sub(decimal.NewFromInt(1)))
}

// InterestForYear returns the interest accruing on the outstanding
// principal over one year.
func (l *AmortizingLoan) InterestForYear() decimal.Decimal {
	return l.outstanding.Mul(l.AnnualRatePct).Div(hundred)
}

// PaymentDueForYear returns the year's scheduled payment, capped at a
// full payoff (principal plus the year's interest).
func (l *AmortizingLoan) PaymentDueForYear() decimal.Decimal {
	return decimal.Min(l.YearlyPayment(), l.outstanding.Add(l.InterestForYear()))
}

// IsPaidOff reports whether no principal remains.
func (l *AmortizingLoan) IsPaidOff() bool {
	return l.outstanding.LessThanOrEqual(decimal.Zero)
}

// MakePayment applies one year's payment. Interest accrues first; if the
// payment cannot cover interest the shortfall capitalizes onto
// principal and extraToPrincipal is not applied. Returns the total
// amount actually paid.
func (l *AmortizingLoan) MakePayment(payment, extraToPrincipal decimal.Decimal) (decimal.Decimal, error) {
	if payment.IsNegative() {
		return decimal.Zero, fmt.Errorf("payment amount cannot be negative: %s", payment)
	}
	if extraToPrincipal.IsNegative() {
		return decimal.Zero, fmt.Errorf("extra principal amount cannot be negative: %s", extraToPrincipal)
	}

	interest := l.InterestForYear()
	if payment.LessThan(interest) {
		// Negative amortization: unpaid interest capitalizes.
		l.outstanding = l.outstanding.Add(interest.Sub(payment))
		l.InterestPayments = append(l.InterestPayments, payment)
		l.PrincipalPayments = append(l.PrincipalPayments, decimal.Zero)
		return payment, nil
	}

	principalPortion := payment.Sub(interest).Add(extraToPrincipal)
	if principalPortion.GreaterThan(l.outstanding) {
		principalPortion = l.outstanding
	}
	l.outstanding = l.outstanding.Sub(principalPortion)

	l.InterestPayments = append(l.InterestPayments, interest)
	l.PrincipalPayments = append(l.PrincipalPayments, principalPortion)
	return interest.Add(principalPortion), nil
}
