// Package finance defines the capability contracts financial entities
// compose. Concrete account types declare which sets they satisfy
// instead of descending from a deep hierarchy; the settlement engine and
// registries operate purely on these interfaces.
package finance

import "github.com/shopspring/decimal"

// BalanceBearing is the minimal money-holding contract.
type BalanceBearing interface {
	// Balance returns the current balance.
	Balance() decimal.Decimal
	// Deposit adds to the balance. It fails only for a negative
	// amount; a zero deposit succeeds as a no-op.
	Deposit(amount decimal.Decimal) bool
	// Withdraw removes up to amount from the balance and returns the
	// amount actually withdrawn, clamped to the balance. It never
	// fails and never leaves the balance negative.
	Withdraw(amount decimal.Decimal) decimal.Decimal
}

// Growable is a balance that appreciates at a configured rate.
type Growable interface {
	BalanceBearing
	// CalculateGrowth returns the growth for the period without
	// applying it.
	CalculateGrowth() decimal.Decimal
	// ApplyGrowth deposits the calculated growth, records it in the
	// growth history, and returns it.
	ApplyGrowth() decimal.Decimal
}

// RetirementGated is a balance whose penalty-free use is gated on age.
type RetirementGated interface {
	BalanceBearing
	// IsUsable reports whether the balance can be drawn without
	// penalty at the given age.
	IsUsable(age int) bool
}

// DualBalance is a retirement plan split into pretax and Roth
// sub-balances. Forced deductions draw pretax first, then Roth.
type DualBalance interface {
	PretaxBalance() decimal.Decimal
	RothBalance() decimal.Decimal
	// DeductPretax removes up to amount from the pretax sub-balance
	// and returns the uncovered remainder.
	DeductPretax(amount decimal.Decimal) decimal.Decimal
	// DeductRoth removes up to amount from the Roth sub-balance and
	// returns the uncovered remainder.
	DeductRoth(amount decimal.Decimal) decimal.Decimal
}

// RetirementPlan is an employer-sponsored plan a job contributes to.
type RetirementPlan interface {
	DualBalance
	PretaxContribution(salary decimal.Decimal) decimal.Decimal
	RothContribution(salary decimal.Decimal) decimal.Decimal
	CompanyMatch(contribution decimal.Decimal) decimal.Decimal
	AddPretax(amount decimal.Decimal)
	AddRoth(amount decimal.Decimal)
}

// Loan is an amortizing debt.
type Loan interface {
	// MonthlyPayment returns the level payment from the annuity
	// formula.
	MonthlyPayment() decimal.Decimal
	// MakePayment applies a payment. Interest accrues first; a
	// payment short of interest capitalizes the shortfall onto
	// principal. extraToPrincipal applies only after interest is
	// satisfied. Negative inputs are validation errors. Returns the
	// total amount actually paid.
	MakePayment(payment, extraToPrincipal decimal.Decimal) (decimal.Decimal, error)
	// Principal returns the outstanding principal.
	Principal() decimal.Decimal
}

// Benefit provides periodic payments once eligibility is met.
type Benefit interface {
	AnnualBenefit() decimal.Decimal
	Eligible() bool
}

// Employment is a job that can be retired from.
type Employment interface {
	Retire()
	Retired() bool
}

// Housing is an owned residence with yearly obligations.
type Housing interface {
	// YearlyExpensesDue returns this year's mortgage payment plus
	// upkeep expenses.
	YearlyExpensesDue() decimal.Decimal
	// MakeYearlyPayment applies the year's mortgage payment and
	// returns the total housing amount due.
	MakeYearlyPayment() (decimal.Decimal, error)
	// InterestForYear returns the mortgage interest accrued this
	// year.
	InterestForYear() decimal.Decimal
}

// Rental is a rented residence.
type Rental interface {
	YearlyRent() decimal.Decimal
}
