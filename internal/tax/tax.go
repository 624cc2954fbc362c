// Package tax computes the itemized taxes due on a year of income.
//
// TAX CALCULATION ASSUMPTIONS:
//
//  1. Federal brackets are applied to all simulated years without
//     inflation indexing; predicting future bracket law is out of scope.
//  2. State tax is a flat rate on the same adjusted gross income as the
//     federal calculation (no state-specific bracket modeling).
//  3. FICA taxes apply to gross income, not AGI.
//  4. The early-withdrawal penalty is a flat percentage reported as its
//     own component, never blended into federal tax.
//
// All rates, brackets, and thresholds come from the injected
// configuration at call time, so scenario overlays take effect without
// changing this package.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/config"
)

// FilingStatus determines bracket tables, deductions, and whether
// settlement is per-person or per-family.
type FilingStatus int

const (
	Single FilingStatus = iota
	MarriedFilingJointly
)

// String returns the configuration key for the filing status.
func (s FilingStatus) String() string {
	switch s {
	case MarriedFilingJointly:
		return "married_filing_jointly"
	default:
		return "single"
	}
}

// ParseFilingStatus converts a configuration string to a FilingStatus.
func ParseFilingStatus(value string) (FilingStatus, error) {
	switch value {
	case "single":
		return Single, nil
	case "married_filing_jointly", "mfj":
		return MarriedFilingJointly, nil
	default:
		return Single, fmt.Errorf("unsupported filing status %q", value)
	}
}

// TaxesDue is the immutable itemization of one year's taxes. A fresh
// value is produced by every calculation.
type TaxesDue struct {
	Federal        decimal.Decimal
	State          decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
	Penalty        decimal.Decimal
}

// Total returns the sum of all components.
func (t TaxesDue) Total() decimal.Decimal {
	return t.Federal.Add(t.State).Add(t.SocialSecurity).Add(t.Medicare).Add(t.Penalty)
}

// Calculator computes taxes due from configured rate tables.
type Calculator struct {
	cfg *config.FinancialConfig
}

// NewCalculator creates a calculator backed by the given configuration.
func NewCalculator(cfg *config.FinancialConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

var hundred = decimal.NewFromInt(100)

// TaxesDue computes the itemized taxes on a year's income.
// earlyWithdrawal is the portion of income subject to the
// early-withdrawal penalty.
func (c *Calculator) TaxesDue(grossIncome, deductions decimal.Decimal, status FilingStatus, earlyWithdrawal decimal.Decimal) TaxesDue {
	agi := decimal.Max(grossIncome.Sub(deductions), decimal.Zero)

	return TaxesDue{
		Federal:        c.FederalTax(agi, status),
		State:          c.StateTax(agi),
		SocialSecurity: c.SocialSecurityTax(grossIncome),
		Medicare:       c.MedicareTax(grossIncome, status),
		Penalty:        c.EarlyWithdrawalPenalty(earlyWithdrawal),
	}
}

// FederalTax applies the progressive bracket table for the filing status
// to already-adjusted income, rounded to whole dollars.
func (c *Calculator) FederalTax(adjustedGrossIncome decimal.Decimal, status FilingStatus) decimal.Decimal {
	totalTax := decimal.Zero
	for _, b := range c.cfg.FederalBrackets(status.String()) {
		incomeInBracket := decimal.Min(
			decimal.Max(adjustedGrossIncome.Sub(b.Start), decimal.Zero),
			b.End.Sub(b.Start),
		)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(b.Rate).Div(hundred))
		}
	}
	return totalTax.Round(0)
}

// StateTax applies the flat state rate to adjusted gross income.
func (c *Calculator) StateTax(adjustedGrossIncome decimal.Decimal) decimal.Decimal {
	return adjustedGrossIncome.Mul(c.cfg.StateTaxRate()).Div(hundred)
}

// SocialSecurityTax applies the social security rate to gross income up
// to the wage base cap.
func (c *Calculator) SocialSecurityTax(grossIncome decimal.Decimal) decimal.Decimal {
	taxable := decimal.Min(grossIncome, c.cfg.SocialSecurityWageBase())
	return taxable.Mul(c.cfg.SocialSecurityRate()).Div(hundred)
}

// MedicareTax applies the medicare rate to gross income, plus the
// additional surtax on income above the filing-status threshold.
func (c *Calculator) MedicareTax(grossIncome decimal.Decimal, status FilingStatus) decimal.Decimal {
	tax := grossIncome.Mul(c.cfg.MedicareRate()).Div(hundred)
	threshold := c.cfg.MedicareAdditionalThreshold(status.String())
	if grossIncome.GreaterThan(threshold) {
		excess := grossIncome.Sub(threshold)
		tax = tax.Add(excess.Mul(c.cfg.MedicareAdditionalRate()).Div(hundred))
	}
	return tax
}

// EarlyWithdrawalPenalty applies the flat penalty rate to the early
// withdrawal amount.
func (c *Calculator) EarlyWithdrawalPenalty(earlyWithdrawal decimal.Decimal) decimal.Decimal {
	if earlyWithdrawal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return earlyWithdrawal.Mul(c.cfg.EarlyWithdrawalPenaltyRate()).Div(hundred)
}

// MaxBracketRate returns the top marginal rate in percent for the filing
// status, used by the settlement engine's over-withdrawal buffer.
func (c *Calculator) MaxBracketRate(status FilingStatus) decimal.Decimal {
	return c.cfg.MaxBracketRate(status.String())
}

// StandardDeduction returns the federal standard deduction for the
// filing status.
func (c *Calculator) StandardDeduction(status FilingStatus) decimal.Decimal {
	return c.cfg.StandardDeduction(status.String())
}
