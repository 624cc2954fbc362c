// Package interest provides the growth primitives applied to balances
// once per simulated year. All functions are pure and return the
// interest earned, not the new balance.
package interest

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Compound returns the interest earned on principal at the given annual
// rate (in percent), compounded compoundsPerPeriod times per period over
// periodsElapsed periods.
func Compound(principal, annualRatePct decimal.Decimal, compoundsPerPeriod, periodsElapsed int) decimal.Decimal {
	if compoundsPerPeriod <= 0 || periodsElapsed <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(compoundsPerPeriod))
	periodicRate := annualRatePct.Div(hundred).Div(n)
	factor := decimal.NewFromInt(1).Add(periodicRate).Pow(decimal.NewFromInt(int64(compoundsPerPeriod * periodsElapsed)))
	return principal.Mul(factor.Sub(decimal.NewFromInt(1)))
}

// Continuous returns the interest earned on principal with continuous
// compounding at the given annual rate (in percent) over periodsElapsed
// periods. The exponential is evaluated in float64; balances in this
// simulator are whole-dollar scale, where the conversion error is far
// below a cent.
func Continuous(principal, annualRatePct decimal.Decimal, periodsElapsed int) decimal.Decimal {
	if periodsElapsed <= 0 {
		return decimal.Zero
	}
	exponent := annualRatePct.InexactFloat64() / 100 * float64(periodsElapsed)
	factor := decimal.NewFromFloat(math.Exp(exponent))
	return principal.Mul(factor.Sub(decimal.NewFromInt(1)))
}
