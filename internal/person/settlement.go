package person

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/tax"
)

// settler is the surface the yearly settlement needs: whoever is paying
// (a single person or a joint-filing family) exposes liquid funds,
// taxes as a function of extra income, the ability to liquidate pretax
// balances, and its top marginal rate.
type settler interface {
	BankBalance() decimal.Decimal
	TaxesDue(additionalIncome decimal.Decimal) (tax.TaxesDue, error)
	WithdrawFromPretax(amount decimal.Decimal) (decimal.Decimal, error)
	MaxBracketRate() decimal.Decimal
}

// settlePretaxWithdrawal resolves the circular dependency between taxes
// owed and the withdrawal needed to pay them. Withdrawing from pretax
// balances raises taxable income, which raises taxes, which raises the
// amount that must be withdrawn. Rather than iterating to a fixed
// point, it makes two passes and over-withdraws slightly:
//
//  1. Compute taxes on income as it stands and the shortfall of
//     bills-plus-taxes over liquid funds.
//  2. Compute the marginal tax the shortfall itself would add, then pad
//     the withdrawal by that marginal tax times the top bracket rate.
//
// The buffer guarantees the withdrawal covers its own tax consequences;
// the excess simply lands in the bank account. Returns the amount
// withdrawn and the final tax bill.
func settlePretaxWithdrawal(e settler, billsExceptTaxes decimal.Decimal) (decimal.Decimal, tax.TaxesDue, error) {
	taxes, err := e.TaxesDue(zero)
	if err != nil {
		return zero, tax.TaxesDue{}, err
	}

	obligations := billsExceptTaxes.Add(taxes.Total())
	shortfall := decimal.Max(obligations.Sub(e.BankBalance()), zero)
	if shortfall.LessThanOrEqual(zero) {
		return zero, taxes, nil
	}

	withShortfall, err := e.TaxesDue(shortfall)
	if err != nil {
		return zero, tax.TaxesDue{}, err
	}
	marginal := withShortfall.Total().Sub(taxes.Total())
	buffer := marginal.Mul(e.MaxBracketRate()).Div(hundred)

	withdrawal := shortfall.Add(marginal).Add(buffer)
	withdrawn, err := e.WithdrawFromPretax(withdrawal)
	if err != nil {
		return zero, tax.TaxesDue{}, err
	}

	if withdrawn.GreaterThan(zero) {
		taxes, err = e.TaxesDue(zero)
		if err != nil {
			return zero, tax.TaxesDue{}, err
		}
	}
	return withdrawn, taxes, nil
}
