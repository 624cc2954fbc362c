package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/person"
)

// requiredMinDistribution returns the amount the IRS requires to be
// withdrawn from a pretax balance at the owner's age, or zero when the
// owner is below the distribution table.
func requiredMinDistribution(owner *person.Person, pretaxBalance decimal.Decimal) decimal.Decimal {
	if pretaxBalance.LessThanOrEqual(zero) {
		return zero
	}
	period := owner.Config().RMDDistributionPeriod(owner.Age)
	if period.LessThanOrEqual(zero) {
		return zero
	}
	return pretaxBalance.Div(period)
}

// forceDistribution moves a required distribution out of a pretax
// balance: the caller deducts it, this deposits the proceeds and
// records the taxable income. Emits an event the first time.
func forceDistribution(owner *person.Person, accountName string, amount decimal.Decimal, announced *bool) error {
	if amount.LessThanOrEqual(zero) {
		return nil
	}
	if err := owner.DepositToBankAccount(amount); err != nil {
		return fmt.Errorf("required distribution from %s: %w", accountName, err)
	}
	owner.TaxableIncome = owner.TaxableIncome.Add(amount)
	if !*announced {
		*announced = true
		owner.Model().Events.Addf("%s began required minimum distributions from %s", owner.Name, accountName)
	}
	return nil
}
