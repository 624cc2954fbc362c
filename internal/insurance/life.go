package insurance

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
	"github.com/lifesim/life-simulator/pkg/interest"
)

// PolicyKind distinguishes term policies, which expire, from whole-life
// policies, which build cash value.
type PolicyKind int

const (
	TermLife PolicyKind = iota
	WholeLife
)

func (k PolicyKind) String() string {
	if k == WholeLife {
		return "whole life"
	}
	return "term life"
}

// LifeInsurance is a policy with a yearly premium drawn from the bank.
// A missed premium lapses the policy. Whole-life policies credit part
// of each premium to a growing cash value that can be surrendered.
type LifeInsurance struct {
	model.Lifecycle

	Kind          PolicyKind
	DeathBenefit  decimal.Decimal
	YearlyPremium decimal.Decimal
	TermYears     int             // term policies only
	CashValueRate decimal.Decimal // whole life: percent of premium credited
	CashGrowth    decimal.Decimal // whole life: annual percent

	owner     *person.Person
	cashValue decimal.Decimal
	lapsed    bool
}

// NewTermLife creates a term policy as a model agent.
func NewTermLife(owner *person.Person, deathBenefit, yearlyPremium decimal.Decimal, termYears int) *LifeInsurance {
	p := &LifeInsurance{
		Kind:          TermLife,
		DeathBenefit:  deathBenefit,
		YearlyPremium: yearlyPremium,
		TermYears:     termYears,
		owner:         owner,
	}
	owner.Model().AddAgent(p)
	return p
}

// NewWholeLife creates a whole-life policy as a model agent.
func NewWholeLife(owner *person.Person, deathBenefit, yearlyPremium, cashValueRatePct, cashGrowthPct decimal.Decimal) *LifeInsurance {
	p := &LifeInsurance{
		Kind:          WholeLife,
		DeathBenefit:  deathBenefit,
		YearlyPremium: yearlyPremium,
		CashValueRate: cashValueRatePct,
		CashGrowth:    cashGrowthPct,
		owner:         owner,
	}
	owner.Model().AddAgent(p)
	return p
}

// Active reports whether the policy is still in force.
func (p *LifeInsurance) Active() bool {
	if p.lapsed {
		return false
	}
	if p.Kind == TermLife && p.TermYears <= 0 {
		return false
	}
	return true
}

// CashValue returns the accumulated cash value of a whole-life policy.
func (p *LifeInsurance) CashValue() decimal.Decimal { return p.cashValue }

// Surrender lapses the policy and deposits any cash value into the
// owner's bank account. Returns the amount received.
func (p *LifeInsurance) Surrender() (decimal.Decimal, error) {
	value := p.cashValue
	p.cashValue = zero
	p.lapsed = true
	if value.GreaterThan(zero) {
		if err := p.owner.DepositToBankAccount(value); err != nil {
			return zero, err
		}
		p.owner.Model().Events.Addf("%s surrendered a %s policy for %s", p.owner.Name, p.Kind, value.StringFixed(2))
	}
	return value, nil
}

// PreStep pays the premium from the bank. A premium the bank cannot
// fully cover lapses the policy.
func (p *LifeInsurance) PreStep() error {
	if !p.Active() {
		return nil
	}
	if p.Kind == TermLife {
		p.TermYears--
	}

	if p.Kind == WholeLife {
		p.cashValue = p.cashValue.Add(interest.Continuous(p.cashValue, p.CashGrowth, 1))
	}

	unfunded := p.owner.DeductFromBankAccounts(p.YearlyPremium)
	if unfunded.GreaterThan(zero) {
		p.lapsed = true
		p.owner.Model().Events.Addf("%s's %s policy lapsed on a missed premium", p.owner.Name, p.Kind)
		return nil
	}
	if p.Kind == WholeLife {
		p.cashValue = p.cashValue.Add(p.YearlyPremium.Mul(p.CashValueRate).Div(hundred))
	}
	return nil
}
