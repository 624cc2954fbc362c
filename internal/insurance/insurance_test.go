package insurance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

// insBank implements the bank-account contract for premium and payout
// flows.
type insBank struct{ balance decimal.Decimal }

func (b *insBank) Balance() decimal.Decimal { return b.balance }

func (b *insBank) Deposit(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	b.balance = b.balance.Add(amount)
	return true
}

func (b *insBank) Withdraw(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, b.balance)
	b.balance = b.balance.Sub(taken)
	return taken
}

func newInsured(t *testing.T, age int, bankBalance decimal.Decimal) (*person.Person, *insBank) {
	t.Helper()
	m := model.New(2024, 2060)
	f := person.NewFamily(m, config.New())
	p := person.New(f, "Ann", age, 65, decimal.Zero)
	bank := &insBank{balance: bankBalance}
	m.Registries.BankAccounts.Register(p, bank)
	return p, bank
}

func TestSocialSecurityStartsAtStartAge(t *testing.T) {
	p, bank := newInsured(t, 66, decimal.Zero)
	ss := NewSocialSecurity(p, 67, decimal.NewFromInt(30000), decimal.NewFromInt(2))

	require.NoError(t, ss.PreStep())
	assert.True(t, bank.Balance().IsZero(), "not yet eligible")

	require.NoError(t, p.PreStep()) // turns 67
	require.NoError(t, ss.PreStep())

	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(30000)))
	// Up to 85% of the benefit is taxable.
	assert.True(t, p.TaxableIncome.Equal(decimal.NewFromInt(25500)), "got %s", p.TaxableIncome)

	events := p.Model().Events.Events()
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, "social security")
}

func TestSocialSecurityTaxablePortionIsConfigurable(t *testing.T) {
	m := model.New(2024, 2060)
	cfg := config.New()
	cfg.Set("tax.social_security_taxable_portion", 0.5)
	f := person.NewFamily(m, cfg)
	p := person.New(f, "Ann", 70, 65, decimal.Zero)
	m.Registries.BankAccounts.Register(p, &insBank{})
	ss := NewSocialSecurity(p, 67, decimal.NewFromInt(30000), decimal.Zero)

	require.NoError(t, ss.PreStep())

	assert.True(t, p.TaxableIncome.Equal(decimal.NewFromInt(15000)),
		"got %s", p.TaxableIncome)
}

func TestSocialSecurityCOLAAppliesAfterStart(t *testing.T) {
	p, _ := newInsured(t, 70, decimal.Zero)
	ss := NewSocialSecurity(p, 67, decimal.NewFromInt(30000), decimal.NewFromInt(2))

	// COLA before the first payment is a no-op.
	require.NoError(t, ss.PostStep())
	assert.True(t, ss.Benefit.Equal(decimal.NewFromInt(30000)))

	require.NoError(t, ss.PreStep())
	require.NoError(t, ss.PostStep())
	assert.True(t, ss.Benefit.Equal(decimal.NewFromInt(30600)))
}

func TestTermLifeExpires(t *testing.T) {
	p, bank := newInsured(t, 40, decimal.NewFromInt(10000))
	policy := NewTermLife(p, decimal.NewFromInt(500000), decimal.NewFromInt(800), 2)

	require.True(t, policy.Active())
	require.NoError(t, policy.PreStep())
	require.NoError(t, policy.PreStep())
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(8400)))

	// The term has run out.
	assert.False(t, policy.Active())
	require.NoError(t, policy.PreStep())
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(8400)))
}

func TestLifePolicyLapsesOnMissedPremium(t *testing.T) {
	p, bank := newInsured(t, 40, decimal.NewFromInt(500))
	policy := NewTermLife(p, decimal.NewFromInt(500000), decimal.NewFromInt(800), 20)

	require.NoError(t, policy.PreStep())

	assert.False(t, policy.Active())
	// The partial premium is still gone.
	assert.True(t, bank.Balance().IsZero())

	events := p.Model().Events.Events()
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, "lapsed")
}

func TestWholeLifeCashValueAndSurrender(t *testing.T) {
	p, bank := newInsured(t, 40, decimal.NewFromInt(50000))
	policy := NewWholeLife(p, decimal.NewFromInt(250000),
		decimal.NewFromInt(5000), decimal.NewFromInt(40), decimal.Zero)

	require.NoError(t, policy.PreStep())
	require.NoError(t, policy.PreStep())

	// 40% of each premium is credited to cash value.
	assert.True(t, policy.CashValue().Equal(decimal.NewFromInt(4000)))
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(40000)))

	received, err := policy.Surrender()
	require.NoError(t, err)
	assert.True(t, received.Equal(decimal.NewFromInt(4000)))
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(44000)))
	assert.False(t, policy.Active())
	assert.True(t, policy.CashValue().IsZero())
}

func TestAnnuityAccumulates(t *testing.T) {
	p, bank := newInsured(t, 50, decimal.NewFromInt(20000))
	a := NewAnnuity(p, decimal.NewFromInt(100000), decimal.NewFromInt(10000), decimal.Zero)

	require.NoError(t, a.PreStep())

	assert.True(t, a.Value().Equal(decimal.NewFromInt(110000)))
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(10000)))
}

func TestAnnuityPayoutWithExclusionRatio(t *testing.T) {
	p, bank := newInsured(t, 65, decimal.Zero)
	a := NewAnnuity(p, decimal.NewFromInt(80000), decimal.Zero, decimal.Zero)
	// Grow the contract above basis so part of each payment is earnings.
	a.value = decimal.NewFromInt(100000)

	a.Annuitize(10)
	require.True(t, a.Annuitized())
	assert.True(t, a.AnnualPayout().Equal(decimal.NewFromInt(10000)))

	require.NoError(t, a.PreStep())

	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(10000)))
	// 8000 of each payment is return of basis; 2000 is taxable.
	assert.True(t, p.TaxableIncome.Equal(decimal.NewFromInt(2000)), "got %s", p.TaxableIncome)

	// Annuitizing again is a no-op.
	a.Annuitize(5)
	assert.True(t, a.AnnualPayout().Equal(decimal.NewFromInt(10000)))
}

func TestAnnuityPayoutStopsWhenExhausted(t *testing.T) {
	p, bank := newInsured(t, 65, decimal.Zero)
	a := NewAnnuity(p, decimal.NewFromInt(20000), decimal.Zero, decimal.Zero)

	a.Annuitize(2)
	require.NoError(t, a.PreStep())
	require.NoError(t, a.PreStep())
	require.NoError(t, a.PreStep())

	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(20000)))
	assert.True(t, a.Value().IsZero())
}

func TestAnnuitySurrenderBeforeRetirementIsPenalized(t *testing.T) {
	p, bank := newInsured(t, 50, decimal.Zero)
	a := NewAnnuity(p, decimal.NewFromInt(60000), decimal.Zero, decimal.Zero)
	a.value = decimal.NewFromInt(75000)

	received, err := a.Surrender()
	require.NoError(t, err)

	assert.True(t, received.Equal(decimal.NewFromInt(75000)))
	assert.True(t, bank.Balance().Equal(decimal.NewFromInt(75000)))
	assert.True(t, p.TaxableIncome.Equal(decimal.NewFromInt(15000)))
	assert.True(t, p.EarlyWithdrawal.Equal(decimal.NewFromInt(15000)))
}
