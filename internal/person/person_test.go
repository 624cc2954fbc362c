package person

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/model"
)

// testBank is a minimal liquid account for wiring people in tests.
type testBank struct {
	balance decimal.Decimal
}

func (b *testBank) Balance() decimal.Decimal { return b.balance }

func (b *testBank) Deposit(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	b.balance = b.balance.Add(amount)
	return true
}

func (b *testBank) Withdraw(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, b.balance)
	b.balance = b.balance.Sub(taken)
	return taken
}

// testRetirement is a minimal dual-balance retirement account.
type testRetirement struct {
	pretax decimal.Decimal
	roth   decimal.Decimal
}

func (r *testRetirement) PretaxBalance() decimal.Decimal { return r.pretax }

func (r *testRetirement) RothBalance() decimal.Decimal { return r.roth }

func (r *testRetirement) DeductPretax(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, r.pretax)
	r.pretax = r.pretax.Sub(taken)
	return amount.Sub(taken)
}

func (r *testRetirement) DeductRoth(amount decimal.Decimal) decimal.Decimal {
	taken := decimal.Min(amount, r.roth)
	r.roth = r.roth.Sub(taken)
	return amount.Sub(taken)
}

// testJob records retirement.
type testJob struct {
	retired bool
}

func (j *testJob) Retire()       { j.retired = true }
func (j *testJob) Retired() bool { return j.retired }

func newTestFamily(t *testing.T) *Family {
	t.Helper()
	m := model.New(2024, 2040)
	return NewFamily(m, config.New())
}

func TestBillsPaidFromBank(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.NewFromInt(12000))
	bank := &testBank{balance: decimal.NewFromInt(20000)}
	f.Model().Registries.BankAccounts.Register(p, bank)

	require.NoError(t, p.Step())

	// No taxable income: bills come straight out of the bank.
	assert.True(t, bank.balance.Equal(decimal.NewFromInt(8000)),
		"got %s", bank.balance)
	assert.True(t, p.Debt.IsZero())
}

func TestUnpayableBillsBecomeDebt(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.NewFromInt(30000))
	bank := &testBank{balance: decimal.NewFromInt(20000)}
	f.Model().Registries.BankAccounts.Register(p, bank)

	require.NoError(t, p.Step())

	assert.True(t, bank.balance.IsZero())
	assert.True(t, p.Debt.Equal(decimal.NewFromInt(10000)),
		"got %s", p.Debt)
}

func TestDebtPaidDownNextYear(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	bank := &testBank{}
	f.Model().Registries.BankAccounts.Register(p, bank)
	p.Debt = decimal.NewFromInt(5000)

	bank.Deposit(decimal.NewFromInt(7000))
	require.NoError(t, p.Step())

	assert.True(t, p.Debt.IsZero())
	assert.True(t, bank.balance.Equal(decimal.NewFromInt(2000)),
		"got %s", bank.balance)
}

func TestShortfallForcesPretaxWithdrawal(t *testing.T) {
	f := newTestFamily(t)
	// Age 60 is past the penalty age, so no early-withdrawal penalty
	// muddies the arithmetic.
	p := New(f, "Ann", 60, 65, decimal.NewFromInt(25000))
	bank := &testBank{balance: decimal.NewFromInt(20000)}
	retirement := &testRetirement{pretax: decimal.NewFromInt(100000)}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	require.NoError(t, p.Step())

	withdrawn := decimal.NewFromInt(100000).Sub(retirement.pretax)
	// The withdrawal covers the 5000 shortfall plus its own marginal
	// taxes plus the max-bracket buffer.
	assert.True(t, withdrawn.GreaterThan(decimal.NewFromInt(5000)),
		"withdrew only %s", withdrawn)
	assert.True(t, withdrawn.LessThan(decimal.NewFromInt(7000)),
		"withdrew too much: %s", withdrawn)
	assert.True(t, p.Debt.IsZero(), "debt %s", p.Debt)
	// The buffer over-withdraws slightly; the excess stays in the bank.
	assert.True(t, bank.balance.GreaterThanOrEqual(decimal.Zero))
}

func TestWithdrawalRecordedAsTaxableIncome(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 60, 65, decimal.Zero)
	bank := &testBank{}
	retirement := &testRetirement{pretax: decimal.NewFromInt(50000)}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	withdrawn, err := p.WithdrawFromPretax(decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.True(t, withdrawn.Equal(decimal.NewFromInt(10000)))
	assert.True(t, p.TaxableIncome.Equal(decimal.NewFromInt(10000)))
	assert.True(t, p.EarlyWithdrawal.IsZero(), "no penalty past the federal retirement age")
	assert.True(t, bank.balance.Equal(decimal.NewFromInt(10000)))
}

func TestEarlyWithdrawalAccumulates(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	bank := &testBank{}
	retirement := &testRetirement{pretax: decimal.NewFromInt(50000)}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	_, err := p.WithdrawFromPretax(decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.True(t, p.EarlyWithdrawal.Equal(decimal.NewFromInt(10000)))
}

func TestWithdrawalClampsToBalance(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 60, 65, decimal.Zero)
	bank := &testBank{}
	retirement := &testRetirement{pretax: decimal.NewFromInt(3000)}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	withdrawn, err := p.WithdrawFromPretax(decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.True(t, withdrawn.Equal(decimal.NewFromInt(3000)))
	assert.True(t, retirement.pretax.IsZero())
}

func TestWithdrawalWithoutBankAccountFails(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 60, 65, decimal.Zero)
	retirement := &testRetirement{pretax: decimal.NewFromInt(3000)}
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	_, err := p.WithdrawFromPretax(decimal.NewFromInt(1000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bank account")
}

func TestPayBillsDrawsBankThenRoth(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	bank := &testBank{balance: decimal.NewFromInt(100)}
	retirement := &testRetirement{
		pretax: decimal.NewFromInt(9999),
		roth:   decimal.NewFromInt(500),
	}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.RetirementAccounts.Register(p, retirement)

	remainder := p.PayBills(decimal.NewFromInt(300))

	assert.True(t, remainder.IsZero())
	assert.True(t, bank.balance.IsZero())
	assert.True(t, retirement.roth.Equal(decimal.NewFromInt(300)),
		"roth got %s", retirement.roth)
	// Pretax balances are never used for bills.
	assert.True(t, retirement.pretax.Equal(decimal.NewFromInt(9999)))
}

func TestDeductCoveredByBalanceLeavesNothingUnmet(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	bank := &testBank{balance: decimal.NewFromInt(1000)}
	f.Model().Registries.BankAccounts.Register(p, bank)

	remainder := p.DeductFromBankAccounts(decimal.NewFromInt(150))

	assert.True(t, remainder.IsZero(), "unmet %s", remainder)
	assert.True(t, bank.balance.Equal(decimal.NewFromInt(850)),
		"got %s", bank.balance)

	// Overdrawing returns only the uncovered portion.
	remainder = p.DeductFromBankAccounts(decimal.NewFromInt(2000))

	assert.True(t, remainder.Equal(decimal.NewFromInt(1150)),
		"unmet %s", remainder)
	assert.True(t, bank.balance.IsZero())
}

func TestBankAccountsDrainInRegistrationOrder(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	first := &testBank{balance: decimal.NewFromInt(100)}
	second := &testBank{balance: decimal.NewFromInt(100)}
	f.Model().Registries.BankAccounts.Register(p, first)
	f.Model().Registries.BankAccounts.Register(p, second)

	remainder := p.DeductFromBankAccounts(decimal.NewFromInt(150))

	assert.True(t, remainder.IsZero())
	assert.True(t, first.balance.IsZero())
	assert.True(t, second.balance.Equal(decimal.NewFromInt(50)))
}

func TestJobsRetireAtRetirementAge(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 64, 65, decimal.Zero)
	bank := &testBank{balance: decimal.NewFromInt(1000)}
	job := &testJob{}
	f.Model().Registries.BankAccounts.Register(p, bank)
	f.Model().Registries.Jobs.Register(p, job)

	require.NoError(t, p.Step())
	assert.False(t, job.retired, "too young to retire")

	require.NoError(t, p.PreStep()) // turns 65
	require.NoError(t, p.Step())
	assert.True(t, job.retired)
	assert.True(t, p.Retired())
}

func TestPostStepClearsAccumulators(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)
	p.TaxableIncome = decimal.NewFromInt(50000)
	p.EarlyWithdrawal = decimal.NewFromInt(1000)

	require.NoError(t, p.PostStep())

	assert.True(t, p.TaxableIncome.IsZero())
	assert.True(t, p.EarlyWithdrawal.IsZero())
}

func TestPersonTaxesRequireSingleFiling(t *testing.T) {
	f := newTestFamily(t)
	a := New(f, "Ann", 40, 65, decimal.Zero)
	b := New(f, "Ben", 41, 65, decimal.Zero)
	a.Marry(b)

	_, err := a.TaxesDue(decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single")
}

func TestFamilyTaxesRequireJointFiling(t *testing.T) {
	f := newTestFamily(t)
	New(f, "Ann", 40, 65, decimal.Zero)

	_, err := f.TaxesDue(decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joint")
}

func TestMarriageSwitchesFilingStatus(t *testing.T) {
	f := newTestFamily(t)
	a := New(f, "Ann", 40, 65, decimal.Zero)
	b := New(f, "Ben", 41, 65, decimal.Zero)

	a.Marry(b)

	events := f.Model().Events.Events()
	require.NotEmpty(t, events)
	assert.Contains(t, events[len(events)-1].Message, "married")
	assert.Equal(t, a.FilingStatus(), b.FilingStatus())
}

func TestFamilyJointSettlement(t *testing.T) {
	f := newTestFamily(t)
	a := New(f, "Ann", 60, 70, decimal.NewFromInt(15000))
	b := New(f, "Ben", 61, 70, decimal.NewFromInt(15000))
	a.Marry(b)

	bankA := &testBank{balance: decimal.NewFromInt(10000)}
	bankB := &testBank{}
	retirementB := &testRetirement{pretax: decimal.NewFromInt(200000)}
	f.Model().Registries.BankAccounts.Register(a, bankA)
	f.Model().Registries.BankAccounts.Register(b, bankB)
	f.Model().Registries.RetirementAccounts.Register(b, retirementB)

	// Family settles joint filers; person steps skip settlement.
	require.NoError(t, f.Step())
	require.NoError(t, a.Step())
	require.NoError(t, b.Step())

	// The combined 30000 spending outruns the 10000 bank balance, so
	// Ben's pretax balance funds the difference.
	assert.True(t, retirementB.pretax.LessThan(decimal.NewFromInt(200000)))
	assert.True(t, a.Debt.IsZero(), "debt %s", a.Debt)
	assert.True(t, b.Debt.IsZero())
}

func TestFamilyWithdrawSpansMembers(t *testing.T) {
	f := newTestFamily(t)
	a := New(f, "Ann", 60, 70, decimal.Zero)
	b := New(f, "Ben", 61, 70, decimal.Zero)
	a.Marry(b)

	bankA := &testBank{}
	bankB := &testBank{}
	retA := &testRetirement{pretax: decimal.NewFromInt(1000)}
	retB := &testRetirement{pretax: decimal.NewFromInt(5000)}
	f.Model().Registries.BankAccounts.Register(a, bankA)
	f.Model().Registries.BankAccounts.Register(b, bankB)
	f.Model().Registries.RetirementAccounts.Register(a, retA)
	f.Model().Registries.RetirementAccounts.Register(b, retB)

	withdrawn, err := f.WithdrawFromPretax(decimal.NewFromInt(4000))
	require.NoError(t, err)

	assert.True(t, withdrawn.Equal(decimal.NewFromInt(4000)))
	// Members are drained in order.
	assert.True(t, retA.pretax.IsZero())
	assert.True(t, retB.pretax.Equal(decimal.NewFromInt(2000)),
		"got %s", retB.pretax)
}

func TestSpendingIncreaseAndOneTimeReset(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.NewFromInt(10000))
	p.Spending.YearlyIncrease = decimal.NewFromInt(10)
	p.Spending.AddExpense(decimal.NewFromInt(500))

	assert.True(t, p.Spending.YearlySpending().Equal(decimal.NewFromInt(10500)))

	require.NoError(t, p.Spending.PostStep())

	// Base grew 10%, the one-time expense is gone.
	assert.True(t, p.Spending.YearlySpending().Equal(decimal.NewFromInt(11000)),
		"got %s", p.Spending.YearlySpending())
}

func TestFederalDeductionsUseLargerOfStandardOrItemized(t *testing.T) {
	f := newTestFamily(t)
	p := New(f, "Ann", 40, 65, decimal.Zero)

	standard := f.Taxes().StandardDeduction(p.FilingStatus())
	assert.True(t, p.FederalDeductions().Equal(standard))
}
