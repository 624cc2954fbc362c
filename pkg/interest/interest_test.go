package interest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompound(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		compounds int
		periods   int
		expected  string
	}{
		{
			name:      "yearly compounding",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromInt(5),
			compounds: 1,
			periods:   1,
			expected:  "50",
		},
		{
			name:      "two years yearly",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromInt(5),
			compounds: 1,
			periods:   2,
			expected:  "102.5",
		},
		{
			name:      "zero rate",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.Zero,
			compounds: 12,
			periods:   1,
			expected:  "0",
		},
		{
			name:      "zero principal",
			principal: decimal.Zero,
			rate:      decimal.NewFromInt(5),
			compounds: 12,
			periods:   1,
			expected:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compound(tt.principal, tt.rate, tt.compounds, tt.periods)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCompoundMonthlyBeatsYearly(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	rate := decimal.NewFromInt(6)

	yearly := Compound(principal, rate, 1, 1)
	monthly := Compound(principal, rate, 12, 1)

	assert.True(t, monthly.GreaterThan(yearly),
		"monthly compounding %s should exceed yearly %s", monthly, yearly)
}

func TestCompoundInvalidPeriods(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	rate := decimal.NewFromInt(5)

	assert.True(t, Compound(principal, rate, 0, 1).IsZero())
	assert.True(t, Compound(principal, rate, 12, 0).IsZero())
}

func TestContinuous(t *testing.T) {
	// 1000 at 5% continuous for one year: 1000*(e^0.05 - 1) ~ 51.27
	got := Continuous(decimal.NewFromInt(1000), decimal.NewFromInt(5), 1)
	assert.InDelta(t, 51.27, got.InexactFloat64(), 0.01)

	// Continuous compounding beats any discrete schedule.
	discrete := Compound(decimal.NewFromInt(1000), decimal.NewFromInt(5), 365, 1)
	assert.True(t, got.GreaterThan(discrete))
}

func TestContinuousZeroPeriods(t *testing.T) {
	got := Continuous(decimal.NewFromInt(1000), decimal.NewFromInt(5), 0)
	assert.True(t, got.IsZero())
}
