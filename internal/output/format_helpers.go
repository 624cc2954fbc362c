package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/pkg/money"
)

// FormatCurrency renders a decimal as "$1,234,567" with thousands
// separators, rounding to whole dollars. Negative values render as
// "-$123".
func FormatCurrency(d decimal.Decimal) string {
	m := money.FromDecimal(d.Abs()).RoundDollars()
	s := m.Decimal.String()

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// FormatCents renders a decimal fixed to cents, without a currency
// prefix. CSV and JSON sinks use this form.
func FormatCents(d decimal.Decimal) string {
	return money.FromDecimal(d).String()
}
