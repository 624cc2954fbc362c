package model

import "github.com/shopspring/decimal"

// Stat names reported by agents. Values are summed across all agents
// reporting the same name within a year.
const (
	StatGrossIncome       = "gross_income"
	StatBankBalance       = "bank_balance"
	Stat401kBalance       = "401k_balance"
	StatUsableBalance     = "usable_balance"
	StatDebt              = "debt"
	StatTaxesPaid         = "taxes_paid"
	StatTaxesFederal      = "taxes_federal"
	StatTaxesState        = "taxes_state"
	StatTaxesSS           = "taxes_ss"
	StatTaxesMedicare     = "taxes_medicare"
	StatMoneySpent        = "money_spent"
	StatRetirementContrib = "retirement_contrib"
	StatRetirementMatch   = "retirement_match"
	StatRequiredMinDist   = "required_min_distributions"
	StatHomeExpenses      = "home_expenses"
	StatInterestPaid      = "interest_paid"
	StatRentPaid          = "rent_paid"
)

// StatColumns is the canonical column order for reporting sinks.
var StatColumns = []string{
	StatGrossIncome,
	StatBankBalance,
	Stat401kBalance,
	StatUsableBalance,
	StatDebt,
	StatTaxesPaid,
	StatTaxesFederal,
	StatTaxesState,
	StatTaxesSS,
	StatTaxesMedicare,
	StatMoneySpent,
	StatRetirementContrib,
	StatRetirementMatch,
	StatRequiredMinDist,
	StatHomeExpenses,
	StatInterestPaid,
	StatRentPaid,
}

// StatTitles maps stat names to display titles.
var StatTitles = map[string]string{
	StatGrossIncome:       "Income",
	StatBankBalance:       "Bank Balance",
	Stat401kBalance:       "401k Balance",
	StatUsableBalance:     "Useable Balance",
	StatDebt:              "Debt",
	StatTaxesPaid:         "Taxes",
	StatTaxesFederal:      "Federal Taxes",
	StatTaxesState:        "State Taxes",
	StatTaxesSS:           "SS Taxes",
	StatTaxesMedicare:     "Medicare Taxes",
	StatMoneySpent:        "Spending",
	StatRetirementContrib: "401k Contrib",
	StatRetirementMatch:   "401k Match",
	StatRequiredMinDist:   "RMDs",
	StatHomeExpenses:      "Home Expenses",
	StatInterestPaid:      "Interest Paid",
	StatRentPaid:          "Rent Paid",
}

// Stats is one year's named numeric statistics.
type Stats map[string]decimal.Decimal

// Add accumulates a value into a named stat.
func (s Stats) Add(name string, value decimal.Decimal) {
	s[name] = s[name].Add(value)
}

// Get returns a stat value, zero when absent.
func (s Stats) Get(name string) decimal.Decimal {
	return s[name]
}

// StatReporter is implemented by agents that contribute statistics.
// ReportStats accumulates the agent's current values into the year row.
type StatReporter interface {
	ReportStats(Stats)
}

// YearStats is the flat per-year record exposed to reporting sinks.
type YearStats struct {
	Year   int
	Values Stats
}
