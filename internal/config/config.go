// Package config supplies the financial configuration consumed by the
// tax calculator and rate-dependent entities: bracket tables, deductions,
// FICA rates, retirement ages, RMD divisors, and contribution limits.
// Values are looked up by dotted key path with default fallback; named
// scenario overlays substitute alternate tables without touching the
// consumers.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Bracket is one row of a progressive tax table. Rate is a percentage.
type Bracket struct {
	Start decimal.Decimal
	End   decimal.Decimal
	Rate  decimal.Decimal
}

// RMDRow maps an age to its IRS distribution period divisor.
type RMDRow struct {
	Age    int
	Period decimal.Decimal
}

// FinancialConfig holds the configuration tree. It is an explicit object
// injected into calculators and entities, never global state.
type FinancialConfig struct {
	data     map[string]any
	scenario string
}

// New returns a FinancialConfig populated with the embedded defaults.
func New() *FinancialConfig {
	return &FinancialConfig{data: defaults()}
}

// Scenario returns the name of the applied scenario overlay, if any.
func (c *FinancialConfig) Scenario() string {
	return c.scenario
}

// Get returns the value at a dotted key path, or def when the path does
// not resolve.
func (c *FinancialConfig) Get(key string, def any) any {
	current := any(c.data)
	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[k]
		if !ok {
			return def
		}
	}
	return current
}

// Set stores a value at a dotted key path, creating intermediate maps as
// needed.
func (c *FinancialConfig) Set(key string, value any) {
	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Update deep-merges the given overrides into the configuration.
func (c *FinancialConfig) Update(overrides map[string]any) {
	mergeMaps(c.data, overrides)
}

// ApplyScenario overlays a predefined scenario by name.
func (c *FinancialConfig) ApplyScenario(name string) error {
	overrides, err := ScenarioOverrides(name)
	if err != nil {
		return err
	}
	c.scenario = name
	c.Update(overrides)
	return nil
}

// LoadOverlayFile merges a YAML overlay file into the configuration.
// Callers treat a failure as recoverable: the embedded defaults remain
// in effect.
func (c *FinancialConfig) LoadOverlayFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config overlay %s: %w", filename, err)
	}
	var overrides map[string]any
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse config overlay %s: %w", filename, err)
	}
	c.Update(overrides)
	return nil
}

func mergeMaps(base, update map[string]any) {
	for k, v := range update {
		if bm, ok := base[k].(map[string]any); ok {
			if um, ok := v.(map[string]any); ok {
				mergeMaps(bm, um)
				continue
			}
		}
		base[k] = v
	}
}

// GetDecimal returns a decimal value at a dotted key path.
func (c *FinancialConfig) GetDecimal(key string, def decimal.Decimal) decimal.Decimal {
	d, ok := toDecimal(c.Get(key, nil))
	if !ok {
		return def
	}
	return d
}

// GetFloat returns a float value at a dotted key path.
func (c *FinancialConfig) GetFloat(key string, def float64) float64 {
	d, ok := toDecimal(c.Get(key, nil))
	if !ok {
		return def
	}
	return d.InexactFloat64()
}

// FederalBrackets returns the federal bracket table for a filing status
// key ("single" or "married_filing_jointly").
func (c *FinancialConfig) FederalBrackets(statusKey string) []Bracket {
	rows := c.Get("tax.federal.tax_brackets."+statusKey, nil)
	brackets := coerceBrackets(rows)
	if len(brackets) == 0 {
		brackets = coerceBrackets(defaults()["tax"].(map[string]any)["federal"].(map[string]any)["tax_brackets"].(map[string]any)[statusKey])
	}
	return brackets
}

// MaxBracketRate returns the top marginal rate (percent) for a filing
// status key.
func (c *FinancialConfig) MaxBracketRate(statusKey string) decimal.Decimal {
	brackets := c.FederalBrackets(statusKey)
	if len(brackets) == 0 {
		return decimal.Zero
	}
	return brackets[len(brackets)-1].Rate
}

// StandardDeduction returns the federal standard deduction for a filing
// status key.
func (c *FinancialConfig) StandardDeduction(statusKey string) decimal.Decimal {
	return c.GetDecimal("tax.federal.standard_deduction."+statusKey, decimal.Zero)
}

// StateTaxRate returns the flat state income tax rate in percent.
func (c *FinancialConfig) StateTaxRate() decimal.Decimal {
	return c.GetDecimal("tax.state.tax_rate", decimal.NewFromInt(6))
}

// SocialSecurityRate returns the social security tax rate in percent.
func (c *FinancialConfig) SocialSecurityRate() decimal.Decimal {
	return c.GetDecimal("tax.fica.social_security_rate", decimal.NewFromFloat(6.2))
}

// SocialSecurityWageBase returns the maximum income subject to social
// security tax.
func (c *FinancialConfig) SocialSecurityWageBase() decimal.Decimal {
	return c.GetDecimal("tax.fica.social_security_wage_base", decimal.NewFromInt(160200))
}

// SocialSecurityTaxablePortion returns the fraction of a social
// security benefit treated as taxable income.
func (c *FinancialConfig) SocialSecurityTaxablePortion() decimal.Decimal {
	return c.GetDecimal("tax.social_security_taxable_portion", decimal.NewFromFloat(0.85))
}

// MedicareRate returns the base medicare tax rate in percent.
func (c *FinancialConfig) MedicareRate() decimal.Decimal {
	return c.GetDecimal("tax.fica.medicare_rate", decimal.NewFromFloat(1.45))
}

// MedicareAdditionalRate returns the additional medicare surtax rate in
// percent.
func (c *FinancialConfig) MedicareAdditionalRate() decimal.Decimal {
	return c.GetDecimal("tax.fica.medicare_additional_rate", decimal.NewFromFloat(0.9))
}

// MedicareAdditionalThreshold returns the income threshold above which
// the medicare surtax applies for a filing status key.
func (c *FinancialConfig) MedicareAdditionalThreshold(statusKey string) decimal.Decimal {
	return c.GetDecimal("tax.fica.medicare_additional_threshold."+statusKey, decimal.NewFromInt(200000))
}

// EarlyWithdrawalPenaltyRate returns the early-withdrawal penalty rate
// in percent.
func (c *FinancialConfig) EarlyWithdrawalPenaltyRate() decimal.Decimal {
	return c.GetDecimal("tax.early_withdrawal_penalty_rate", decimal.NewFromInt(10))
}

// FederalRetirementAge returns the age at which retirement accounts
// become usable without penalty.
func (c *FinancialConfig) FederalRetirementAge() float64 {
	return c.GetFloat("retirement.federal_retirement_age", 59.5)
}

// RMDDistributionPeriod returns the IRS distribution period divisor for
// the given age, or zero when the age is below the table.
func (c *FinancialConfig) RMDDistributionPeriod(age int) decimal.Decimal {
	rows := coerceRMDTable(c.Get("retirement.rmd.distribution_period", nil))
	if len(rows) == 0 || age < rows[0].Age {
		return decimal.Zero
	}
	if age > rows[len(rows)-1].Age {
		return rows[len(rows)-1].Period
	}
	for _, row := range rows {
		if row.Age == age {
			return row.Period
		}
	}
	return decimal.Zero
}

// Job401kContributionLimit returns the annual 401k contribution limit
// for the given age, including the catch-up allowance.
func (c *FinancialConfig) Job401kContributionLimit(age int) decimal.Decimal {
	return c.contributionLimit("job_401k", age)
}

// IRAContributionLimit returns the annual IRA contribution limit for the
// given age, including the catch-up allowance.
func (c *FinancialConfig) IRAContributionLimit(age int) decimal.Decimal {
	return c.contributionLimit("ira", age)
}

// HSAContributionLimit returns the annual HSA contribution limit for the
// given age, including the catch-up allowance.
func (c *FinancialConfig) HSAContributionLimit(age int) decimal.Decimal {
	return c.contributionLimit("hsa", age)
}

func (c *FinancialConfig) contributionLimit(account string, age int) decimal.Decimal {
	base := c.GetDecimal("retirement.contribution_limits."+account+".base", decimal.Zero)
	catchUpAge := int(c.GetFloat("retirement.contribution_limits."+account+".catch_up_age", 50))
	if age >= catchUpAge {
		return base.Add(c.GetDecimal("retirement.contribution_limits."+account+".catch_up", decimal.Zero))
	}
	return base
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// coerceBrackets accepts either the typed default table or the row
// triples a YAML overlay produces.
func coerceBrackets(v any) []Bracket {
	switch rows := v.(type) {
	case []Bracket:
		return rows
	case []any:
		brackets := make([]Bracket, 0, len(rows))
		for _, row := range rows {
			cells, ok := row.([]any)
			if !ok || len(cells) != 3 {
				return nil
			}
			start, ok1 := toDecimal(cells[0])
			end, ok2 := toDecimal(cells[1])
			rate, ok3 := toDecimal(cells[2])
			if !ok1 || !ok2 || !ok3 {
				return nil
			}
			brackets = append(brackets, Bracket{Start: start, End: end, Rate: rate})
		}
		return brackets
	default:
		return nil
	}
}

func coerceRMDTable(v any) []RMDRow {
	switch rows := v.(type) {
	case []RMDRow:
		return rows
	case []any:
		table := make([]RMDRow, 0, len(rows))
		for _, row := range rows {
			cells, ok := row.([]any)
			if !ok || len(cells) != 2 {
				return nil
			}
			age, ok1 := toDecimal(cells[0])
			period, ok2 := toDecimal(cells[1])
			if !ok1 || !ok2 {
				return nil
			}
			table = append(table, RMDRow{Age: int(age.IntPart()), Period: period})
		}
		return table
	default:
		return nil
	}
}
