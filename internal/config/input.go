package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SimulationInput is the YAML description of a simulation: the year
// range, optional scenario and config overrides, and the family being
// simulated.
type SimulationInput struct {
	StartYear int    `yaml:"start_year"`
	EndYear   int    `yaml:"end_year"`
	Scenario  string `yaml:"scenario,omitempty"`

	// ConfigOverrides are dotted-path overrides applied on top of the
	// built-in financial configuration (and scenario, if any).
	ConfigOverrides map[string]any `yaml:"config_overrides,omitempty"`

	FilingStatus string        `yaml:"filing_status,omitempty"`
	People       []PersonInput `yaml:"people"`
}

// PersonInput describes one family member and everything they own.
type PersonInput struct {
	Name           string          `yaml:"name"`
	Age            int             `yaml:"age"`
	RetirementAge  float64         `yaml:"retirement_age"`
	YearlySpending decimal.Decimal `yaml:"yearly_spending"`
	SpendingGrowth decimal.Decimal `yaml:"spending_growth,omitempty"`

	BankAccounts   []BankAccountInput  `yaml:"bank_accounts,omitempty"`
	Jobs           []JobInput          `yaml:"jobs,omitempty"`
	TraditionalIRA *IRAInput           `yaml:"traditional_ira,omitempty"`
	RothIRA        *IRAInput           `yaml:"roth_ira,omitempty"`
	Brokerage      *BrokerageInput     `yaml:"brokerage,omitempty"`
	HSA            *HSAInput           `yaml:"hsa,omitempty"`
	Plans529       []Plan529Input      `yaml:"plans_529,omitempty"`
	Pension        *PensionInput       `yaml:"pension,omitempty"`
	SocialSecurity *SocialSecInput     `yaml:"social_security,omitempty"`
	Annuity        *AnnuityInput       `yaml:"annuity,omitempty"`
	LifeInsurance  *LifeInsuranceInput `yaml:"life_insurance,omitempty"`
	Homes          []HomeInput         `yaml:"homes,omitempty"`
	Apartments     []ApartmentInput    `yaml:"apartments,omitempty"`
	CarLoans       []LoanInput         `yaml:"car_loans,omitempty"`
	StudentLoans   []StudentLoanInput  `yaml:"student_loans,omitempty"`
	CreditCards    []CreditCardInput   `yaml:"credit_cards,omitempty"`
}

type BankAccountInput struct {
	Name             string          `yaml:"name"`
	Balance          decimal.Decimal `yaml:"balance"`
	InterestRate     decimal.Decimal `yaml:"interest_rate,omitempty"`
	CompoundsPerYear int             `yaml:"compounds_per_year,omitempty"`
}

type JobInput struct {
	Company        string          `yaml:"company"`
	Role           string          `yaml:"role,omitempty"`
	Salary         decimal.Decimal `yaml:"salary"`
	SalaryIncrease decimal.Decimal `yaml:"salary_increase,omitempty"`
	Bonus          decimal.Decimal `yaml:"bonus,omitempty"`
	Plan401k       *Plan401kInput  `yaml:"plan_401k,omitempty"`
}

type Plan401kInput struct {
	PretaxBalance        decimal.Decimal `yaml:"pretax_balance"`
	PretaxContribPercent decimal.Decimal `yaml:"pretax_contrib_percent,omitempty"`
	RothBalance          decimal.Decimal `yaml:"roth_balance,omitempty"`
	RothContribPercent   decimal.Decimal `yaml:"roth_contrib_percent,omitempty"`
	AverageGrowth        decimal.Decimal `yaml:"average_growth,omitempty"`
	CompanyMatchPercent  decimal.Decimal `yaml:"company_match_percent,omitempty"`
}

type IRAInput struct {
	Balance            decimal.Decimal `yaml:"balance"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution,omitempty"`
	AverageGrowth      decimal.Decimal `yaml:"average_growth,omitempty"`
}

type BrokerageInput struct {
	Name          string          `yaml:"name,omitempty"`
	Balance       decimal.Decimal `yaml:"balance"`
	AverageGrowth decimal.Decimal `yaml:"average_growth,omitempty"`
}

type HSAInput struct {
	Balance            decimal.Decimal `yaml:"balance"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution,omitempty"`
	AverageGrowth      decimal.Decimal `yaml:"average_growth,omitempty"`
}

type Plan529Input struct {
	Beneficiary        string          `yaml:"beneficiary"`
	Balance            decimal.Decimal `yaml:"balance"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution,omitempty"`
	AverageGrowth      decimal.Decimal `yaml:"average_growth,omitempty"`
}

type PensionInput struct {
	Company       string          `yaml:"company"`
	AnnualBenefit decimal.Decimal `yaml:"annual_benefit"`
	StartAge      int             `yaml:"start_age"`
}

type SocialSecInput struct {
	StartAge      int             `yaml:"start_age"`
	AnnualBenefit decimal.Decimal `yaml:"annual_benefit"`
	COLA          decimal.Decimal `yaml:"cola,omitempty"`
}

type AnnuityInput struct {
	Value              decimal.Decimal `yaml:"value"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution,omitempty"`
	AverageGrowth      decimal.Decimal `yaml:"average_growth,omitempty"`
	AnnuitizeAtAge     int             `yaml:"annuitize_at_age,omitempty"`
	PayoutYears        int             `yaml:"payout_years,omitempty"`
}

type LifeInsuranceInput struct {
	Kind          string          `yaml:"kind"` // "term" or "whole"
	DeathBenefit  decimal.Decimal `yaml:"death_benefit"`
	YearlyPremium decimal.Decimal `yaml:"yearly_premium"`
	TermYears     int             `yaml:"term_years,omitempty"`
	CashValueRate decimal.Decimal `yaml:"cash_value_rate,omitempty"`
	CashGrowth    decimal.Decimal `yaml:"cash_growth,omitempty"`
}

type HomeInput struct {
	Name               string          `yaml:"name"`
	Value              decimal.Decimal `yaml:"value"`
	AppreciationRate   decimal.Decimal `yaml:"appreciation_rate,omitempty"`
	PropertyTaxPercent decimal.Decimal `yaml:"property_tax_percent,omitempty"`
	YearlyInsurance    decimal.Decimal `yaml:"yearly_insurance,omitempty"`
	YearlyMaintenance  decimal.Decimal `yaml:"yearly_maintenance,omitempty"`
	Mortgage           *LoanInput      `yaml:"mortgage,omitempty"`
}

type ApartmentInput struct {
	Name         string          `yaml:"name"`
	MonthlyRent  decimal.Decimal `yaml:"monthly_rent"`
	RentIncrease decimal.Decimal `yaml:"rent_increase,omitempty"`
}

type LoanInput struct {
	Description string          `yaml:"description,omitempty"`
	Amount      decimal.Decimal `yaml:"amount"`
	Rate        decimal.Decimal `yaml:"rate"`
	LengthYears int             `yaml:"length_years"`
}

type StudentLoanInput struct {
	Amount         decimal.Decimal `yaml:"amount"`
	Rate           decimal.Decimal `yaml:"rate"`
	LengthYears    int             `yaml:"length_years"`
	DefermentYears int             `yaml:"deferment_years,omitempty"`
}

type CreditCardInput struct {
	Issuer  string          `yaml:"issuer"`
	Balance decimal.Decimal `yaml:"balance,omitempty"`
	APR     decimal.Decimal `yaml:"apr"`
}

// InputParser loads and validates simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation input from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates simulation input YAML.
func (ip *InputParser) Parse(data []byte) (*SimulationInput, error) {
	var input SimulationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}

// ValidateInput validates the loaded simulation input.
func (ip *InputParser) ValidateInput(input *SimulationInput) error {
	if input.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	if input.EndYear < input.StartYear {
		return fmt.Errorf("end year %d precedes start year %d", input.EndYear, input.StartYear)
	}
	switch input.FilingStatus {
	case "", "single", "married_filing_jointly":
	default:
		return fmt.Errorf("unknown filing status %q", input.FilingStatus)
	}
	if input.FilingStatus == "married_filing_jointly" && len(input.People) < 2 {
		return fmt.Errorf("married filing jointly requires at least two people")
	}

	if len(input.People) == 0 {
		return fmt.Errorf("no people provided")
	}
	for i := range input.People {
		p := &input.People[i]
		if err := ip.validatePerson(p); err != nil {
			return fmt.Errorf("person %d (%s) validation failed: %w", i, p.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validatePerson(p *PersonInput) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if p.RetirementAge <= 0 {
		return fmt.Errorf("retirement age must be positive")
	}
	if p.YearlySpending.IsNegative() {
		return fmt.Errorf("yearly spending cannot be negative")
	}

	for _, b := range p.BankAccounts {
		if b.Balance.IsNegative() {
			return fmt.Errorf("bank account %s balance cannot be negative", b.Name)
		}
		if err := percentInRange("bank account interest rate", b.InterestRate); err != nil {
			return err
		}
	}
	for _, j := range p.Jobs {
		if j.Salary.IsNegative() {
			return fmt.Errorf("salary at %s cannot be negative", j.Company)
		}
		if j.Plan401k != nil {
			plan := j.Plan401k
			if plan.PretaxBalance.IsNegative() || plan.RothBalance.IsNegative() {
				return fmt.Errorf("401k balances at %s cannot be negative", j.Company)
			}
			if err := percentInRange("pretax contribution percent", plan.PretaxContribPercent); err != nil {
				return err
			}
			if err := percentInRange("roth contribution percent", plan.RothContribPercent); err != nil {
				return err
			}
			if err := percentInRange("company match percent", plan.CompanyMatchPercent); err != nil {
				return err
			}
		}
	}
	for _, ira := range []*IRAInput{p.TraditionalIRA, p.RothIRA} {
		if ira != nil && ira.Balance.IsNegative() {
			return fmt.Errorf("IRA balance cannot be negative")
		}
	}
	for _, h := range p.Homes {
		if h.Value.IsNegative() {
			return fmt.Errorf("home %s value cannot be negative", h.Name)
		}
		if h.Mortgage != nil && h.Mortgage.LengthYears <= 0 {
			return fmt.Errorf("mortgage on %s needs a positive length", h.Name)
		}
	}
	for _, l := range p.CarLoans {
		if l.LengthYears <= 0 {
			return fmt.Errorf("car loan needs a positive length")
		}
	}
	for _, l := range p.StudentLoans {
		if l.LengthYears <= 0 {
			return fmt.Errorf("student loan needs a positive length")
		}
	}
	if p.LifeInsurance != nil {
		switch p.LifeInsurance.Kind {
		case "term", "whole":
		default:
			return fmt.Errorf("life insurance kind must be term or whole, got %q", p.LifeInsurance.Kind)
		}
		if p.LifeInsurance.Kind == "term" && p.LifeInsurance.TermYears <= 0 {
			return fmt.Errorf("term life insurance needs a positive term")
		}
	}
	return nil
}

func percentInRange(name string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100", name)
	}
	return nil
}
