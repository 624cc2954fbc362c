package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const validInput = `
start_year: 2024
end_year: 2060
filing_status: single
people:
  - name: Alice
    age: 30
    retirement_age: 65
    yearly_spending: 24000
    spending_growth: 2
    bank_accounts:
      - name: Checking
        balance: 10000
        interest_rate: 0.5
    jobs:
      - company: Acme
        role: Engineer
        salary: 90000
        salary_increase: 3
        plan_401k:
          pretax_balance: 50000
          pretax_contrib_percent: 6
          average_growth: 5
          company_match_percent: 50
    homes:
      - name: Condo
        value: 300000
        appreciation_rate: 3
        property_tax_percent: 1.2
        yearly_insurance: 1200
        mortgage:
          amount: 240000
          rate: 4.5
          length_years: 30
`

func TestParseValidInput(t *testing.T) {
	parser := NewInputParser()
	input, err := parser.Parse([]byte(validInput))
	require.NoError(t, err)

	assert.Equal(t, 2024, input.StartYear)
	assert.Equal(t, 2060, input.EndYear)
	require.Len(t, input.People, 1)

	alice := input.People[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, 30, alice.Age)
	assert.Equal(t, 65.0, alice.RetirementAge)
	require.Len(t, alice.Jobs, 1)
	require.NotNil(t, alice.Jobs[0].Plan401k)
	assert.Equal(t, "50000", alice.Jobs[0].Plan401k.PretaxBalance.String())
	require.Len(t, alice.Homes, 1)
	require.NotNil(t, alice.Homes[0].Mortgage)
	assert.Equal(t, 30, alice.Homes[0].Mortgage.LengthYears)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validInput), 0644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, input.StartYear)

	_, err = parser.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("start_year: [not closed"))
	assert.Error(t, err)
}

func TestValidateInput(t *testing.T) {
	base := func() *SimulationInput {
		return &SimulationInput{
			StartYear: 2024,
			EndYear:   2030,
			People: []PersonInput{
				{Name: "Bob", Age: 40, RetirementAge: 65},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SimulationInput)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(in *SimulationInput) {},
			wantErr: "",
		},
		{
			name:    "missing start year",
			mutate:  func(in *SimulationInput) { in.StartYear = 0 },
			wantErr: "start year",
		},
		{
			name:    "end before start",
			mutate:  func(in *SimulationInput) { in.EndYear = 2000 },
			wantErr: "precedes",
		},
		{
			name:    "no people",
			mutate:  func(in *SimulationInput) { in.People = nil },
			wantErr: "no people",
		},
		{
			name:    "unknown filing status",
			mutate:  func(in *SimulationInput) { in.FilingStatus = "separately" },
			wantErr: "filing status",
		},
		{
			name:    "joint filing needs two people",
			mutate:  func(in *SimulationInput) { in.FilingStatus = "married_filing_jointly" },
			wantErr: "at least two",
		},
		{
			name:    "missing name",
			mutate:  func(in *SimulationInput) { in.People[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "bad age",
			mutate:  func(in *SimulationInput) { in.People[0].Age = 0 },
			wantErr: "age must be positive",
		},
		{
			name: "negative bank balance",
			mutate: func(in *SimulationInput) {
				in.People[0].BankAccounts = []BankAccountInput{{Name: "x", Balance: mustDecimal("-1")}}
			},
			wantErr: "cannot be negative",
		},
		{
			name: "contribution percent out of range",
			mutate: func(in *SimulationInput) {
				in.People[0].Jobs = []JobInput{{
					Company: "Acme",
					Salary:  mustDecimal("100"),
					Plan401k: &Plan401kInput{
						PretaxContribPercent: mustDecimal("150"),
					},
				}}
			},
			wantErr: "between 0 and 100",
		},
		{
			name: "term life needs a term",
			mutate: func(in *SimulationInput) {
				in.People[0].LifeInsurance = &LifeInsuranceInput{Kind: "term"}
			},
			wantErr: "positive term",
		},
		{
			name: "unknown insurance kind",
			mutate: func(in *SimulationInput) {
				in.People[0].LifeInsurance = &LifeInsuranceInput{Kind: "universal"}
			},
			wantErr: "term or whole",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(in)
			err := parser.ValidateInput(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
