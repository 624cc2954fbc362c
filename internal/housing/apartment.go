package housing

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/person"
)

// Apartment is a rented residence with a monthly rent that increases
// yearly.
type Apartment struct {
	model.Lifecycle

	Name           string
	MonthlyRent    decimal.Decimal
	YearlyIncrease decimal.Decimal // percent

	owner *person.Person
}

// NewApartment creates the apartment and registers it with the owner's
// rental registry.
func NewApartment(owner *person.Person, name string, monthlyRent, yearlyIncreasePct decimal.Decimal) *Apartment {
	a := &Apartment{
		Name:           name,
		MonthlyRent:    monthlyRent,
		YearlyIncrease: yearlyIncreasePct,
		owner:          owner,
	}
	m := owner.Model()
	m.AddAgent(a)
	m.Registries.Apartments.Register(owner, a)
	return a
}

// YearlyRent returns this year's rent.
func (a *Apartment) YearlyRent() decimal.Decimal {
	return a.MonthlyRent.Mul(decimal.NewFromInt(12))
}

// Step applies the yearly rent increase.
func (a *Apartment) Step() error {
	a.MonthlyRent = a.MonthlyRent.Add(a.MonthlyRent.Mul(a.YearlyIncrease).Div(hundred))
	return nil
}
