package integration

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/model"
	"github.com/lifesim/life-simulator/internal/output"
	"github.com/lifesim/life-simulator/internal/sim"
	"github.com/lifesim/life-simulator/internal/tax"
)

func loadHousehold(t *testing.T) *config.SimulationInput {
	t.Helper()
	input, err := config.NewInputParser().LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)
	return input
}

func TestFullSimulationRun(t *testing.T) {
	input := loadHousehold(t)
	s, err := sim.Build(input)
	require.NoError(t, err)

	require.NoError(t, s.Model.Run())

	// Thirty-one simulated years, one stats row each.
	history := s.Model.StatsHistory()
	require.Len(t, history, 31)
	assert.Equal(t, 2024, history[0].Year)
	assert.Equal(t, 2054, history[30].Year)
	assert.Equal(t, 2055, s.Model.Year)

	// Both filers are married for the whole run.
	require.Len(t, s.Family.Members, 2)
	assert.Equal(t, tax.MarriedFilingJointly, s.Family.FilingStatus())

	// Working years post income and withhold taxes. Stats snapshot at
	// the top of each year, so the first working year's flows appear in
	// the second row.
	second := history[1].Values
	assert.True(t, second.Get(model.StatGrossIncome).GreaterThan(decimal.NewFromInt(200000)),
		"two salaries and a bonus")
	assert.True(t, second.Get(model.StatTaxesPaid).GreaterThan(decimal.Zero))
	assert.True(t, second.Get(model.StatRetirementContrib).GreaterThan(decimal.Zero))

	// Both members hit retirement age during the run and the events
	// narrate it.
	var retirements int
	for _, ev := range s.Model.Events.Events() {
		if ev.Message == "Avery retired from Initech" || ev.Message == "Jordan retired from Globex" {
			retirements++
		}
	}
	assert.Equal(t, 2, retirements)
}

func TestSimulationIsDeterministic(t *testing.T) {
	run := func() []model.YearStats {
		s, err := sim.Build(loadHousehold(t))
		require.NoError(t, err)
		require.NoError(t, s.Model.Run())
		return s.Model.StatsHistory()
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Year, second[i].Year)
		for _, col := range model.StatColumns {
			assert.True(t, first[i].Values.Get(col).Equal(second[i].Values.Get(col)),
				"year %d stat %s differs", first[i].Year, col)
		}
	}
}

func TestFormattersRenderFullRun(t *testing.T) {
	s, err := sim.Build(loadHousehold(t))
	require.NoError(t, err)
	require.NoError(t, s.Model.Run())
	report := output.NewReport(s.Model)

	for _, name := range output.FormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, name)
		data, err := f.Format(report)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestScenarioChangesOutcome(t *testing.T) {
	baseline, err := sim.Build(loadHousehold(t))
	require.NoError(t, err)
	require.NoError(t, baseline.Model.Run())

	input := loadHousehold(t)
	input.Scenario = "tax_reform"
	reformed, err := sim.Build(input)
	require.NoError(t, err)
	require.NoError(t, reformed.Model.Run())

	year := 5
	base := baseline.Model.StatsHistory()[year].Values.Get(model.StatTaxesPaid)
	reform := reformed.Model.StatsHistory()[year].Values.Get(model.StatTaxesPaid)
	assert.False(t, base.Equal(reform), "different bracket law must change taxes paid")
}
