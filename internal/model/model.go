// Package model provides the simulation clock, the three-phase agent
// lifecycle, owner-keyed registries, the event log, and per-year
// statistics collection. The simulation is a deterministic sequential
// fold over years: given identical configuration and registration
// order, repeated runs produce identical statistics.
package model

import "fmt"

// Agent is the three-phase annual lifecycle every simulated entity
// implements. For each year the orchestrator runs PreStep for all
// agents, then Step for all, then PostStep for all; this strict phase
// separation is what lets RMDs and income be fully posted before any
// settlement computes taxes.
type Agent interface {
	// PreStep posts state that must be visible before settlement:
	// age increments, income, RMD forcing, premium payments.
	PreStep() error
	// Step runs the entity's main annual logic: settlement for
	// people and families, growth and distributions for accounts.
	Step() error
	// PostStep resets year-scoped accumulators.
	PostStep() error
}

// Lifecycle is an embeddable no-op Agent implementation. Entities embed
// it and override only the phases they need.
type Lifecycle struct{}

func (Lifecycle) PreStep() error  { return nil }
func (Lifecycle) Step() error     { return nil }
func (Lifecycle) PostStep() error { return nil }

// Model is the simulation clock and orchestrator.
type Model struct {
	StartYear int
	EndYear   int
	Year      int

	Events     *EventLog
	Registries *Registries
	Logger     Logger

	agents         []Agent
	simulatedYears []int
	history        []YearStats
}

// New creates a model covering [startYear, endYear].
func New(startYear, endYear int) *Model {
	m := &Model{
		StartYear:  startYear,
		EndYear:    endYear,
		Year:       startYear,
		Registries: NewRegistries(),
		Logger:     NopLogger{},
	}
	m.Events = &EventLog{model: m}
	return m
}

// SetLogger sets the model logger. A nil logger restores the no-op
// default.
func (m *Model) SetLogger(l Logger) {
	if l == nil {
		m.Logger = NopLogger{}
		return
	}
	m.Logger = l
}

// AddAgent registers an agent. Agents run in registration order within
// each phase.
func (m *Model) AddAgent(a Agent) {
	m.agents = append(m.agents, a)
}

// Step advances the model one year: it records the year, snapshots
// statistics for the current state, runs the three phases across all
// agents, and increments the clock. An agent error aborts the year and
// is returned; statistics for prior years remain intact.
func (m *Model) Step() error {
	m.simulatedYears = append(m.simulatedYears, m.Year)
	m.collectStats()
	m.Logger.Debugf("simulating year %d with %d agents", m.Year, len(m.agents))

	for _, a := range m.agents {
		if err := a.PreStep(); err != nil {
			return fmt.Errorf("pre-step failed in year %d: %w", m.Year, err)
		}
	}
	for _, a := range m.agents {
		if err := a.Step(); err != nil {
			return fmt.Errorf("step failed in year %d: %w", m.Year, err)
		}
	}
	for _, a := range m.agents {
		if err := a.PostStep(); err != nil {
			return fmt.Errorf("post-step failed in year %d: %w", m.Year, err)
		}
	}

	m.Year++
	return nil
}

// Run steps the model through the full configured year range.
func (m *Model) Run() error {
	for range m.YearRange() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// YearRange returns the configured simulation years in order.
func (m *Model) YearRange() []int {
	years := make([]int, 0, m.EndYear-m.StartYear+1)
	for y := m.StartYear; y <= m.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// SimulatedYears returns the years stepped so far.
func (m *Model) SimulatedYears() []int {
	return m.simulatedYears
}

// StatsHistory returns the collected per-year statistics.
func (m *Model) StatsHistory() []YearStats {
	return m.history
}

func (m *Model) collectStats() {
	row := YearStats{Year: m.Year, Values: Stats{}}
	for _, a := range m.agents {
		if reporter, ok := a.(StatReporter); ok {
			reporter.ReportStats(row.Values)
		}
	}
	m.history = append(m.history, row)
}
