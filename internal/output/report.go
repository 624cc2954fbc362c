// Package output renders simulation results. Formatters are pluggable
// and pure: each takes a Report and returns bytes, with no side effects
// beyond deterministic formatting.
package output

import (
	"fmt"
	"os"
	"time"

	"github.com/lifesim/life-simulator/internal/model"
)

// Report is the renderable result of a simulation run.
type Report struct {
	StartYear int
	EndYear   int
	Years     []model.YearStats
	Events    []model.Event
}

// NewReport captures a finished model's history.
func NewReport(m *model.Model) *Report {
	return &Report{
		StartYear: m.StartYear,
		EndYear:   m.EndYear,
		Years:     m.StatsHistory(),
		Events:    m.Events.Events(),
	}
}

// Formatter renders a report to bytes.
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                     { return ff.ID }

var builtInFormatters = []Formatter{
	TableFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil when the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to filename.
// An empty filename picks a timestamped name with an extension matching
// the formatter. Returns the filename written.
func WriteFormatted(f Formatter, report *Report, filename string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("life_simulation_%s.%s",
			time.Now().Format("20060102_150405"), fileExtension(f.Name()))
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

func fileExtension(formatterName string) string {
	if formatterName == "table" {
		return "txt"
	}
	return formatterName
}
