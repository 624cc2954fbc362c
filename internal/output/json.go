package output

import (
	"encoding/json"

	"github.com/lifesim/life-simulator/internal/model"
)

// JSONFormatter renders the full report as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonYear struct {
	Year  int               `json:"year"`
	Stats map[string]string `json:"stats"`
}

type jsonEvent struct {
	Year    int    `json:"year"`
	Message string `json:"message"`
}

type jsonReport struct {
	StartYear int         `json:"start_year"`
	EndYear   int         `json:"end_year"`
	Years     []jsonYear  `json:"years"`
	Events    []jsonEvent `json:"events"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	out := jsonReport{
		StartYear: report.StartYear,
		EndYear:   report.EndYear,
		Years:     make([]jsonYear, 0, len(report.Years)),
		Events:    make([]jsonEvent, 0, len(report.Events)),
	}
	for _, year := range report.Years {
		row := jsonYear{Year: year.Year, Stats: make(map[string]string, len(model.StatColumns))}
		for _, col := range model.StatColumns {
			row.Stats[col] = FormatCents(year.Values.Get(col))
		}
		out.Years = append(out.Years, row)
	}
	for _, ev := range report.Events {
		out.Events = append(out.Events, jsonEvent{Year: ev.Year, Message: ev.Message})
	}
	return json.MarshalIndent(out, "", "  ")
}
