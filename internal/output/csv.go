package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifesim/life-simulator/internal/model"
)

// CSVFormatter writes one row per simulated year with the standard
// statistic columns.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year"}
	for _, col := range model.StatColumns {
		header = append(header, model.StatTitles[col])
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, year := range report.Years {
		row := []string{strconv.Itoa(year.Year)}
		for _, col := range model.StatColumns {
			row = append(row, FormatCents(year.Values.Get(col)))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
