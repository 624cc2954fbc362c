package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lifesim/life-simulator/internal/model"
)

// tableStats is the column subset shown in the console table; the full
// set goes to CSV and JSON.
var tableStats = []string{
	model.StatGrossIncome,
	model.StatBankBalance,
	model.Stat401kBalance,
	model.StatDebt,
	model.StatTaxesPaid,
	model.StatMoneySpent,
}

// TableFormatter renders a year-by-year console table followed by the
// event log.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "LIFE SIMULATION %d-%d\n", report.StartYear, report.EndYear)
	fmt.Fprintln(&buf, strings.Repeat("=", 22))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s", "Year")
	for _, col := range tableStats {
		fmt.Fprintf(&buf, "%16s", model.StatTitles[col])
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, strings.Repeat("-", 6+16*len(tableStats)))

	for _, year := range report.Years {
		fmt.Fprintf(&buf, "%-6d", year.Year)
		for _, col := range tableStats {
			fmt.Fprintf(&buf, "%16s", FormatCurrency(year.Values.Get(col)))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Events) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "EVENTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 6))
		for _, ev := range report.Events {
			fmt.Fprintf(&buf, "%d: %s\n", ev.Year, ev.Message)
		}
	}
	return buf.Bytes(), nil
}
