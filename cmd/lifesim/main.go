// Command lifesim runs a year-by-year personal finance simulation from
// a YAML input file and renders the results as a table, CSV, or JSON.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lifesim/life-simulator/internal/config"
	"github.com/lifesim/life-simulator/internal/output"
	"github.com/lifesim/life-simulator/internal/sim"
)

var (
	inputFile  string
	scenario   string
	format     string
	outputFile string
	verbose    bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Year-by-year personal finance life simulator",
	Long: `lifesim steps a household through the years of a financial plan:
income, taxes, retirement accounts, housing, debt, and benefits, with
a full settlement of bills and withdrawals each simulated year.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation from a YAML input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}
		if scenario != "" {
			input.Scenario = scenario
		}

		simulation, err := sim.Build(input)
		if err != nil {
			return err
		}
		simulation.Model.SetLogger(logrusAdapter{log})

		log.WithFields(logrus.Fields{
			"start_year": input.StartYear,
			"end_year":   input.EndYear,
			"scenario":   simulation.Config.Scenario(),
			"people":     len(input.People),
		}).Info("starting simulation")

		if err := simulation.Model.Run(); err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unknown format %q, available: %v", format, output.FormatterNames())
		}
		report := output.NewReport(simulation.Model)
		if outputFile != "" {
			written, err := output.WriteFormatted(formatter, report, outputFile)
			if err != nil {
				return err
			}
			log.WithField("file", written).Info("report written")
			return nil
		}
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in economic scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range config.ListScenarios() {
			fmt.Println(name)
		}
	},
}

// logrusAdapter bridges the model's logger interface to logrus.
type logrusAdapter struct {
	l *logrus.Logger
}

func (a logrusAdapter) Debugf(format string, args ...any) { a.l.Debugf(format, args...) }
func (a logrusAdapter) Infof(format string, args ...any)  { a.l.Infof(format, args...) }
func (a logrusAdapter) Warnf(format string, args ...any)  { a.l.Warnf(format, args...) }
func (a logrusAdapter) Errorf(format string, args ...any) { a.l.Errorf(format, args...) }

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "simulation input YAML file (required)")
	runCmd.Flags().StringVarP(&scenario, "scenario", "s", "", "economic scenario overriding the input file")
	runCmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, csv, or json")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")
	_ = runCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
