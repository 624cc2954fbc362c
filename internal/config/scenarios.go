package config

import (
	"fmt"
	"sort"
)

// Predefined scenario overlays for common economic and regulatory
// conditions. Each overlay is a set of configuration overrides merged on
// top of the defaults; the calculators themselves never change.
var scenarios = map[string]map[string]any{
	// Lower growth, higher taxes.
	"recession": {
		"tax": map[string]any{
			"state": map[string]any{"tax_rate": 7.0},
		},
		"growth": map[string]any{
			"default_rate_adjustment": -2.0,
		},
	},
	// Higher rates across the board.
	"high_inflation": {
		"tax": map[string]any{
			"fica": map[string]any{
				"social_security_wage_base": 175000.0,
			},
		},
		"growth": map[string]any{
			"default_rate_adjustment": 1.5,
		},
	},
	// Potential tax reform: flatter brackets, larger deduction.
	"tax_reform": {
		"tax": map[string]any{
			"federal": map[string]any{
				"standard_deduction": map[string]any{
					"single":                 15000.0,
					"married_filing_jointly": 30000.0,
				},
				"tax_brackets": map[string]any{
					"single": []Bracket{
						bracket(0, 12000, 10),
						bracket(12001, 45000, 12),
						bracket(45001, 95000, 22),
						bracket(95001, 180000, 24),
						bracket(180001, 230000, 32),
						bracket(230001, 550000, 35),
						bracket(550001, bracketCap, 37),
					},
					"married_filing_jointly": []Bracket{
						bracket(0, 24000, 10),
						bracket(24001, 90000, 12),
						bracket(90001, 190000, 22),
						bracket(190001, 360000, 24),
						bracket(360001, 460000, 32),
						bracket(460001, 660000, 35),
						bracket(660001, bracketCap, 37),
					},
				},
			},
			"state": map[string]any{"tax_rate": 7.5},
		},
	},
	// Favorable tax environment.
	"low_tax": {
		"tax": map[string]any{
			"federal": map[string]any{
				"tax_brackets": map[string]any{
					"single": []Bracket{
						bracket(0, 15000, 8),
						bracket(15001, 50000, 10),
						bracket(50001, 100000, 18),
						bracket(100001, 200000, 22),
						bracket(200001, 250000, 28),
						bracket(250001, 600000, 32),
						bracket(600001, bracketCap, 35),
					},
					"married_filing_jointly": []Bracket{
						bracket(0, 30000, 8),
						bracket(30001, 100000, 10),
						bracket(100001, 200000, 18),
						bracket(200001, 400000, 22),
						bracket(400001, 500000, 28),
						bracket(500001, 700000, 32),
						bracket(700001, bracketCap, 35),
					},
				},
			},
			"state": map[string]any{"tax_rate": 3.0},
		},
	},
}

// ScenarioOverrides returns the overlay for a predefined scenario.
func ScenarioOverrides(name string) (map[string]any, error) {
	overrides, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found, available: %v", name, ListScenarios())
	}
	return overrides, nil
}

// ListScenarios returns the names of all predefined scenarios.
func ListScenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
