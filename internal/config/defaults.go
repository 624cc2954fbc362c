package config

import "github.com/shopspring/decimal"

// bracketCap stands in for the open-ended top bracket.
const bracketCap = 999999999

func bracket(start, end, ratePct float64) Bracket {
	return Bracket{
		Start: decimal.NewFromFloat(start),
		End:   decimal.NewFromFloat(end),
		Rate:  decimal.NewFromFloat(ratePct),
	}
}

func rmdRow(age int, period float64) RMDRow {
	return RMDRow{Age: age, Period: decimal.NewFromFloat(period)}
}

// defaults builds the embedded default configuration tree. Bracket and
// threshold values follow the published 2022 tables; a scenario overlay
// or YAML file substitutes alternates without changing any consumer.
func defaults() map[string]any {
	return map[string]any{
		"tax": map[string]any{
			"federal": map[string]any{
				"standard_deduction": map[string]any{
					"single":                 12950.0,
					"married_filing_jointly": 25900.0,
				},
				"tax_brackets": map[string]any{
					"single": []Bracket{
						bracket(0, 10275, 10),
						bracket(10276, 41775, 12),
						bracket(41776, 89075, 22),
						bracket(89076, 170050, 24),
						bracket(170051, 215950, 32),
						bracket(215951, 539900, 35),
						bracket(539901, bracketCap, 37),
					},
					"married_filing_jointly": []Bracket{
						bracket(0, 20550, 10),
						bracket(20551, 83550, 12),
						bracket(83551, 178150, 22),
						bracket(178151, 340100, 24),
						bracket(340101, 431900, 32),
						bracket(431901, 647850, 35),
						bracket(647851, bracketCap, 37),
					},
				},
			},
			"state": map[string]any{
				"tax_rate": 6.0,
			},
			"fica": map[string]any{
				"social_security_rate":      6.2,
				"social_security_wage_base": 160200.0,
				"medicare_rate":             1.45,
				"medicare_additional_rate":  0.9,
				"medicare_additional_threshold": map[string]any{
					"single":                 200000.0,
					"married_filing_jointly": 250000.0,
				},
			},
			"early_withdrawal_penalty_rate":   10.0,
			"social_security_taxable_portion": 0.85,
		},
		"retirement": map[string]any{
			"federal_retirement_age": 59.5,
			"rmd": map[string]any{
				// IRS uniform lifetime table.
				"distribution_period": []RMDRow{
					rmdRow(70, 27.4), rmdRow(71, 26.5), rmdRow(72, 25.6),
					rmdRow(73, 24.7), rmdRow(74, 23.8), rmdRow(75, 22.9),
					rmdRow(76, 22), rmdRow(77, 21.2), rmdRow(78, 20.3),
					rmdRow(79, 19.5), rmdRow(80, 18.7), rmdRow(81, 17.9),
					rmdRow(82, 17.1), rmdRow(83, 16.3), rmdRow(84, 15.5),
					rmdRow(85, 14.8), rmdRow(86, 14.1), rmdRow(87, 13.4),
					rmdRow(88, 12.7), rmdRow(89, 12), rmdRow(90, 11.4),
					rmdRow(91, 10.8), rmdRow(92, 10.2), rmdRow(93, 9.6),
					rmdRow(94, 9.1), rmdRow(95, 8.6), rmdRow(96, 8.1),
					rmdRow(97, 7.6), rmdRow(98, 7.1), rmdRow(99, 6.7),
					rmdRow(100, 6.3), rmdRow(101, 5.9), rmdRow(102, 5.5),
					rmdRow(103, 5.2), rmdRow(104, 4.9), rmdRow(105, 4.5),
					rmdRow(106, 4.2), rmdRow(107, 3.9), rmdRow(108, 3.7),
					rmdRow(109, 3.4), rmdRow(110, 3.1), rmdRow(111, 2.9),
					rmdRow(112, 2.6), rmdRow(113, 2.4), rmdRow(114, 2.1),
					rmdRow(115, 1.9),
				},
			},
			"contribution_limits": map[string]any{
				"job_401k": map[string]any{
					"base":         20500.0,
					"catch_up":     6500.0,
					"catch_up_age": 50.0,
				},
				"ira": map[string]any{
					"base":         6500.0,
					"catch_up":     1000.0,
					"catch_up_age": 50.0,
				},
				"hsa": map[string]any{
					"base":         3850.0,
					"catch_up":     1000.0,
					"catch_up_age": 55.0,
				},
			},
		},
	}
}
