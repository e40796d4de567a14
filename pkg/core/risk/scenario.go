package risk

import (
	"fmt"

	"findash/pkg/core/model"
)

// ScenarioRow is one line of the worst/base/best comparison table.
type ScenarioRow struct {
	Scenario     string  `json:"scenario"`
	DiscountRate float64 `json:"discount_rate"`
	NPV          float64 `json:"npv"`
}

// Scenarios values the schedule under the worst, base and best discount
// rates and returns the three rows in that order. The labels follow the
// dashboard convention; no ordering of the rates themselves is assumed
// (a "worst" rate below the "best" one is simply reported as given).
func Scenarios(fcff []float64, worstRate, baseRate, bestRate float64) ([]ScenarioRow, error) {
	cases := []struct {
		label string
		rate  float64
	}{
		{"Worst Case", worstRate},
		{"Base Case", baseRate},
		{"Best Case", bestRate},
	}

	rows := make([]ScenarioRow, 0, len(cases))
	for _, c := range cases {
		npv, err := model.NPV(fcff, c.rate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.label, err)
		}
		rows = append(rows, ScenarioRow{Scenario: c.label, DiscountRate: c.rate, NPV: npv})
	}
	return rows, nil
}
