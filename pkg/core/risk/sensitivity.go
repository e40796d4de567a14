// Package risk implements the NPV risk-analysis toolkit shared by both
// dashboards: one-way sensitivity sweeps, worst/base/best scenario
// comparison and Monte Carlo summary statistics. It is a thin layer over
// the model package and carries no state of its own.
package risk

import (
	"fmt"

	"findash/pkg/core/model"
)

// SensitivityTarget selects the input varied by a sensitivity sweep.
type SensitivityTarget string

const (
	TargetFCFF         SensitivityTarget = "FCFF"
	TargetDiscountRate SensitivityTarget = "DiscountRate"
)

// SensitivityPoint is one row of a sensitivity table.
type SensitivityPoint struct {
	ChangePct int     `json:"change_pct"`
	NPV       float64 `json:"npv"`
}

// Sensitivity sweeps the selected target over an inclusive integer
// percent range and recomputes NPV at each step.
//
// For TargetFCFF every cash flow is scaled by (1 + change/100); for
// TargetDiscountRate the base rate is scaled the same way. A range
// containing 0 therefore always includes the unmodified base case.
// lo > hi yields an empty table.
func Sensitivity(fcff []float64, baseRate float64, target SensitivityTarget, lo, hi int) ([]SensitivityPoint, error) {
	var points []SensitivityPoint

	for change := lo; change <= hi; change++ {
		factor := 1 + float64(change)/100

		var npv float64
		var err error
		switch target {
		case TargetFCFF:
			scaled := make([]float64, len(fcff))
			for i, f := range fcff {
				scaled[i] = f * factor
			}
			npv, err = model.NPV(scaled, baseRate)
		case TargetDiscountRate:
			npv, err = model.NPV(fcff, baseRate*factor)
		default:
			return nil, fmt.Errorf("unknown sensitivity target %q", target)
		}
		if err != nil {
			return nil, fmt.Errorf("sensitivity at %+d%%: %w", change, err)
		}

		points = append(points, SensitivityPoint{ChangePct: change, NPV: npv})
	}

	return points, nil
}
