package analysis

import (
	"findash/pkg/core/model"
	"findash/pkg/core/risk"
)

// ValuationInputs is the full input set of the company-valuation page:
// operating assumptions plus the two DCF rates.
type ValuationInputs struct {
	Projection     model.ProjectionInput `json:"projection"`
	DiscountRate   float64               `json:"discount_rate"`
	TerminalGrowth float64               `json:"terminal_growth"`
}

// ValuationReport is everything the valuation page renders.
type ValuationReport struct {
	Projections []model.ProjectionYear `json:"projections"`
	DCF         model.DCFResult        `json:"dcf"`
}

// SensitivitySpec configures a one-way sensitivity sweep.
type SensitivitySpec struct {
	Target   risk.SensitivityTarget `json:"target"`
	RangeLow int                    `json:"range_low"`
	RangeHi  int                    `json:"range_high"`
}

// ScenarioSpec holds the non-base discount rates for scenario analysis.
// The base rate comes from RiskInputs.BaseDiscountRate.
type ScenarioSpec struct {
	WorstRate float64 `json:"worst_rate"`
	BestRate  float64 `json:"best_rate"`
}

// MonteCarloSpec configures the NPV simulation. Seed is optional: nil
// keeps the default non-reproducible behaviour, a value pins the draws
// for deterministic output.
type MonteCarloSpec struct {
	RateMean    float64 `json:"rate_mean"`
	RateStdDev  float64 `json:"rate_std_dev"`
	Simulations int     `json:"simulations"`
	Seed        *int64  `json:"seed,omitempty"`
}

// RiskInputs is the full input set of the risk-analysis page. The three
// analysis sections are optional; a nil spec skips that section.
type RiskInputs struct {
	FCFF             []float64        `json:"fcff"`
	BaseDiscountRate float64          `json:"base_discount_rate"`
	Sensitivity      *SensitivitySpec `json:"sensitivity,omitempty"`
	Scenario         *ScenarioSpec    `json:"scenario,omitempty"`
	MonteCarlo       *MonteCarloSpec  `json:"monte_carlo,omitempty"`
}

// MonteCarloSection pairs the aggregate statistics with the raw samples
// and a pre-binned histogram for charting.
type MonteCarloSection struct {
	Summary   risk.Summary        `json:"summary"`
	Histogram []risk.HistogramBin `json:"histogram"`
	Samples   []float64           `json:"samples"`
}

// RiskReport is everything the risk page renders. Sections not requested
// in RiskInputs are nil.
type RiskReport struct {
	BaseNPV     float64                 `json:"base_npv"`
	Sensitivity []risk.SensitivityPoint `json:"sensitivity,omitempty"`
	Scenarios   []risk.ScenarioRow      `json:"scenarios,omitempty"`
	MonteCarlo  *MonteCarloSection      `json:"monte_carlo,omitempty"`
}
