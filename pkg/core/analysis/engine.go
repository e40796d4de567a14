package analysis

import (
	"fmt"
	"math/rand"

	"findash/pkg/core/model"
	"findash/pkg/core/risk"
)

// HistogramBins is the bin count used for the Monte Carlo NPV histogram.
const HistogramBins = 50

// Engine turns a complete input set into a complete report, one call per
// user action. It holds no state between calls: every invocation is
// independent, so callers recompute by resubmitting the full inputs.
type Engine struct{}

// NewEngine creates a new instance of the engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Valuation runs the projection and the DCF in one pass, feeding the
// projected FCF column straight into the valuation.
func (e *Engine) Valuation(in ValuationInputs) (*ValuationReport, error) {
	projections := model.ProjectFinancials(in.Projection)

	dcf, err := model.ValueEnterprise(model.FreeCashFlows(projections), in.DiscountRate, in.TerminalGrowth)
	if err != nil {
		return nil, fmt.Errorf("dcf valuation: %w", err)
	}

	return &ValuationReport{Projections: projections, DCF: dcf}, nil
}

// Risk computes the base NPV and whichever analysis sections the inputs
// request. Requested sections fail the whole call on error; the report
// is never partially populated.
func (e *Engine) Risk(in RiskInputs) (*RiskReport, error) {
	baseNPV, err := model.NPV(in.FCFF, in.BaseDiscountRate)
	if err != nil {
		return nil, fmt.Errorf("base npv: %w", err)
	}

	report := &RiskReport{BaseNPV: baseNPV}

	if s := in.Sensitivity; s != nil {
		report.Sensitivity, err = risk.Sensitivity(in.FCFF, in.BaseDiscountRate, s.Target, s.RangeLow, s.RangeHi)
		if err != nil {
			return nil, fmt.Errorf("sensitivity analysis: %w", err)
		}
	}

	if s := in.Scenario; s != nil {
		report.Scenarios, err = risk.Scenarios(in.FCFF, s.WorstRate, in.BaseDiscountRate, s.BestRate)
		if err != nil {
			return nil, fmt.Errorf("scenario analysis: %w", err)
		}
	}

	if mc := in.MonteCarlo; mc != nil {
		var rng *rand.Rand
		if mc.Seed != nil {
			rng = rand.New(rand.NewSource(*mc.Seed))
		}

		samples, err := model.MonteCarloNPV(in.FCFF, mc.RateMean, mc.RateStdDev, mc.Simulations, rng)
		if err != nil {
			return nil, fmt.Errorf("monte carlo simulation: %w", err)
		}
		report.MonteCarlo = &MonteCarloSection{
			Summary:   risk.Summarize(samples),
			Histogram: risk.Histogram(samples, HistogramBins),
			Samples:   samples,
		}
	}

	return report, nil
}
