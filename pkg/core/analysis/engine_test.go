package analysis

import (
	"errors"
	"math"
	"testing"

	"findash/pkg/core/model"
	"findash/pkg/core/risk"
)

func defaultValuationInputs() ValuationInputs {
	return ValuationInputs{
		Projection: model.ProjectionInput{
			InitialRevenue: 5000000,
			GrowthRate:     0.10,
			EBITMargin:     0.20,
			TaxRate:        0.25,
			CapexPct:       0.05,
			WCChangePct:    0.02,
			Depreciation:   100000,
		},
		DiscountRate:   0.10,
		TerminalGrowth: 0.03,
	}
}

func TestEngineValuation(t *testing.T) {
	engine := NewEngine()

	rep, err := engine.Valuation(defaultValuationInputs())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(rep.Projections) != model.ProjectionHorizon {
		t.Fatalf("Expected %d projection rows, got %d", model.ProjectionHorizon, len(rep.Projections))
	}
	if math.Abs(rep.Projections[0].FCF-540000) > 0.01 {
		t.Errorf("Expected year-1 FCF 540,000, got %f", rep.Projections[0].FCF)
	}

	// The DCF must be fed the projection's own FCF column.
	want, err := model.ValueEnterprise(model.FreeCashFlows(rep.Projections), 0.10, 0.03)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rep.DCF.EnterpriseValue != want.EnterpriseValue {
		t.Errorf("EV expected %f, got %f", want.EnterpriseValue, rep.DCF.EnterpriseValue)
	}
	if rep.DCF.EnterpriseValue <= 0 {
		t.Errorf("Expected positive EV for default assumptions, got %f", rep.DCF.EnterpriseValue)
	}
}

func TestEngineValuation_DegenerateRate(t *testing.T) {
	in := defaultValuationInputs()
	in.TerminalGrowth = in.DiscountRate

	_, err := NewEngine().Valuation(in)
	if !errors.Is(err, model.ErrDegenerateRate) {
		t.Errorf("Expected ErrDegenerateRate when r == g, got %v", err)
	}
}

func TestEngineRisk_SectionsOptional(t *testing.T) {
	engine := NewEngine()

	rep, err := engine.Risk(RiskInputs{FCFF: []float64{100, 100, 100}, BaseDiscountRate: 0.1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want, _ := model.NPV([]float64{100, 100, 100}, 0.1)
	if math.Abs(rep.BaseNPV-want) > 1e-9 {
		t.Errorf("Base NPV expected %f, got %f", want, rep.BaseNPV)
	}
	if rep.Sensitivity != nil || rep.Scenarios != nil || rep.MonteCarlo != nil {
		t.Error("Expected unrequested sections to stay nil")
	}
}

func TestEngineRisk_FullReport(t *testing.T) {
	seed := int64(7)
	in := RiskInputs{
		FCFF:             []float64{250, 300, 320},
		BaseDiscountRate: 0.1,
		Sensitivity:      &SensitivitySpec{Target: risk.TargetFCFF, RangeLow: -10, RangeHi: 10},
		Scenario:         &ScenarioSpec{WorstRate: 0.12, BestRate: 0.08},
		MonteCarlo:       &MonteCarloSpec{RateMean: 0.1, RateStdDev: 0.02, Simulations: 500, Seed: &seed},
	}

	rep, err := NewEngine().Risk(in)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(rep.Sensitivity) != 21 {
		t.Errorf("Expected 21 sensitivity points, got %d", len(rep.Sensitivity))
	}
	if len(rep.Scenarios) != 3 {
		t.Errorf("Expected 3 scenario rows, got %d", len(rep.Scenarios))
	}
	if rep.MonteCarlo == nil {
		t.Fatal("Expected Monte Carlo section")
	}
	if rep.MonteCarlo.Summary.Count != 500 || len(rep.MonteCarlo.Samples) != 500 {
		t.Errorf("Expected 500 samples, got summary %d / raw %d",
			rep.MonteCarlo.Summary.Count, len(rep.MonteCarlo.Samples))
	}
	if len(rep.MonteCarlo.Histogram) == 0 {
		t.Error("Expected a histogram for charting")
	}

	// Same seed, same report.
	again, err := NewEngine().Risk(in)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range rep.MonteCarlo.Samples {
		if rep.MonteCarlo.Samples[i] != again.MonteCarlo.Samples[i] {
			t.Fatalf("Seeded runs diverged at sample %d", i)
		}
	}
}

func TestEngineRisk_ErrorFailsWholeCall(t *testing.T) {
	in := RiskInputs{
		FCFF:             []float64{100},
		BaseDiscountRate: -1, // degenerate before any section runs
		Scenario:         &ScenarioSpec{WorstRate: 0.12, BestRate: 0.08},
	}
	if _, err := NewEngine().Risk(in); !errors.Is(err, model.ErrDegenerateRate) {
		t.Errorf("Expected ErrDegenerateRate, got %v", err)
	}
}
