package risk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"findash/pkg/core/analysis"
)

func postRisk(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, *analysis.RiskReport) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/risk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		return rec, nil
	}
	var rep analysis.RiskReport
	if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return rec, &rep
}

func TestHandleNPV(t *testing.T) {
	rec, rep := postRisk(t, HandleNPV, `{"fcff": [100, 100, 100], "base_discount_rate": 0.1}`)
	if rep == nil {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// 100 + 100/1.1 + 100/1.21
	if rep.BaseNPV < 273.55 || rep.BaseNPV > 273.56 {
		t.Errorf("Expected base NPV about 273.55, got %f", rep.BaseNPV)
	}
	if rep.Sensitivity != nil || rep.Scenarios != nil || rep.MonteCarlo != nil {
		t.Error("NPV endpoint must not run other sections")
	}
}

func TestHandleNPV_IgnoresExtraSections(t *testing.T) {
	// Even if the client sends a Monte Carlo spec, the NPV endpoint
	// strips it: each endpoint recomputes only its own section.
	body := `{"fcff": [100], "base_discount_rate": 0.1,
		"monte_carlo": {"rate_mean": 0.1, "rate_std_dev": 0.02, "simulations": 10}}`
	_, rep := postRisk(t, HandleNPV, body)
	if rep == nil {
		t.Fatal("Expected success")
	}
	if rep.MonteCarlo != nil {
		t.Error("Expected Monte Carlo section to be stripped")
	}
}

func TestHandleSensitivity_DefaultSpec(t *testing.T) {
	_, rep := postRisk(t, HandleSensitivity, `{"fcff": [100, 100, 100], "base_discount_rate": 0.1}`)
	if rep == nil {
		t.Fatal("Expected success")
	}
	if len(rep.Sensitivity) != 21 {
		t.Errorf("Expected default -10..10 sweep (21 points), got %d", len(rep.Sensitivity))
	}
}

func TestHandleScenario(t *testing.T) {
	body := `{"fcff": [100, 100, 100], "base_discount_rate": 0.1,
		"scenario": {"worst_rate": 0.12, "best_rate": 0.08}}`
	_, rep := postRisk(t, HandleScenario, body)
	if rep == nil {
		t.Fatal("Expected success")
	}
	if len(rep.Scenarios) != 3 {
		t.Fatalf("Expected 3 scenario rows, got %d", len(rep.Scenarios))
	}
	if rep.Scenarios[0].Scenario != "Worst Case" {
		t.Errorf("Expected worst case first, got %q", rep.Scenarios[0].Scenario)
	}
}

func TestHandleMonteCarlo_Seeded(t *testing.T) {
	body := `{"fcff": [100, 100, 100], "base_discount_rate": 0.1,
		"monte_carlo": {"rate_mean": 0.1, "rate_std_dev": 0.02, "simulations": 100, "seed": 42}}`

	_, a := postRisk(t, HandleMonteCarlo, body)
	_, b := postRisk(t, HandleMonteCarlo, body)
	if a == nil || b == nil {
		t.Fatal("Expected success")
	}
	if a.MonteCarlo == nil || len(a.MonteCarlo.Samples) != 100 {
		t.Fatal("Expected 100 Monte Carlo samples")
	}
	for i := range a.MonteCarlo.Samples {
		if a.MonteCarlo.Samples[i] != b.MonteCarlo.Samples[i] {
			t.Fatal("Seeded requests must return identical samples")
		}
	}
}

func TestHandleFull_DegenerateRate(t *testing.T) {
	rec, _ := postRisk(t, HandleFull, `{"fcff": [100], "base_discount_rate": -1}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for degenerate rate, got %d", rec.Code)
	}
}

func TestHandleFull_BadJSON(t *testing.T) {
	rec, _ := postRisk(t, HandleFull, "{")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid body, got %d", rec.Code)
	}
}
