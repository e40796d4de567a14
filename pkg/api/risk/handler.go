// Package risk exposes the NPV risk analyses over HTTP, one endpoint
// per section so the page can recompute only what an interaction
// changed. All endpoints are stateless.
package risk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"findash/pkg/core/analysis"
	"findash/pkg/core/model"
)

var engine = analysis.NewEngine()

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrDegenerateRate) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func runRisk(w http.ResponseWriter, r *http.Request, tag string, shape func(in *analysis.RiskInputs)) {
	if allowCORS(w, r) {
		return
	}

	var in analysis.RiskInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if shape != nil {
		shape(&in)
	}

	rep, err := engine.Risk(in)
	if err != nil {
		writeError(w, err)
		return
	}
	fmt.Printf("[RISK] %s: base NPV %.2f (%d flows)\n", tag, rep.BaseNPV, len(in.FCFF))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// HandleNPV returns only the base NPV for the supplied schedule.
// POST /api/risk/npv
func HandleNPV(w http.ResponseWriter, r *http.Request) {
	runRisk(w, r, "npv", func(in *analysis.RiskInputs) {
		in.Sensitivity, in.Scenario, in.MonteCarlo = nil, nil, nil
	})
}

// HandleSensitivity runs the sensitivity sweep section.
// POST /api/risk/sensitivity
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	runRisk(w, r, "sensitivity", func(in *analysis.RiskInputs) {
		in.Scenario, in.MonteCarlo = nil, nil
		if in.Sensitivity == nil {
			in.Sensitivity = &analysis.SensitivitySpec{Target: "FCFF", RangeLow: -10, RangeHi: 10}
		}
	})
}

// HandleScenario runs the worst/base/best comparison section.
// POST /api/risk/scenario
func HandleScenario(w http.ResponseWriter, r *http.Request) {
	runRisk(w, r, "scenario", func(in *analysis.RiskInputs) {
		in.Sensitivity, in.MonteCarlo = nil, nil
	})
}

// HandleMonteCarlo runs the Monte Carlo NPV section.
// POST /api/risk/montecarlo
func HandleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	runRisk(w, r, "montecarlo", func(in *analysis.RiskInputs) {
		in.Sensitivity, in.Scenario = nil, nil
	})
}

// HandleFull runs every section the request configures in one call.
// POST /api/risk/report
func HandleFull(w http.ResponseWriter, r *http.Request) {
	runRisk(w, r, "full", nil)
}
