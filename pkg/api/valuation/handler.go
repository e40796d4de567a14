// Package valuation exposes the company-valuation computation as a
// stateless request/response endpoint: every POST carries the full input
// set and returns the full report.
package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"findash/pkg/core/analysis"
	"findash/pkg/core/model"
	"findash/pkg/core/report"
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

// HandleReport computes the projection table and DCF valuation.
// POST /api/valuation/report
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}

	var in analysis.ValuationInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := engine.Valuation(in)
	if err != nil {
		if errors.Is(err, model.ErrDegenerateRate) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[VALUATION] EV %.2f (r=%.4f g=%.4f)\n", rep.DCF.EnterpriseValue, in.DiscountRate, in.TerminalGrowth)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// HandleReportHTML computes the valuation and returns it as a rendered
// standalone HTML page instead of JSON.
// POST /api/valuation/report-html
func HandleReportHTML(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}

	var in analysis.ValuationInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := engine.Valuation(in)
	if err != nil {
		if errors.Is(err, model.ErrDegenerateRate) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	html, err := report.RenderHTML("Company Valuation", report.ValuationMarkdown(in, rep))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}
