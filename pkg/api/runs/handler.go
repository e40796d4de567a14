// Package runs persists and retrieves completed analyses. Requires a
// configured database; without one the endpoints answer 503.
package runs

import (
	"encoding/json"
	"fmt"
	"net/http"

	"findash/pkg/core/store"
)

// Handler serves the saved-run endpoints.
type Handler struct {
	repo *store.RunRepo
}

// NewHandler creates a handler backed by the shared database pool.
func NewHandler() *Handler {
	return &Handler{repo: store.NewRunRepo()}
}

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

type saveRequest struct {
	Kind   store.RunKind   `json:"kind"`
	Inputs json.RawMessage `json:"inputs"`
	Report json.RawMessage `json:"report"`
}

// HandleSave stores a completed analysis and returns its id.
// POST /api/runs/save
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if !store.Available() {
		http.Error(w, "run storage not configured (DATABASE_URL unset)", http.StatusServiceUnavailable)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Kind != store.RunValuation && req.Kind != store.RunRisk {
		http.Error(w, fmt.Sprintf("unknown run kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	id, err := h.repo.Save(r.Context(), req.Kind, req.Inputs, req.Report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[RUNS] Saved %s run %s\n", req.Kind, id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// HandleLoad retrieves a saved analysis by id.
// GET /api/runs/load?id=...
func (h *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if !store.Available() {
		http.Error(w, "run storage not configured (DATABASE_URL unset)", http.StatusServiceUnavailable)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	run, err := h.repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}
