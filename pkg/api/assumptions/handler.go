// Package assumptions serves the default input values and slider bounds
// the presentation layer initializes its widgets from.
package assumptions

import (
	"encoding/json"
	"net/http"

	"findash/pkg/core/config"
)

// Handler serves the configured defaults.
type Handler struct {
	cfg *config.Config
}

// NewHandler wraps the loaded configuration.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// HandleDefaults returns assumption defaults and advisory bounds.
// GET /api/defaults
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := struct {
		Defaults config.Defaults `json:"defaults"`
		Bounds   config.Bounds   `json:"bounds"`
	}{Defaults: h.cfg.Defaults, Bounds: h.cfg.Bounds}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
