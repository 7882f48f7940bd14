package handlers

import (
	"log/slog"
	"net/http"
)

type HealthResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
	Message     string `json:"message,omitempty"`
}

// HealthHandler reports whether the database answers and how many application tables exist.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesBD(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "health check failed", "error", err)
		writeSuccess(w, HealthResponse{Status: "unavailable", Message: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", CountTables: count}, http.StatusOK)
}
