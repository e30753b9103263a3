package handlers

import (
	"grid-dispatch-service/internal/domain"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Agents int    `json:"agents"`
}

// HealthHandler provides a minimal liveness check that also reports how many
// agents the loaded map carries.
type HealthHandler struct {
	Grid *domain.Grid
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Agents: h.Grid.Registry().Len()})
}
