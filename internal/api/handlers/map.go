package handlers

import (
	"grid-dispatch-service/internal/api/dto"
	"grid-dispatch-service/internal/domain"
	"net/http"
)

// MapHandler exposes the read-only operating map.
type MapHandler struct {
	Grid *domain.Grid
}

func (h *MapHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	agents := h.Grid.Registry().Agents()
	res := dto.MapResponse{
		Rows:   h.Grid.Rows(),
		Cols:   h.Grid.Cols(),
		Layout: h.Grid.Layout(),
		Agents: make([]dto.AgentResponse, 0, len(agents)),
	}
	for _, a := range agents {
		res.Agents = append(res.Agents, dto.AgentResponse{
			Row:       a.Location.Row,
			Col:       a.Location.Col,
			Transport: string(a.Transport),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
