package handlers

import (
	"encoding/json"
	"errors"
	"grid-dispatch-service/internal/api/dto"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
)

type DeliveryHandler struct {
	Service *services.OrderService
}

// Create validates a delivery request, dispatches an agent and returns the order.
// Validation problems map to 400 and an unavailable route to 409.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DeliveryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	pickup, err := domain.NewLocation(req.Pickup.Row, req.Pickup.Col)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "pickup: "+err.Error())
		return
	}
	dropoff, err := domain.NewLocation(req.Dropoff.Row, req.Dropoff.Col)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "dropoff: "+err.Error())
		return
	}

	objective := domain.ObjectiveCheapest
	if strings.TrimSpace(req.Objective) != "" {
		objective, err = domain.ParseObjective(req.Objective)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "objective must be cheapest or fastest")
			return
		}
	}

	order, err := h.Service.PlaceOrder(r.Context(), services.OrderRequest{
		Pickup:    pickup,
		Dropoff:   dropoff,
		FoodItem:  req.FoodItem,
		MaxPrice:  req.MaxPrice,
		MaxTime:   req.MaxTime,
		Objective: objective,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrInvalidOrderParameter):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrNoAvailableAgent):
		writeError(w, r, http.StatusConflict, "no delivery available")
		return
	default:
		log.Printf("place order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.DeliveryResponse{
		OrderID:       order.ID,
		Client:        dto.LocationDTO{Row: order.Client.Row, Col: order.Client.Col},
		Restaurant:    dto.LocationDTO{Row: order.Restaurant.Row, Col: order.Restaurant.Col},
		Agent:         dto.LocationDTO{Row: order.Agent.Row, Col: order.Agent.Col},
		Transport:     string(order.Transport),
		FoodItem:      order.FoodItem,
		Price:         order.Price,
		EstimatedTime: order.EstimatedTime,
		CreatedAt:     order.CreatedAt,
	})
}
