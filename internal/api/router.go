package api

import (
	"grid-dispatch-service/internal/api/handlers"
	"grid-dispatch-service/internal/platform/metrics"
	"grid-dispatch-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// limiter may be nil to disable rate limiting.
func NewRouter(svc *services.OrderService, limiter *rate.Limiter) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Grid: svc.Grid()}
	mapHandler := &handlers.MapHandler{Grid: svc.Grid()}
	deliveryHandler := &handlers.DeliveryHandler{Service: svc}

	mux.HandleFunc("/health", healthHandler.Get)
	mux.HandleFunc("/map", mapHandler.Get)
	mux.HandleFunc("/deliveries", deliveryHandler.Create)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(limiter, mux)))
}
