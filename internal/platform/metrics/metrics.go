package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// DispatchRequests counts order requests by objective and outcome
	// (ok, invalid, unavailable, error).
	DispatchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_requests_total", Help: "Delivery dispatch requests by objective and outcome."},
		[]string{"objective", "outcome"},
	)
	// DispatchDuration tracks optimizer latency in seconds.
	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dispatch_duration_seconds", Help: "Dispatch optimization duration in seconds.", Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5}},
		[]string{"objective"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DispatchRequests)
		Registry.MustRegister(DispatchDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
