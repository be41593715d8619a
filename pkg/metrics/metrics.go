package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics tracks the order lifecycle counters and HTTP latency.
type OrderMetrics struct {
	placed       prometheus.Counter
	ready        prometheus.Counter
	canceled     prometheus.Counter
	httpDuration *prometheus.HistogramVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comandas_placed_total",
		Help: "Kitchen tickets created at checkout.",
	})
	ready := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comandas_ready_total",
		Help: "Kitchen tickets marked ready.",
	})
	canceled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comandas_canceled_total",
		Help: "Kitchen tickets canceled before preparation.",
	})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	reg.MustRegister(placed, ready, canceled, httpDuration)
	return &OrderMetrics{
		placed:       placed,
		ready:        ready,
		canceled:     canceled,
		httpDuration: httpDuration,
	}
}

// IncPlaced counts a finalized checkout.
func (m *OrderMetrics) IncPlaced() {
	if m == nil || m.placed == nil {
		return
	}
	m.placed.Inc()
}

// IncReady counts a pending ticket moving to ready.
func (m *OrderMetrics) IncReady() {
	if m == nil || m.ready == nil {
		return
	}
	m.ready.Inc()
}

// IncCanceled counts a pending ticket moving to canceled.
func (m *OrderMetrics) IncCanceled() {
	if m == nil || m.canceled == nil {
		return
	}
	m.canceled.Inc()
}

// ObserveHTTP records one served request.
func (m *OrderMetrics) ObserveHTTP(method, path, status string, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
