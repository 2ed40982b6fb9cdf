// Package metrics exposes Prometheus instruments for roster activity.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one server.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	friends    prometheus.Gauge
	rpcLatency *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eatsplit",
			Name:      "roster_operations_total",
			Help:      "Roster operations by name and whether they changed state.",
		}, []string{"operation", "applied"}),
		friends: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "eatsplit",
			Name:      "roster_friends",
			Help:      "Number of friends currently in the roster.",
		}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eatsplit",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(m.operations, m.friends, m.rpcLatency)
	return m
}

// ObserveOperation counts one roster operation.
func (m *Metrics) ObserveOperation(op string, applied bool) {
	m.operations.WithLabelValues(op, strconv.FormatBool(applied)).Inc()
}

// SetFriends records the current roster size.
func (m *Metrics) SetFriends(n int) {
	m.friends.Set(float64(n))
}

// ObserveRPC records how long a procedure took.
func (m *Metrics) ObserveRPC(procedure, code string, seconds float64) {
	m.rpcLatency.WithLabelValues(procedure, code).Observe(seconds)
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
