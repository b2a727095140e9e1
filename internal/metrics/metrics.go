// Package metrics exposes Prometheus instrumentation for the decision engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Decision outcomes by result ("approved" or the rejection reason)
	DecisionOutcome *prometheus.CounterVec

	// End-to-end decision latency
	DecisionLatency prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_decision_outcomes_total",
			Help: "Total loan decisions by outcome",
		}, []string{"outcome"}),

		DecisionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_decision_duration_seconds",
			Help:    "Duration of a full loan decision computation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveLatency records the duration of a decision computation.
func (m *Metrics) ObserveLatency(d time.Duration) {
	if m != nil {
		m.DecisionLatency.Observe(d.Seconds())
	}
}
