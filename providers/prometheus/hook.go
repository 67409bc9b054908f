// Package prometheus exposes engine activity as Prometheus metrics through
// the ObservabilityHook seam.
package prometheus

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Hook implements jsonx.ObservabilityHook, counting operations by outcome
// and observing their durations.
type Hook struct {
	operations *prom.CounterVec
	errors     *prom.CounterVec
	duration   *prom.HistogramVec
}

// NewHook creates a Hook and registers its collectors. Pass
// prometheus.DefaultRegisterer for the process-global registry.
func NewHook(reg prom.Registerer) *Hook {
	h := &Hook{
		operations: prom.NewCounterVec(
			prom.CounterOpts{
				Name: "jsonx_operations_total",
				Help: "Total number of jsonx operations by outcome",
			},
			[]string{"operation", "status"},
		),
		errors: prom.NewCounterVec(
			prom.CounterOpts{
				Name: "jsonx_errors_total",
				Help: "Total number of jsonx operation errors",
			},
			[]string{"operation"},
		),
		duration: prom.NewHistogramVec(
			prom.HistogramOpts{
				Name:    "jsonx_operation_duration_seconds",
				Help:    "Duration of jsonx operations in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(h.operations, h.errors, h.duration)
	return h
}

// OnProcessStart implements jsonx.ObservabilityHook.
func (h *Hook) OnProcessStart(operation string, metadata map[string]any) {}

// OnProcessComplete implements jsonx.ObservabilityHook.
func (h *Hook) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	status := "success"
	if err != nil {
		status = "error"
	}
	h.operations.WithLabelValues(operation, status).Inc()
	h.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// OnError implements jsonx.ObservabilityHook.
func (h *Hook) OnError(operation string, err error, metadata map[string]any) {
	h.errors.WithLabelValues(operation).Inc()
}
