package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "oaipmh"

// Metrics are registered on their own registry so each server exposes
// only its own series.
type Metrics struct {
	Registry *prometheus.Registry

	// RequestsTotal counts requests by verb and outcome. Outcome is
	// "ok", an OAI-PMH error code, or "internal".
	RequestsTotal *prometheus.CounterVec

	// RequestDuration measures time spent answering requests.
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		Registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of OAI-PMH requests",
			},
			[]string{"verb", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of OAI-PMH requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"verb"},
		),
	}
}

// Record counts one request.
func (m *Metrics) Record(verb, outcome string, seconds float64) {
	if verb == "" {
		verb = "unknown"
	}
	m.RequestsTotal.WithLabelValues(verb, outcome).Inc()
	m.RequestDuration.WithLabelValues(verb).Observe(seconds)
}
