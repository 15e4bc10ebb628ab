package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	rateLimited prometheus.Counter

	keysGenerated prometheus.Counter
	signatures    prometheus.Counter
	verifications *prometheus.CounterVec
}

// NewMetrics registers the sigvault collectors, plus the Go runtime and
// process collectors, on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigvault",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sigvault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sigvault",
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
		keysGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sigvault",
			Name:      "keys_generated_total",
			Help:      "Key pairs issued.",
		}),
		signatures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sigvault",
			Name:      "signatures_total",
			Help:      "Documents signed.",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigvault",
			Name:      "verifications_total",
			Help:      "Signature verifications by outcome.",
		}, []string{"valid"}),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.rateLimited,
		m.keysGenerated, m.signatures, m.verifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and embedding.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
