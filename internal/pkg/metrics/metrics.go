package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bzd_messages"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	GRPCRequests     *prometheus.CounterVec
	EventsPublished  *prometheus.CounterVec
	OutboxDispatched *prometheus.CounterVec
	StreamCountFails prometheus.Counter
}

// New uses its own registry so several instances can live in one process (tests).
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by route and status.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		GRPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "grpc_requests_total",
			Help:        "gRPC requests by method and code.",
			ConstLabels: labels,
		}, []string{"method", "code"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "events_published_total",
			Help:        "Bus publications by event type and result.",
			ConstLabels: labels,
		}, []string{"type", "result"}),
		OutboxDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "outbox_dispatched_total",
			Help:        "Outbox events handled by the dispatcher by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		StreamCountFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "stream_count_increment_failures_total",
			Help:        "Post-commit stream counter increments that failed.",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.GRPCRequests,
		m.EventsPublished,
		m.OutboxDispatched,
		m.StreamCountFails,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
