package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "callrelay"

const (
	OutcomeSkipped = "skipped"
	OutcomeCreated = "created"
	OutcomeFailed  = "failed"
)

type Metrics struct {
	registry *prometheus.Registry
	received *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	forward  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_received_total",
			Help:      "Total webhook requests received by endpoint",
		}, []string{"endpoint"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Total call events by outcome",
		}, []string{"outcome"}),
		forward: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quickbase_request_duration_seconds",
			Help:      "Duration of QuickBase record creation calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.received, m.outcomes, m.forward)
	return m
}

func (m *Metrics) Received(endpoint string) {
	m.received.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) Outcome(outcome string) {
	m.outcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ForwardDuration(d time.Duration) {
	m.forward.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
