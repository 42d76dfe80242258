// Package metrics holds the Prometheus collectors for upstream calls and plan
// generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripwise"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	plans            *prometheus.CounterVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		upstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API calls by service and outcome.",
		}, []string{"service", "outcome"}),
		upstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		plans: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Travel plan requests by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveUpstream records one upstream call that started at start.
func (m *Metrics) ObserveUpstream(service string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	m.upstreamRequests.WithLabelValues(service, outcome(err)).Inc()
}

// ObservePlan records the outcome of one Plan call.
func (m *Metrics) ObservePlan(err error) {
	if m == nil {
		return
	}
	m.plans.WithLabelValues(outcome(err)).Inc()
}

// UpstreamRequests exposes the counter for tests.
func (m *Metrics) UpstreamRequests() *prometheus.CounterVec { return m.upstreamRequests }

// Plans exposes the plan counter for tests.
func (m *Metrics) Plans() *prometheus.CounterVec { return m.plans }

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
