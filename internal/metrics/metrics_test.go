package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/tripwise/internal/metrics"
)

func TestObserveUpstream(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveUpstream("geocode", time.Now(), nil)
	m.ObserveUpstream("geocode", time.Now(), errors.New("boom"))
	m.ObserveUpstream("geocode", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests().WithLabelValues("geocode", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests().WithLabelValues("geocode", metrics.OutcomeError)))
}

func TestObservePlan(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObservePlan(nil)
	m.ObservePlan(errors.New("x"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Plans().WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Plans().WithLabelValues(metrics.OutcomeError)))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstream("country", time.Now(), nil)
		m.ObservePlan(nil)
	})
}
