package sponsorblock

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for segment fetches. Each client
// owns its own registry so embedders can expose it without collector name
// collisions between clients.
type Metrics struct {
	registry         *prometheus.Registry
	fetchesTotal     *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	segmentsReturned prometheus.Counter
	fetchErrors      *prometheus.CounterVec
}

func newMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		fetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sponsorblock",
			Name:      "fetches_total",
			Help:      "Total segment fetch requests issued",
		}, []string{"mode", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sponsorblock",
			Name:      "fetch_duration_seconds",
			Help:      "Histogram of segment fetch durations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		segmentsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sponsorblock",
			Name:      "segments_returned_total",
			Help:      "Number of validated segments returned to callers",
		}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sponsorblock",
			Name:      "fetch_errors_total",
			Help:      "Segment fetch failures by error kind",
		}, []string{"kind"}),
	}
	registry.MustRegister(m.fetchesTotal, m.fetchDuration, m.segmentsReturned, m.fetchErrors)
	return m
}

// Registry returns the registry holding the client's collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeFetch(mode string, start time.Time, err error, segments int) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		m.fetchErrors.WithLabelValues(errorKind(err)).Inc()
	} else {
		m.segmentsReturned.Add(float64(segments))
	}
	m.fetchesTotal.WithLabelValues(mode, outcome).Inc()
	m.fetchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}
