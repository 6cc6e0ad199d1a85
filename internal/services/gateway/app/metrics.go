package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the gateway's request instrumentation.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec
}

// NewMetrics registers the gateway collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Analysis requests by pipeline and outcome.",
		}, []string{"pipeline", "outcome"}),
		Durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Analysis request duration by pipeline.",
			Buckets: prometheus.DefBuckets,
		}, []string{"pipeline"}),
	}
}

func (m *Metrics) observe(pipeline string, ok bool, seconds float64) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.Requests.WithLabelValues(pipeline, outcome).Inc()
	m.Durations.WithLabelValues(pipeline).Observe(seconds)
}
