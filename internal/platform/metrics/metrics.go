package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	SignUps              prometheus.Counter
	SignUpFailures       *prometheus.CounterVec
	SagaRollbacks        prometheus.Counter
	SagaRollbackFailures prometheus.Counter
	SignIns              prometheus.Counter
	AuthFailures         prometheus.Counter
	EndpointLatency      *prometheus.HistogramVec
}

// New creates all Prometheus metrics and registers them with the default
// registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all Prometheus metrics against the given registerer. Tests
// pass a fresh registry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignUps: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawgate_signups_total",
			Help: "Total number of completed lawyer registrations",
		}),
		SignUpFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lawgate_signup_failures_total",
			Help: "Total number of failed registrations, labeled by saga step",
		}, []string{"step"}),
		SagaRollbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawgate_signup_rollbacks_total",
			Help: "Total number of registration rollbacks performed",
		}),
		SagaRollbackFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawgate_signup_rollback_failures_total",
			Help: "Total number of compensating actions that themselves failed, requiring manual reconciliation",
		}),
		SignIns: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawgate_signins_total",
			Help: "Total number of successful sign-ins",
		}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "lawgate_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawgate_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// ObserveEndpointLatency records the latency for a given endpoint
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
