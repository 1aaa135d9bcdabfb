// Package metrics records outbound provider calls for Prometheus.
package metrics

import (
	"time"

	"keepposted/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// ProviderMetrics records latency and outcome of calls to external providers.
// A zero value records nothing.
type ProviderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewProviderMetrics registers the provider metrics on the provided registerer.
func NewProviderMetrics(reg prometheus.Registerer) *ProviderMetrics {
	if reg == nil {
		return &ProviderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provider_call_duration_seconds",
		Help:    "Duration of external provider calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_call_success_total",
		Help: "Successful external provider calls.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_call_failure_total",
		Help: "Failed external provider calls.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure)

	return &ProviderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one call that started at start and ended with err.
func (m *ProviderMetrics) Observe(operation string, start time.Time, err error) {
	if m == nil || m.duration == nil {
		return
	}
	operation = normalizeLabel(operation)

	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.failure.WithLabelValues(operation).Inc()

		return
	}
	m.success.WithLabelValues(operation).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}

	return operation
}

// Params defines the parameters required for the metrics registry
type Params struct {
	fx.In

	Config *config.Config
}

// NewRegistry returns the process registry, or nil when metrics are disabled.
func NewRegistry(params Params) *prometheus.Registry {
	if !params.Config.Metrics.Enabled {
		return nil
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Module provides the metrics registry and provider metrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) *ProviderMetrics {
			if reg == nil {
				return NewProviderMetrics(nil)
			}

			return NewProviderMetrics(reg)
		},
	),
)
