// Package metrics provides Prometheus instrumentation for llmgate components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Acquisition modes recorded on GateAcquisitions.
const (
	ModeBounded   = "bounded"
	ModeUnbounded = "unbounded"
)

// Registry holds all metric instances for llmgate components.
type Registry struct {
	GateLimit        *prometheus.GaugeVec
	GateActive       *prometheus.GaugeVec
	GateWaiting      *prometheus.GaugeVec
	GateWaitTime     *prometheus.HistogramVec
	GateRebuilds     *prometheus.CounterVec
	GateAcquisitions *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig creates a registry honoring config.Namespace and
// config.Labels. It returns nil when config.Enabled is false; components treat
// a nil registry as metrics off. A nil config.Registry registers nothing.
func NewRegistryWithConfig(config Config) *Registry {
	if !config.Enabled {
		return nil
	}
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(config.Registry)
	labels := []string{"gate_name"}

	return &Registry{
		GateLimit: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "limit",
				Help:        "Concurrency ceiling currently enforced by the gate (0 when unbounded)",
				ConstLabels: config.Labels,
			},
			labels,
		),

		GateActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "active",
				Help:        "Number of bounded calls currently holding a gate slot",
				ConstLabels: config.Labels,
			},
			labels,
		),

		GateWaiting: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "waiting",
				Help:        "Number of calls queued waiting for a gate slot",
				ConstLabels: config.Labels,
			},
			labels,
		),

		GateWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "wait_duration_seconds",
				Help:        "Time spent queued for a gate slot by callers that could not acquire one immediately",
				Buckets:     prometheus.ExponentialBuckets(0.001, 4, 9),
				ConstLabels: config.Labels,
			},
			labels,
		),

		GateRebuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "rebuilds_total",
				Help:        "Number of times the gate built a limiter for a new limit",
				ConstLabels: config.Labels,
			},
			labels,
		),

		GateAcquisitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "gate",
				Name:        "acquisitions_total",
				Help:        "Number of granted gate acquisitions by mode",
				ConstLabels: config.Labels,
			},
			append(labels, "mode"),
		),
	}
}
