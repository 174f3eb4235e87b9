// Package metrics provides Prometheus instrumentation for the llmgate
// concurrency gate.
//
// # Quick Start
//
// Attach a registry to a gate and expose it over HTTP:
//
//	reg := prometheus.NewRegistry()
//	g := gate.New(gate.WithMetrics(metrics.NewRegistry(reg), "openai"))
//
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # Available Metrics
//
//   - llmgate_gate_limit: ceiling currently enforced (0 when unbounded)
//   - llmgate_gate_active: bounded calls holding a slot
//   - llmgate_gate_waiting: calls blocked on a slot
//   - llmgate_gate_wait_duration_seconds: time spent queued for a slot (uncontended
//     acquisitions are not observed)
//   - llmgate_gate_rebuilds_total: limiters built because the limit changed
//   - llmgate_gate_acquisitions_total: granted acquisitions, by mode
//
// Every metric carries a gate_name label; acquisitions_total also carries
// mode ("bounded" or "unbounded").
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "research_agent",
//		Labels:    prometheus.Labels{"version": "1.0"},
//	}
//	reg := metrics.NewRegistryWithConfig(config)
package metrics
