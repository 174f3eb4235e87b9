package gate

import (
	"go.uber.org/zap"

	"github.com/vnykmshr/llmgate/pkg/metrics"
	"github.com/vnykmshr/llmgate/pkg/provider"
)

// Option configures a Gate.
type Option func(*Gate)

// WithLookup sets where the gate reads its environment. Defaults to the
// process environment.
func WithLookup(lookup provider.EnvLookup) Option {
	return func(g *Gate) {
		if lookup != nil {
			g.lookup = lookup
		}
	}
}

// WithLogger sets the logger used for limiter lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics records gate activity in registry under the given gate name.
func WithMetrics(registry *metrics.Registry, name string) Option {
	return func(g *Gate) {
		g.metrics = registry
		if name != "" {
			g.name = name
		}
	}
}
