package gate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vnykmshr/llmgate/pkg/metrics"
	"github.com/vnykmshr/llmgate/pkg/provider"
	"github.com/vnykmshr/llmgate/pkg/ratelimit/concurrency"
)

// DefaultName labels the process-wide gate in logs and metrics.
const DefaultName = "openai"

// Gate bounds concurrent calls to an OpenAI-compatible endpoint.
//
// The limit is recomputed from the environment on every Acquire. The gate
// keeps one limiter and replaces it whenever the computed limit differs from
// the limiter's capacity. Permits already granted by a replaced limiter stay
// valid and are returned to that limiter.
type Gate struct {
	lookup  provider.EnvLookup
	logger  *zap.Logger
	metrics *metrics.Registry
	name    string

	mu       sync.Mutex
	limiter  concurrency.Limiter // nil until the first bounded Acquire
	bounded  bool                // outcome of the latest policy evaluation
	rebuilds int
}

// New creates a gate. Without options it reads the process environment and
// neither logs nor records metrics.
func New(opts ...Option) *Gate {
	g := &Gate{
		lookup: provider.OSLookup,
		logger: zap.NewNop(),
		name:   DefaultName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Acquire blocks until a slot is free and returns a Permit that must be
// released. When gating is disabled it returns immediately with a no-op
// Permit. The only errors are ctx.Err() values; on error nothing is held.
func (g *Gate) Acquire(ctx context.Context) (*Permit, error) {
	limit, bounded := EffectiveLimit(g.lookup)
	if !bounded {
		g.markUnbounded()
		g.recordAcquisition(metrics.ModeUnbounded)
		return &Permit{}, nil
	}

	limiter := g.limiterFor(limit)

	var err error
	if !limiter.TryAcquire() {
		// Only callers that actually queue count as waiting.
		start := time.Now()
		g.trackWaiting(1)
		err = limiter.Wait(ctx)
		g.trackWaiting(-1)
		g.observeWait(time.Since(start))
	}

	if err != nil {
		g.logger.Debug("gave up waiting for gate slot",
			zap.String("gate", g.name),
			zap.Int("limit", limit),
			zap.Error(err))
		return nil, err
	}

	g.recordAcquisition(metrics.ModeBounded)
	g.trackActive(1)
	return &Permit{release: func() {
		limiter.Release()
		g.trackActive(-1)
	}}, nil
}

// Do runs fn while holding a slot. The slot is released when fn returns or
// panics.
func (g *Gate) Do(ctx context.Context, fn func(context.Context) error) error {
	permit, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	defer permit.Release()

	return fn(ctx)
}

// Limit returns the ceiling applied by the most recent Acquire, or false if
// that Acquire was ungated or none has happened yet.
func (g *Gate) Limit() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.bounded || g.limiter == nil {
		return 0, false
	}
	return g.limiter.Capacity(), true
}

// InUse returns the number of slots held in the current limiter.
func (g *Gate) InUse() int {
	if l := g.current(); l != nil {
		return l.InUse()
	}
	return 0
}

// Waiting returns the number of callers blocked on the current limiter.
func (g *Gate) Waiting() int {
	if l := g.current(); l != nil {
		return l.Waiting()
	}
	return 0
}

// Rebuilds returns how many limiters the gate has built.
func (g *Gate) Rebuilds() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rebuilds
}

func (g *Gate) current() concurrency.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.limiter
}

// limiterFor returns a limiter with the given capacity, building a new one
// if the stored limiter is missing or sized differently.
func (g *Gate) limiterFor(limit int) concurrency.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.bounded = true
	if g.limiter != nil && g.limiter.Capacity() == limit {
		return g.limiter
	}

	old := 0
	if g.limiter != nil {
		old = g.limiter.Capacity()
	}

	g.limiter = concurrency.New(limit)
	g.rebuilds++

	g.logger.Debug("gate limit changed",
		zap.String("gate", g.name),
		zap.Int("old_limit", old),
		zap.Int("new_limit", limit))

	if g.metrics != nil {
		g.metrics.GateRebuilds.WithLabelValues(g.name).Inc()
		g.metrics.GateLimit.WithLabelValues(g.name).Set(float64(limit))
	}

	return g.limiter
}

// markUnbounded records that gating is off. The stored limiter is kept so a
// return to the same limit reuses it.
func (g *Gate) markUnbounded() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bounded {
		g.logger.Debug("gate disabled", zap.String("gate", g.name))
	}
	g.bounded = false

	if g.metrics != nil {
		g.metrics.GateLimit.WithLabelValues(g.name).Set(0)
	}
}

func (g *Gate) recordAcquisition(mode string) {
	if g.metrics == nil {
		return
	}
	g.metrics.GateAcquisitions.WithLabelValues(g.name, mode).Inc()
}

func (g *Gate) trackWaiting(delta float64) {
	if g.metrics == nil {
		return
	}
	g.metrics.GateWaiting.WithLabelValues(g.name).Add(delta)
}

func (g *Gate) trackActive(delta float64) {
	if g.metrics == nil {
		return
	}
	g.metrics.GateActive.WithLabelValues(g.name).Add(delta)
}

func (g *Gate) observeWait(d time.Duration) {
	if g.metrics == nil {
		return
	}
	g.metrics.GateWaitTime.WithLabelValues(g.name).Observe(d.Seconds())
}
