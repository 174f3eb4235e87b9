package gate

import (
	"context"
	"sync"
)

var (
	defaultGate *Gate
	defaultOnce sync.Once
)

// Default returns the process-wide gate, creating it on first use. It reads
// the process environment.
func Default() *Gate {
	defaultOnce.Do(func() {
		defaultGate = New()
	})
	return defaultGate
}

// Acquire acquires a slot from the process-wide gate.
func Acquire(ctx context.Context) (*Permit, error) {
	return Default().Acquire(ctx)
}

// Do runs fn under the process-wide gate.
func Do(ctx context.Context, fn func(context.Context) error) error {
	return Default().Do(ctx, fn)
}
