package concurrency

import (
	"context"
	"sync"

	"github.com/vnykmshr/llmgate/pkg/common/validation"
)

// Limiter caps the number of operations that may hold a permit at once.
// Capacity is fixed when the limiter is built; callers that need a different
// ceiling build a new limiter.
type Limiter interface {
	// TryAcquire takes one permit if one is free. It never blocks.
	TryAcquire() bool

	// Wait blocks until one permit is granted or ctx is done.
	Wait(ctx context.Context) error

	// WaitN blocks until n permits are granted or ctx is done.
	// On error no permits are held by the caller.
	WaitN(ctx context.Context, n int) error

	// Release returns one permit.
	// It panics if more permits are released than were acquired.
	Release()

	// ReleaseN returns n permits.
	// It panics if more permits are released than were acquired.
	ReleaseN(n int)

	// Capacity returns the maximum number of permits.
	Capacity() int

	// Available returns the number of free permits.
	Available() int

	// InUse returns the number of permits currently held.
	InUse() int

	// Waiting returns the number of callers blocked in Wait/WaitN.
	Waiting() int
}

// concurrencyLimiter implements Limiter with a mutex and a FIFO waiter queue.
type concurrencyLimiter struct {
	mu        sync.Mutex
	capacity  int
	available int
	inUse     int
	waiters   []waiter
}

// waiter is a goroutine parked in WaitN
type waiter struct {
	n     int
	ready chan struct{} // closed once the permits are granted
}

// NewSafe creates a limiter with the given capacity, returning a
// ValidationError instead of panicking when capacity is not positive.
func NewSafe(capacity int) (Limiter, error) {
	if err := validation.ValidatePositive("concurrency", "capacity", capacity); err != nil {
		return nil, err
	}

	return &concurrencyLimiter{
		capacity:  capacity,
		available: capacity,
	}, nil
}

// New creates a limiter and panics on invalid capacity.
func New(capacity int) Limiter {
	l, err := NewSafe(capacity)
	if err != nil {
		panic(err)
	}
	return l
}
