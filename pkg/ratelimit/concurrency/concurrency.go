package concurrency

import (
	"context"
)

// TryAcquire takes one permit without blocking.
func (cl *concurrencyLimiter) TryAcquire() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Queued waiters go first.
	if len(cl.waiters) == 0 && cl.available >= 1 {
		cl.available--
		cl.inUse++
		return true
	}
	return false
}

// Wait blocks until one permit is available.
func (cl *concurrencyLimiter) Wait(ctx context.Context) error {
	return cl.WaitN(ctx, 1)
}

// WaitN blocks until n permits are available.
func (cl *concurrencyLimiter) WaitN(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cl.mu.Lock()

	// Fast path
	if len(cl.waiters) == 0 && cl.available >= n {
		cl.available -= n
		cl.inUse += n
		cl.mu.Unlock()
		return nil
	}

	ready := make(chan struct{})
	cl.waiters = append(cl.waiters, waiter{n: n, ready: ready})
	cl.mu.Unlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		cl.mu.Lock()
		select {
		case <-ready:
			// Granted after ctx fired. Give the permits back so the
			// caller, which sees an error, does not own them.
			cl.available += n
			cl.inUse -= n
			cl.notifyWaiters()
		default:
			cl.removeWaiter(ready)
			// Our departure may unblock the queue head.
			cl.notifyWaiters()
		}
		cl.mu.Unlock()
		return ctx.Err()
	}
}

// Release releases one permit back to the limiter.
func (cl *concurrencyLimiter) Release() {
	cl.ReleaseN(1)
}

// ReleaseN releases n permits back to the limiter.
func (cl *concurrencyLimiter) ReleaseN(n int) {
	if n <= 0 {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.inUse < n {
		panic("concurrency: released more permits than acquired")
	}

	cl.available += n
	cl.inUse -= n
	cl.notifyWaiters()
}

// Capacity returns the maximum number of concurrent operations allowed.
func (cl *concurrencyLimiter) Capacity() int {
	return cl.capacity
}

// Available returns the number of permits currently available.
func (cl *concurrencyLimiter) Available() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.available
}

// InUse returns the number of permits currently in use.
func (cl *concurrencyLimiter) InUse() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.inUse
}

// Waiting returns the number of queued waiters.
func (cl *concurrencyLimiter) Waiting() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.waiters)
}

// notifyWaiters grants permits to queued waiters in arrival order, stopping
// at the first one that cannot be satisfied.
// Must be called with cl.mu held.
func (cl *concurrencyLimiter) notifyWaiters() {
	granted := 0
	for _, w := range cl.waiters {
		if cl.available < w.n {
			break
		}
		cl.available -= w.n
		cl.inUse += w.n
		close(w.ready)
		granted++
	}

	if granted > 0 {
		remaining := copy(cl.waiters, cl.waiters[granted:])
		for i := remaining; i < len(cl.waiters); i++ {
			cl.waiters[i] = waiter{}
		}
		cl.waiters = cl.waiters[:remaining]
	}
}

// removeWaiter drops the waiter identified by ready from the queue.
// Must be called with cl.mu held.
func (cl *concurrencyLimiter) removeWaiter(ready chan struct{}) {
	for i, w := range cl.waiters {
		if w.ready == ready {
			copy(cl.waiters[i:], cl.waiters[i+1:])
			cl.waiters[len(cl.waiters)-1] = waiter{}
			cl.waiters = cl.waiters[:len(cl.waiters)-1]
			return
		}
	}
}
