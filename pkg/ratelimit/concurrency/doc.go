/*
Package concurrency provides the counting semaphore behind the llmgate gate.

A Limiter hands out at most Capacity permits. Callers either take a permit
without blocking (TryAcquire) or park in Wait until one is released. Waiters
are served in arrival order.

Basic usage:

	limiter, err := concurrency.NewSafe(4)
	if err != nil {
		log.Fatal(err)
	}

	if err := limiter.Wait(ctx); err != nil {
		return err // ctx canceled or deadline exceeded
	}
	defer limiter.Release()

	resp, err := client.Do(req)

Cancellation:

When ctx is done before a permit is granted, Wait returns ctx.Err() and the
caller holds nothing. If a permit is handed over at the same moment the
context fires, the limiter takes it back before Wait returns, so a failed
Wait never needs a matching Release.

Capacity:

Capacity is fixed for the lifetime of a limiter. Code that needs a different
ceiling builds a new limiter; permits held against the old one are released
to the old one.

Error Handling:

NewSafe returns a *errors.ValidationError for a non-positive capacity; New
panics instead. Releasing more permits than are held panics.

Thread Safety:

All methods are safe for concurrent use.
*/
package concurrency
