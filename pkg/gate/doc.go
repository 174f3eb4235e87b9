/*
Package gate bounds the number of concurrent requests sent to a self-hosted
or proxy OpenAI-compatible endpoint.

Gating is driven entirely by the environment and is re-read on every
acquisition:

	OPENAI_BASE_URL        must be non-empty for gating to apply
	LLM_CONCURRENCY_LIMIT  integer ceiling, clamped to at least 1

If either is missing, or the limit is not an integer, the gate fails open and
every acquisition succeeds immediately.

Wrap each outbound call:

	permit, err := gate.Acquire(ctx)
	if err != nil {
		return err // ctx canceled or timed out while waiting
	}
	defer permit.Release()

	resp, err := client.CreateChatCompletion(ctx, req)

or, equivalently:

	err := gate.Do(ctx, func(ctx context.Context) error {
		_, err := client.CreateChatCompletion(ctx, req)
		return err
	})

Reconfiguration:

When the computed limit changes, the next Acquire builds a fresh limiter of
the new size. Callers already holding a slot keep it and release it to the
limiter that granted it, so a change never blocks or deadlocks them; they
simply stop counting against the new limit.

The package-level Acquire and Do use a lazily created process-wide Gate. Use
New for gates with their own environment source, logger or metrics.
*/
package gate
