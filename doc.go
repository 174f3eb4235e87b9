/*
Package llmgate provides the model routing and concurrency helpers used by an
LLM research agent when talking to OpenAI-compatible endpoints.

Model Routing (pkg/provider):
  - Resolve maps "openai:gpt-4.1", "ollama:llama3" or "vllm:qwen2" to a model
    name and base URL taken from OPENAI_BASE_URL, OLLAMA_BASE_URL or
    VLLM_BASE_URL

Concurrency Control:
  - gate: process-wide limit on in-flight calls to a custom OpenAI endpoint,
    driven by OPENAI_BASE_URL and LLM_CONCURRENCY_LIMIT
  - ratelimit/concurrency: the FIFO counting semaphore behind the gate
  - transport: http.RoundTripper that holds a gate slot per request

Observability (pkg/metrics):
  - Prometheus gauges, counters and histograms for gate activity

Example usage:

	import (
		"github.com/vnykmshr/llmgate/pkg/gate"
		"github.com/vnykmshr/llmgate/pkg/provider"
	)

	addr := provider.Resolve("openai:gpt-4.1")
	client := newChatClient(addr.Model, addr.BaseURL)

	err := gate.Do(ctx, func(ctx context.Context) error {
		_, err := client.Complete(ctx, prompt)
		return err
	})
*/
package llmgate
