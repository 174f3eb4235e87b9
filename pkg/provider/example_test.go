package provider_test

import (
	"fmt"

	"github.com/vnykmshr/llmgate/pkg/provider"
)

func ExampleResolveWith() {
	env := provider.MapLookup(map[string]string{
		provider.EnvOpenAIBaseURL: "https://proxy.internal/v1",
	})

	for _, model := range []string{"openai:gpt-4.1", "ollama:llama3", "vllm:qwen2", "gpt-4o"} {
		addr := provider.ResolveWith(model, env)
		fmt.Printf("%s -> model=%q base_url=%q\n", model, addr.Model, addr.BaseURL)
	}

	// Output:
	// openai:gpt-4.1 -> model="gpt-4.1" base_url="https://proxy.internal/v1"
	// ollama:llama3 -> model="llama3" base_url="http://localhost:11434"
	// vllm:qwen2 -> model="qwen2" base_url=""
	// gpt-4o -> model="gpt-4o" base_url=""
}
