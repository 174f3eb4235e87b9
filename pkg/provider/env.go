package provider

import "os"

// Environment variables consulted by Resolve and by the gate policy.
const (
	EnvOpenAIBaseURL    = "OPENAI_BASE_URL"
	EnvOllamaBaseURL    = "OLLAMA_BASE_URL"
	EnvVLLMBaseURL      = "VLLM_BASE_URL"
	EnvConcurrencyLimit = "LLM_CONCURRENCY_LIMIT"
)

// EnvLookup reports the value of an environment variable and whether it is set.
type EnvLookup func(key string) (string, bool)

// OSLookup reads the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapLookup serves lookups from a fixed map. A nil map behaves as an empty
// environment.
func MapLookup(env map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func orOS(lookup EnvLookup) EnvLookup {
	if lookup == nil {
		return OSLookup
	}
	return lookup
}

// Getenv returns the value of key, or "" when unset.
func (l EnvLookup) Getenv(key string) string {
	v, _ := orOS(l)(key)
	return v
}
