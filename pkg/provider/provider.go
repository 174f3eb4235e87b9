// Package provider maps provider-prefixed model identifiers such as
// "openai:gpt-4.1" or "ollama:llama3" to the model name and API base URL an
// OpenAI-compatible client should use.
//
// Resolution never fails. Unknown prefixes are stripped and produce no base
// URL override; identifiers without a prefix are returned unchanged.
package provider

import (
	"strings"
)

// Separator splits the provider prefix from the model name.
const Separator = ":"

// Default endpoints.
const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOllamaBaseURL = "http://localhost:11434"
)

// Provider is a known routing prefix.
type Provider string

// Known providers.
const (
	OpenAI Provider = "openai"
	Ollama Provider = "ollama"
	VLLM   Provider = "vllm"
)

// ParseProvider matches s case-insensitively against the known providers.
func ParseProvider(s string) (Provider, bool) {
	switch p := Provider(strings.ToLower(s)); p {
	case OpenAI, Ollama, VLLM:
		return p, true
	}
	return "", false
}

// Address is where a model call should go.
type Address struct {
	// Model is the identifier with any provider prefix removed.
	Model string
	// BaseURL is the endpoint override; empty means the client default.
	BaseURL string
}

// HasOverride reports whether the address carries a base URL.
func (a Address) HasOverride() bool {
	return a.BaseURL != ""
}

func (a Address) String() string {
	if a.BaseURL == "" {
		return a.Model
	}
	return a.Model + "@" + a.BaseURL
}

// Resolve resolves model against the process environment.
func Resolve(model string) Address {
	return ResolveWith(model, OSLookup)
}

// ResolveWith resolves model using lookup for environment values. A nil
// lookup reads the process environment.
func ResolveWith(model string, lookup EnvLookup) Address {
	prefix, name, found := strings.Cut(model, Separator)
	if !found {
		return Address{Model: model}
	}

	lookup = orOS(lookup)
	addr := Address{Model: name}

	p, _ := ParseProvider(prefix)
	switch p {
	case OpenAI:
		// Empty counts as unset so a blank export falls back to the vendor API.
		addr.BaseURL = DefaultOpenAIBaseURL
		if v, _ := lookup(EnvOpenAIBaseURL); v != "" {
			addr.BaseURL = v
		}
	case Ollama:
		addr.BaseURL = DefaultOllamaBaseURL
		if v, ok := lookup(EnvOllamaBaseURL); ok {
			addr.BaseURL = v
		}
	case VLLM:
		addr.BaseURL, _ = lookup(EnvVLLMBaseURL)
	}

	return addr
}
