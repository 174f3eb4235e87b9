package gate

import (
	"strconv"
	"strings"

	"github.com/vnykmshr/llmgate/pkg/provider"
)

// EffectiveLimit computes the concurrency ceiling from the environment.
//
// Gating is enabled only when OPENAI_BASE_URL is non-empty and
// LLM_CONCURRENCY_LIMIT parses as an integer; anything else fails open and
// reports bounded == false. Parsed values below 1 are clamped to 1.
func EffectiveLimit(lookup provider.EnvLookup) (limit int, bounded bool) {
	if lookup.Getenv(provider.EnvOpenAIBaseURL) == "" {
		return 0, false
	}

	raw := strings.TrimSpace(lookup.Getenv(provider.EnvConcurrencyLimit))
	if raw == "" {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return max(n, 1), true
}
