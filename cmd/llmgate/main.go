// Command llmgate resolves provider-prefixed model identifiers and probes
// the concurrency gate configured by the environment.
package main

import "github.com/vnykmshr/llmgate/internal/cli"

func main() {
	cli.Execute()
}
