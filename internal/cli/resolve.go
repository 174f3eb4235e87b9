package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vnykmshr/llmgate/pkg/provider"
)

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve MODEL...",
		Short: "Print the model name and base URL for each model identifier",
		Example: `  llmgate resolve openai:gpt-4.1 ollama:llama3
  OPENAI_BASE_URL=http://localhost:8000/v1 llmgate resolve openai:qwen2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, model := range args {
				addr := provider.Resolve(model)
				a.logger.Debug("resolved model",
					zap.String("input", model),
					zap.Stringer("address", addr))

				base := addr.BaseURL
				if !addr.HasOverride() {
					base = "-"
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", addr.Model, base); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
