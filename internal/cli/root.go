// Package cli implements the llmgate command line.
package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	envFile string
	verbose bool
	logger  *zap.Logger
}

// NewRootCommand builds the llmgate command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "llmgate",
		Short:         "Resolve model addresses and exercise the LLM concurrency gate",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger.Named("llmgate")

			if err := godotenv.Load(a.envFile); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					a.logger.Debug("env file not found, skipping", zap.String("path", a.envFile))
					return nil
				}
				return err
			}
			a.logger.Debug("loaded env file", zap.String("path", a.envFile))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before running; variables already set are kept")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newResolveCommand(a), newProbeCommand(a))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	logConfig.Level.SetLevel(zap.InfoLevel)
	if verbose {
		logConfig.Level.SetLevel(zap.DebugLevel)
	}
	return logConfig.Build()
}
