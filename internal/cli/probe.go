package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vnykmshr/llmgate/pkg/gate"
	"github.com/vnykmshr/llmgate/pkg/metrics"
	"github.com/vnykmshr/llmgate/pkg/provider"
)

type probeOptions struct {
	model       string
	calls       int
	duration    time.Duration
	metricsAddr string
}

func newProbeCommand(a *app) *cobra.Command {
	opts := probeOptions{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Run simulated model calls through the gate and report observed concurrency",
		Long: `probe issues --calls simulated requests at once, each lasting --duration,
through a gate configured from OPENAI_BASE_URL and LLM_CONCURRENCY_LIMIT.
No network traffic is sent to the model endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.calls < 1 {
				return fmt.Errorf("--calls must be at least 1, got %d", opts.calls)
			}
			return runProbe(cmd, a.logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.model, "model", "openai:gpt-4.1-mini", "model identifier to resolve for the report")
	cmd.Flags().IntVar(&opts.calls, "calls", 8, "number of concurrent simulated calls")
	cmd.Flags().DurationVar(&opts.duration, "duration", 100*time.Millisecond, "duration of each simulated call")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while probing (e.g. :9090)")

	return cmd
}

func runProbe(cmd *cobra.Command, logger *zap.Logger, opts probeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reg := prometheus.NewRegistry()
	g := gate.New(
		gate.WithLogger(logger.Named("gate")),
		gate.WithMetrics(metrics.NewRegistry(reg), gate.DefaultName),
	)

	if opts.metricsAddr != "" {
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", zap.String("addr", opts.metricsAddr))
	}

	addr := provider.Resolve(opts.model)
	limit, bounded := gate.EffectiveLimit(provider.OSLookup)
	logger.Info("probing gate",
		zap.Stringer("address", addr),
		zap.Bool("bounded", bounded),
		zap.Int("limit", limit),
		zap.Int("calls", opts.calls))

	var (
		mu      sync.Mutex
		current int
		peak    int
	)

	start := time.Now()
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < opts.calls; i++ {
		eg.Go(func() error {
			return g.Do(egCtx, func(ctx context.Context) error {
				mu.Lock()
				current++
				peak = max(peak, current)
				mu.Unlock()
				defer func() {
					mu.Lock()
					current--
					mu.Unlock()
				}()

				select {
				case <-time.After(opts.duration):
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	limitText := "unbounded"
	if bounded {
		limitText = fmt.Sprint(limit)
	}
	base := addr.BaseURL
	if !addr.HasOverride() {
		base = "-"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model:    %s\n", addr.Model)
	fmt.Fprintf(out, "base_url: %s\n", base)
	fmt.Fprintf(out, "limit:    %s\n", limitText)
	fmt.Fprintf(out, "calls:    %d\n", opts.calls)
	fmt.Fprintf(out, "peak:     %d\n", peak)
	fmt.Fprintf(out, "elapsed:  %s\n", elapsed.Round(time.Millisecond))
	return nil
}
