package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"secretary-lab/internal/domain"
	"secretary-lab/internal/logging"
	"secretary-lab/internal/observability"
	"secretary-lab/internal/simulation"
)

var version = "0.1.0-dev"

// app holds the dependencies shared by all commands.
type app struct {
	logger   *slog.Logger
	runner   *simulation.Runner
	suite    []domain.BatchConfig
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
}

func main() {
	logger := logging.NewLogger("info", os.Stderr).With("run_id", uuid.NewString()[:8])

	a := &app{
		logger: logger,
		runner: simulation.NewRunner(simulation.RunnerOptions{
			Metrics: observability.DefaultMetrics,
			Logger:  logger,
		}),
		suite:    domain.DefaultSuite(),
		metrics:  observability.DefaultMetrics,
		gatherer: prometheus.DefaultGatherer,
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		logger.Error("run failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "secretary",
		Short: "Secretary problem stopping-rule simulator",
		Long: `secretary estimates, by repeated randomized trials, the win rate and
average selected rank of three stopping rules for the secretary problem:
picking the best candidate, minimizing expected rank, and picking the
second best.

With no subcommand it runs every rule 500 times against 100, 1000 and
1000000 candidates and prints one report block per batch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSuite(cmd.Context(), cmd.OutOrStdout(), a)
			logTotals(a)
			return err
		},
	}

	rootCmd.AddCommand(
		newTheoryCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
