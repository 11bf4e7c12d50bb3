package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"secretary-lab/internal/domain"
	"secretary-lab/internal/idhash"
	"secretary-lab/internal/logging"
	"secretary-lab/internal/observability"
	"secretary-lab/internal/permutation"
	"secretary-lab/internal/strategy"
)

// CandidateSource produces a fresh candidate sequence of n ranks per call.
type CandidateSource interface {
	Generate(n int) ([]int, error)
}

// Runner executes independent trials of a stopping rule.
// Trials run sequentially and share only the candidate source.
type Runner struct {
	source  CandidateSource
	metrics *observability.Metrics
	logger  *slog.Logger
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	Source  CandidateSource        // nil: permutation.NewRandomSource()
	Metrics *observability.Metrics // nil: metrics not recorded
	Logger  *slog.Logger           // nil: logs discarded
}

// NewRunner creates a simulation runner.
func NewRunner(opts RunnerOptions) *Runner {
	r := &Runner{
		source:  opts.Source,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
	if r.source == nil {
		r.source = permutation.NewRandomSource()
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	return r
}

// Run executes trialCount trials of strat, each over a fresh sequence of candidateCount ranks.
// Returns results in trial order.
// Checks ctx between trials; a trial in progress always completes.
func (r *Runner) Run(ctx context.Context, strat strategy.Strategy, trialCount, candidateCount int) ([]domain.TrialResult, error) {
	if trialCount < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTrialCount, trialCount)
	}
	if err := strategy.CheckCandidateCount(strat, candidateCount); err != nil {
		return nil, err
	}

	logger := r.logger.With(
		"batch_id", idhash.ShortBatchID(strat.ID(), trialCount, candidateCount),
		"strategy", strat.ID(),
		"trials", trialCount,
		"candidates", candidateCount,
	)
	logger.Info("batch started", "magic_number", strat.MagicNumber(candidateCount))

	start := time.Now()
	results, err := r.runTrials(ctx, strat, trialCount, candidateCount)
	elapsed := time.Since(start)

	r.metrics.RecordBatch(strat.ID(), elapsed.Seconds(), err)
	if err != nil {
		logger.Warn("batch failed", "error", err, "duration", elapsed)
		return nil, err
	}

	logger.Info("batch finished", "duration", elapsed)
	return results, nil
}

func (r *Runner) runTrials(ctx context.Context, strat strategy.Strategy, trialCount, candidateCount int) ([]domain.TrialResult, error) {
	results := make([]domain.TrialResult, 0, trialCount)

	for i := 0; i < trialCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := r.source.Generate(candidateCount)
		if err != nil {
			return nil, err
		}

		result, err := strat.Select(candidates)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		r.metrics.RecordTrial(strat.ID(), result.Rank, result.Win)
		results = append(results, result)
	}

	return results, nil
}

// RunConfig builds the strategy for cfg and runs its batch.
func (r *Runner) RunConfig(ctx context.Context, cfg domain.BatchConfig) ([]domain.TrialResult, error) {
	strat, err := strategy.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, strat, cfg.TrialCount, cfg.CandidateCount)
}
