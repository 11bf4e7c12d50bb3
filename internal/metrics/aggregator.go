package metrics

import (
	"errors"

	"secretary-lab/internal/domain"
)

// ErrNoTrials is returned when no trial results are available for aggregation.
var ErrNoTrials = errors.New("no trials available for aggregation")

// ComputeAggregate reduces a batch of trial results to its aggregate statistics.
// Win rate is rounded to 4 decimal places and average rank to the nearest integer,
// both half away from zero.
// Returns ErrNoTrials if results is empty.
func ComputeAggregate(cfg domain.BatchConfig, results []domain.TrialResult) (*domain.BatchAggregate, error) {
	n := len(results)
	if n == 0 {
		return nil, ErrNoTrials
	}

	wins := countWins(results)
	mean := computeMeanRank(results)
	best, worst := computeRankRange(results)

	return &domain.BatchAggregate{
		StrategyType:   cfg.StrategyType,
		TrialCount:     cfg.TrialCount,
		CandidateCount: cfg.CandidateCount,

		// Counts
		TotalTrials: n,
		Wins:        wins,
		Losses:      n - wins,

		WinRate: computeWinRate(wins, n),

		// Rank distribution
		MeanRank:    mean.InexactFloat64(),
		AverageRank: roundRank(mean),
		BestRank:    best,
		WorstRank:   worst,
	}, nil
}
