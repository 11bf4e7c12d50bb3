package main

import (
	"context"
	"fmt"
	"io"

	"secretary-lab/internal/metrics"
	"secretary-lab/internal/reporting"
)

// runSuite runs every configured batch in order and writes one report block per batch.
// Stops at the first failing batch.
func runSuite(ctx context.Context, w io.Writer, a *app) error {
	for _, cfg := range a.suite {
		results, err := a.runner.RunConfig(ctx, cfg)
		if err != nil {
			return fmt.Errorf("batch %s trials=%d candidates=%d: %w",
				cfg.StrategyType, cfg.TrialCount, cfg.CandidateCount, err)
		}

		agg, err := metrics.ComputeAggregate(cfg, results)
		if err != nil {
			return err
		}

		report, err := reporting.NewBatchReport(agg)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, reporting.RenderText(report)); err != nil {
			return err
		}

		a.logger.Debug("batch reported",
			"strategy", cfg.StrategyType,
			"candidates", cfg.CandidateCount,
			"wins", agg.Wins,
			"best_rank", agg.BestRank,
			"worst_rank", agg.WorstRank,
		)
	}

	return nil
}

// logTotals logs one line per strategy from the metrics counters gathered after the suite.
func logTotals(a *app) {
	if a.metrics == nil || a.gatherer == nil {
		return
	}

	totals, err := a.metrics.Totals(a.gatherer)
	if err != nil {
		a.logger.Warn("gather metrics failed", "error", err)
		return
	}

	for _, t := range totals {
		a.logger.Info("strategy totals",
			"strategy", t.Strategy,
			"trials", int64(t.Trials),
			"wins", int64(t.Wins),
			"batches_success", int64(t.BatchesSuccess),
			"batches_error", int64(t.BatchesError),
		)
	}
}
