package domain

import (
	"errors"
	"fmt"
)

// Batch configuration errors
var (
	ErrInvalidTrialCount     = errors.New("trial count must be positive")
	ErrInvalidCandidateCount = errors.New("candidate count must be positive")
)

// BatchConfig represents one (strategy, trial count, candidate count) configuration.
type BatchConfig struct {
	StrategyType   StrategyType
	TrialCount     int // independent simulations in the batch
	CandidateCount int // n, the length of every candidate sequence
}

// Validate checks counts. Strategy-specific minimums are enforced by the strategy itself.
func (c BatchConfig) Validate() error {
	if c.TrialCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTrialCount, c.TrialCount)
	}
	if c.CandidateCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCandidateCount, c.CandidateCount)
	}
	return nil
}

// Default batch sizes
const (
	DefaultTrialCount = 500
)

// DefaultCandidateCounts are the sequence lengths every strategy is run against.
var DefaultCandidateCounts = []int{100, 1000, 1_000_000}

// DefaultSuite returns the nine default batches: each strategy in StrategyTypes order,
// each against DefaultCandidateCounts with DefaultTrialCount trials.
func DefaultSuite() []BatchConfig {
	suite := make([]BatchConfig, 0, len(StrategyTypes)*len(DefaultCandidateCounts))
	for _, st := range StrategyTypes {
		for _, n := range DefaultCandidateCounts {
			suite = append(suite, BatchConfig{
				StrategyType:   st,
				TrialCount:     DefaultTrialCount,
				CandidateCount: n,
			})
		}
	}
	return suite
}
