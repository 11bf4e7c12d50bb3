package domain

import "github.com/shopspring/decimal"

// StrategyType identifies a stopping rule.
type StrategyType string

// Strategy type constants
const (
	StrategyTypeClassic       StrategyType = "CLASSIC"
	StrategyTypeExpectedValue StrategyType = "EXPECTED_VALUE"
	StrategyTypeSecondBest    StrategyType = "SECOND_BEST"
)

// StrategyTypes lists every stopping rule in suite order.
var StrategyTypes = []StrategyType{
	StrategyTypeClassic,
	StrategyTypeExpectedValue,
	StrategyTypeSecondBest,
}

// String returns the strategy type name.
func (t StrategyType) String() string {
	return string(t)
}

// BatchAggregate represents per-batch aggregate statistics.
// Derived once from a batch of trial results and never mutated.
type BatchAggregate struct {
	StrategyType   StrategyType
	TrialCount     int
	CandidateCount int

	// Counts
	TotalTrials int
	Wins        int
	Losses      int

	// Win rate: wins / total_trials, rounded to 4 decimal places
	WinRate decimal.Decimal

	// Rank distribution
	MeanRank    float64 // unrounded mean of selected ranks
	AverageRank int64   // MeanRank rounded to the nearest integer
	BestRank    int
	WorstRank   int
}

// IsValid checks if the strategy type is a known stopping rule.
func (t StrategyType) IsValid() bool {
	switch t {
	case StrategyTypeClassic, StrategyTypeExpectedValue, StrategyTypeSecondBest:
		return true
	default:
		return false
	}
}
