package reporting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"secretary-lab/internal/domain"
)

// ErrUnknownStrategyType is returned when no description exists for a strategy type.
var ErrUnknownStrategyType = errors.New("no description for strategy type")

var hundred = decimal.NewFromInt(100)

// Describe names the objective a strategy optimizes over n candidates.
func Describe(t domain.StrategyType, candidateCount int) (string, error) {
	switch t {
	case domain.StrategyTypeClassic:
		return fmt.Sprintf("searching for best out of %d candidates", candidateCount), nil
	case domain.StrategyTypeExpectedValue:
		return fmt.Sprintf("when trying to get the best expected value of %d candidates", candidateCount), nil
	case domain.StrategyTypeSecondBest:
		return fmt.Sprintf("when trying to get the second best of %d candidates", candidateCount), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategyType, t)
	}
}

// NewBatchReport builds the report for an aggregate.
func NewBatchReport(agg *domain.BatchAggregate) (*BatchReport, error) {
	desc, err := Describe(agg.StrategyType, agg.CandidateCount)
	if err != nil {
		return nil, err
	}

	return &BatchReport{
		Description:   desc,
		TrialCount:    agg.TrialCount,
		WinPercentage: agg.WinRate.Mul(hundred),
		AverageRank:   agg.AverageRank,
	}, nil
}
