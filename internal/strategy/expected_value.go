package strategy

import (
	"math"

	"secretary-lab/internal/domain"
)

// ExpectedValueStrategy minimizes the expected rank of the selected candidate.
// Same acceptance rule as ClassicStrategy with a ceil(sqrt(n)) observation window.
type ExpectedValueStrategy struct{}

// NewExpectedValueStrategy creates a new ExpectedValueStrategy.
func NewExpectedValueStrategy() *ExpectedValueStrategy {
	return &ExpectedValueStrategy{}
}

// ID returns the strategy identifier.
func (s *ExpectedValueStrategy) ID() string {
	return string(domain.StrategyTypeExpectedValue)
}

// Type returns domain.StrategyTypeExpectedValue.
func (s *ExpectedValueStrategy) Type() domain.StrategyType {
	return domain.StrategyTypeExpectedValue
}

// MagicNumber returns ceil(sqrt(n)).
func (s *ExpectedValueStrategy) MagicNumber(n int) int {
	if n < 1 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// MinCandidates returns 1.
func (s *ExpectedValueStrategy) MinCandidates() int {
	return 1
}

// TargetRank returns 1.
func (s *ExpectedValueStrategy) TargetRank() int {
	return 1
}

// Select applies the best-so-far rule.
func (s *ExpectedValueStrategy) Select(candidates []int) (domain.TrialResult, error) {
	magic, err := observationPrefix(s, candidates)
	if err != nil {
		return domain.TrialResult{}, err
	}

	return buildResult(s, selectBelowFloor(candidates, magic)), nil
}

// Ensure ExpectedValueStrategy implements Strategy
var _ Strategy = (*ExpectedValueStrategy)(nil)
