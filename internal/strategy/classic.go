package strategy

import (
	"math"

	"secretary-lab/internal/domain"
)

// ClassicStrategy maximizes the probability of selecting the best candidate.
// Observes the first ceil(n/e) candidates, then takes the first one better than all of them.
type ClassicStrategy struct{}

// NewClassicStrategy creates a new ClassicStrategy.
func NewClassicStrategy() *ClassicStrategy {
	return &ClassicStrategy{}
}

// ID returns the strategy identifier.
func (s *ClassicStrategy) ID() string {
	return string(domain.StrategyTypeClassic)
}

// Type returns domain.StrategyTypeClassic.
func (s *ClassicStrategy) Type() domain.StrategyType {
	return domain.StrategyTypeClassic
}

// MagicNumber returns ceil(n / e).
func (s *ClassicStrategy) MagicNumber(n int) int {
	if n < 1 {
		return 0
	}
	return int(math.Ceil(float64(n) / math.E))
}

// MinCandidates returns 1.
func (s *ClassicStrategy) MinCandidates() int {
	return 1
}

// TargetRank returns 1.
func (s *ClassicStrategy) TargetRank() int {
	return 1
}

// Select applies the best-so-far rule.
func (s *ClassicStrategy) Select(candidates []int) (domain.TrialResult, error) {
	magic, err := observationPrefix(s, candidates)
	if err != nil {
		return domain.TrialResult{}, err
	}

	return buildResult(s, selectBelowFloor(candidates, magic)), nil
}

// Ensure ClassicStrategy implements Strategy
var _ Strategy = (*ClassicStrategy)(nil)
