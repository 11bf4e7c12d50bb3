package strategy

import "secretary-lab/internal/domain"

// SecondBestStrategy targets the second-best candidate overall.
// Observes the first floor(n/2) candidates, tracking the best (floor) and second-best
// (subfloor) ranks seen. In the decision phase it stops on a rank strictly between
// floor and subfloor, and never on a new overall best, which instead becomes the floor.
type SecondBestStrategy struct{}

// NewSecondBestStrategy creates a new SecondBestStrategy.
func NewSecondBestStrategy() *SecondBestStrategy {
	return &SecondBestStrategy{}
}

// ID returns the strategy identifier.
func (s *SecondBestStrategy) ID() string {
	return string(domain.StrategyTypeSecondBest)
}

// Type returns domain.StrategyTypeSecondBest.
func (s *SecondBestStrategy) Type() domain.StrategyType {
	return domain.StrategyTypeSecondBest
}

// MagicNumber returns floor(n / 2).
func (s *SecondBestStrategy) MagicNumber(n int) int {
	if n < 1 {
		return 0
	}
	return n / 2
}

// MinCandidates returns 2. A single candidate leaves an empty observation prefix.
func (s *SecondBestStrategy) MinCandidates() int {
	return 2
}

// TargetRank returns 2.
func (s *SecondBestStrategy) TargetRank() int {
	return 2
}

// Select applies the two-threshold rule.
func (s *SecondBestStrategy) Select(candidates []int) (domain.TrialResult, error) {
	magic, err := observationPrefix(s, candidates)
	if err != nil {
		return domain.TrialResult{}, err
	}

	floor, subfloor := thresholds(candidates[:magic], len(candidates))
	return buildResult(s, selectBetweenThresholds(candidates, magic, floor, subfloor)), nil
}

// thresholds returns the best and second-best ranks in the observation prefix.
// A prefix of one candidate has no second-best; subfloor is then n+1, worse than any rank.
func thresholds(prefix []int, n int) (floor, subfloor int) {
	floor = minRank(prefix)
	subfloor = secondMinRank(prefix, floor, n+1)
	return floor, subfloor
}

// selectBetweenThresholds scans the decision phase with a running (floor, subfloor) pair.
// The last candidate is always taken if reached.
func selectBetweenThresholds(candidates []int, magic, floor, subfloor int) int {
	last := len(candidates) - 1

	for i := magic; i <= last; i++ {
		k := candidates[i]
		switch {
		case k < subfloor && k > floor:
			return k
		case i == last:
			return k
		case k < floor:
			// new overall best: previous floor is now the second-best seen
			subfloor, floor = floor, k
		}
	}

	return candidates[last]
}

// Ensure SecondBestStrategy implements Strategy
var _ Strategy = (*SecondBestStrategy)(nil)
