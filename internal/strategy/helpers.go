package strategy

import (
	"fmt"

	"secretary-lab/internal/domain"
)

// CheckCandidateCount returns ErrInvalidInput if n is below the minimum s can run against.
func CheckCandidateCount(s Strategy, n int) error {
	if n < s.MinCandidates() {
		return fmt.Errorf("%w: %s needs at least %d candidates, got %d",
			ErrInvalidInput, s.ID(), s.MinCandidates(), n)
	}
	return nil
}

// observationPrefix validates candidates against s and returns the magic number.
// The observation prefix must be non-empty for any floor to exist.
func observationPrefix(s Strategy, candidates []int) (int, error) {
	n := len(candidates)
	if err := CheckCandidateCount(s, n); err != nil {
		return 0, err
	}

	magic := s.MagicNumber(n)
	if magic < 1 || magic > n {
		return 0, fmt.Errorf("%w: %s observation prefix %d out of range for %d candidates",
			ErrInvalidInput, s.ID(), magic, n)
	}

	return magic, nil
}

// minRank returns the smallest rank in ranks. ranks must be non-empty.
func minRank(ranks []int) int {
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r < best {
			best = r
		}
	}
	return best
}

// secondMinRank returns the smallest rank in ranks other than floor.
// Returns sentinel when no such rank exists (ranks holds only floor).
func secondMinRank(ranks []int, floor, sentinel int) int {
	second := sentinel
	for _, r := range ranks {
		if r != floor && r < second {
			second = r
		}
	}
	return second
}

// selectBelowFloor returns the first candidate past the observation prefix with a
// rank better than the best rank observed in the prefix, or the last candidate.
func selectBelowFloor(candidates []int, magic int) int {
	floor := minRank(candidates[:magic])

	for _, k := range candidates[magic:] {
		if k < floor {
			return k
		}
	}

	return candidates[len(candidates)-1]
}

// buildResult pairs a selected rank with the strategy's win condition.
func buildResult(s Strategy, rank int) domain.TrialResult {
	return domain.TrialResult{
		Rank: rank,
		Win:  rank == s.TargetRank(),
	}
}
