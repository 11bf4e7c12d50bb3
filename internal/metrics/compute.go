package metrics

import (
	"github.com/shopspring/decimal"

	"secretary-lab/internal/domain"
)

// WinRatePlaces is the number of decimal places the win rate is rounded to.
const WinRatePlaces = 4

// countWins counts trials whose selection met the target rank.
func countWins(results []domain.TrialResult) int {
	wins := 0
	for _, r := range results {
		if r.Win {
			wins++
		}
	}
	return wins
}

// computeWinRate returns wins / total rounded to WinRatePlaces, half away from zero.
// Returns zero if total is 0.
func computeWinRate(wins, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(wins)).
		Div(decimal.NewFromInt(int64(total))).
		Round(WinRatePlaces)
}

// computeMeanRank returns the unrounded mean selected rank.
func computeMeanRank(results []domain.TrialResult) decimal.Decimal {
	if len(results) == 0 {
		return decimal.Zero
	}

	var sum int64
	for _, r := range results {
		sum += int64(r.Rank)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(results))))
}

// roundRank rounds a mean rank to the nearest integer, half away from zero.
func roundRank(mean decimal.Decimal) int64 {
	return mean.Round(0).IntPart()
}

// computeRankRange returns the best (smallest) and worst (largest) selected rank.
func computeRankRange(results []domain.TrialResult) (best, worst int) {
	if len(results) == 0 {
		return 0, 0
	}

	best, worst = results[0].Rank, results[0].Rank
	for _, r := range results[1:] {
		if r.Rank < best {
			best = r.Rank
		}
		if r.Rank > worst {
			worst = r.Rank
		}
	}
	return best, worst
}
