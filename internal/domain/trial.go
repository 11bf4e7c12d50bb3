package domain

// TrialResult is the outcome of one simulated pass over a candidate sequence.
type TrialResult struct {
	Rank int  // true rank of the selected candidate (1 = best)
	Win  bool // selection met the strategy's target rank
}

// OutcomeClass returns "WIN" or "LOSS".
func (r TrialResult) OutcomeClass() string {
	if r.Win {
		return OutcomeClassWin
	}
	return OutcomeClassLoss
}

// Outcome class constants
const (
	OutcomeClassWin  = "WIN"
	OutcomeClassLoss = "LOSS"
)
