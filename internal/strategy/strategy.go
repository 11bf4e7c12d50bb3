package strategy

import (
	"errors"

	"secretary-lab/internal/domain"
)

// ErrInvalidInput is returned when a candidate sequence is too short for a strategy's
// observation phase.
var ErrInvalidInput = errors.New("invalid input")

// Strategy is a stopping rule over a randomly ordered candidate sequence.
// The sequence is split at MagicNumber(n) into an observation prefix, which is never
// selected from, and a decision suffix scanned once in arrival order.
type Strategy interface {
	// ID returns the strategy identifier.
	ID() string

	// Type returns the stopping rule variant.
	Type() domain.StrategyType

	// MagicNumber returns the observation prefix length for n candidates.
	// Always within [0, n].
	MagicNumber(n int) int

	// MinCandidates returns the smallest n the rule can run against.
	MinCandidates() int

	// TargetRank returns the rank a selection must have to count as a win.
	TargetRank() int

	// Select scans candidates once and returns the selected rank.
	// The rule never fails to choose: when nothing in the decision phase is
	// accepted the last candidate is taken.
	Select(candidates []int) (domain.TrialResult, error)
}
