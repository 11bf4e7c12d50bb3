package strategy

import (
	"errors"
	"fmt"

	"secretary-lab/internal/domain"
)

// ErrUnimplementedStrategy is returned for a strategy type with no concrete rule.
var ErrUnimplementedStrategy = errors.New("unimplemented strategy")

// FromType creates the Strategy for a stopping rule variant.
func FromType(t domain.StrategyType) (Strategy, error) {
	switch t {
	case domain.StrategyTypeClassic:
		return NewClassicStrategy(), nil
	case domain.StrategyTypeExpectedValue:
		return NewExpectedValueStrategy(), nil
	case domain.StrategyTypeSecondBest:
		return NewSecondBestStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnimplementedStrategy, t)
	}
}

// FromConfig creates the Strategy for a batch and checks the batch's candidate
// count against the strategy minimum before any trial runs.
func FromConfig(cfg domain.BatchConfig) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := FromType(cfg.StrategyType)
	if err != nil {
		return nil, err
	}

	if err := CheckCandidateCount(s, cfg.CandidateCount); err != nil {
		return nil, err
	}

	return s, nil
}
