package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuite(t *testing.T) {
	suite := DefaultSuite()
	require.Len(t, suite, 9)

	expected := []BatchConfig{
		{StrategyTypeClassic, 500, 100},
		{StrategyTypeClassic, 500, 1000},
		{StrategyTypeClassic, 500, 1_000_000},
		{StrategyTypeExpectedValue, 500, 100},
		{StrategyTypeExpectedValue, 500, 1000},
		{StrategyTypeExpectedValue, 500, 1_000_000},
		{StrategyTypeSecondBest, 500, 100},
		{StrategyTypeSecondBest, 500, 1000},
		{StrategyTypeSecondBest, 500, 1_000_000},
	}
	assert.Equal(t, expected, suite)

	for _, cfg := range suite {
		assert.NoError(t, cfg.Validate())
	}
}

func TestBatchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BatchConfig
		wantErr error
	}{
		{"valid", BatchConfig{StrategyTypeClassic, 1, 1}, nil},
		{"zero trials", BatchConfig{StrategyTypeClassic, 0, 10}, ErrInvalidTrialCount},
		{"negative trials", BatchConfig{StrategyTypeClassic, -5, 10}, ErrInvalidTrialCount},
		{"zero candidates", BatchConfig{StrategyTypeSecondBest, 10, 0}, ErrInvalidCandidateCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTrialResult_OutcomeClass(t *testing.T) {
	assert.Equal(t, OutcomeClassWin, TrialResult{Rank: 1, Win: true}.OutcomeClass())
	assert.Equal(t, OutcomeClassLoss, TrialResult{Rank: 4}.OutcomeClass())
}

func TestStrategyType_IsValid(t *testing.T) {
	for _, st := range StrategyTypes {
		assert.True(t, st.IsValid(), st.String())
	}
	assert.False(t, StrategyType("").IsValid())
	assert.False(t, StrategyType("POSTDOC").IsValid())
}
