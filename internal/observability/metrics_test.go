package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(prometheus.NewRegistry(), "test")
}

func TestMetrics_RecordTrial(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordTrial("CLASSIC", 1, true)
	m.RecordTrial("CLASSIC", 7, false)
	m.RecordTrial("SECOND_BEST", 2, true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TrialsSimulated.WithLabelValues("CLASSIC")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrialWins.WithLabelValues("CLASSIC")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrialsSimulated.WithLabelValues("SECOND_BEST")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrialWins.WithLabelValues("SECOND_BEST")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SelectedRank))
}

func TestMetrics_RecordBatch(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordBatch("EXPECTED_VALUE", 0.25, nil)
	m.RecordBatch("EXPECTED_VALUE", 0.01, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchesRun.WithLabelValues("EXPECTED_VALUE", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchesRun.WithLabelValues("EXPECTED_VALUE", StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BatchDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordTrial("CLASSIC", 1, true)
		m.RecordBatch("CLASSIC", 1, nil)
	})
}

func TestMetrics_Totals(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	m.RecordTrial("CLASSIC", 1, true)
	m.RecordTrial("CLASSIC", 4, false)
	m.RecordTrial("CLASSIC", 1, true)
	m.RecordBatch("CLASSIC", 0.1, nil)
	m.RecordTrial("SECOND_BEST", 3, false)
	m.RecordBatch("SECOND_BEST", 0.1, nil)
	m.RecordBatch("SECOND_BEST", 0.1, errors.New("boom"))

	totals, err := m.Totals(reg)
	require.NoError(t, err)

	expected := []StrategyTotals{
		{Strategy: "CLASSIC", Trials: 3, Wins: 2, BatchesSuccess: 1},
		{Strategy: "SECOND_BEST", Trials: 1, Wins: 0, BatchesSuccess: 1, BatchesError: 1},
	}
	assert.Equal(t, expected, totals)
}

func TestMetrics_Totals_IgnoresOtherNamespaces(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")
	other := NewMetrics(reg, "other")

	other.RecordTrial("CLASSIC", 1, true)
	m.RecordTrial("EXPECTED_VALUE", 2, false)

	totals, err := m.Totals(reg)
	require.NoError(t, err)
	assert.Equal(t, []StrategyTotals{{Strategy: "EXPECTED_VALUE", Trials: 1}}, totals)
}

func TestMetrics_Totals_Empty(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	totals, err := m.Totals(reg)
	require.NoError(t, err)
	assert.Empty(t, totals)

	var nilMetrics *Metrics
	totals, err = nilMetrics.Totals(reg)
	assert.NoError(t, err)
	assert.Nil(t, totals)
}
