package observability

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// StrategyTotals holds counter totals for one strategy label.
type StrategyTotals struct {
	Strategy       string
	Trials         float64
	Wins           float64
	BatchesSuccess float64
	BatchesError   float64
}

// Totals gathers g and sums this instance's trial and batch counters per strategy.
// Results are sorted by strategy for deterministic output.
func (m *Metrics) Totals(g prometheus.Gatherer) ([]StrategyTotals, error) {
	if m == nil {
		return nil, nil
	}

	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	trialsName := prometheus.BuildFQName(m.namespace, "simulation", "trials_simulated_total")
	winsName := prometheus.BuildFQName(m.namespace, "simulation", "trial_wins_total")
	batchesName := prometheus.BuildFQName(m.namespace, "batch", "runs_total")

	byStrategy := make(map[string]*StrategyTotals)
	get := func(strategy string) *StrategyTotals {
		t, ok := byStrategy[strategy]
		if !ok {
			t = &StrategyTotals{Strategy: strategy}
			byStrategy[strategy] = t
		}
		return t
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			strategy := labelValue(metric, "strategy")

			switch mf.GetName() {
			case trialsName:
				get(strategy).Trials += value
			case winsName:
				get(strategy).Wins += value
			case batchesName:
				if labelValue(metric, "status") == StatusError {
					get(strategy).BatchesError += value
				} else {
					get(strategy).BatchesSuccess += value
				}
			}
		}
	}

	totals := make([]StrategyTotals, 0, len(byStrategy))
	for _, t := range byStrategy {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Strategy < totals[j].Strategy
	})

	return totals, nil
}

// labelValue returns the value of the named label, or "" if absent.
func labelValue(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
