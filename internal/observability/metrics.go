// Package observability provides Prometheus metrics for simulation runs.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid; all Record methods are no-ops on a nil receiver.
type Metrics struct {
	// Trial metrics
	TrialsSimulated *prometheus.CounterVec
	TrialWins       *prometheus.CounterVec
	SelectedRank    *prometheus.HistogramVec

	// Batch metrics
	BatchesRun    *prometheus.CounterVec
	BatchDuration *prometheus.HistogramVec

	namespace string
}

// NewMetrics creates a new Metrics instance with all metrics registered on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "secretary_lab"
	}
	factory := promauto.With(reg)

	return &Metrics{
		namespace: namespace,

		// Trial metrics
		TrialsSimulated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "trials_simulated_total",
			Help:      "Total number of simulated trials by strategy",
		}, []string{"strategy"}),
		TrialWins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "trial_wins_total",
			Help:      "Total number of trials whose selection met the strategy target rank",
		}, []string{"strategy"}),
		SelectedRank: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "selected_rank",
			Help:      "Rank of the selected candidate per trial",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 11),
		}, []string{"strategy"}),

		// Batch metrics
		BatchesRun: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Total number of trial batches by strategy and status",
		}, []string{"strategy", "status"}),
		BatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "duration_seconds",
			Help:      "Trial batch duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"strategy"}),
	}
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer, "")

// RecordTrial records one trial outcome.
func (m *Metrics) RecordTrial(strategy string, rank int, win bool) {
	if m == nil {
		return
	}
	m.TrialsSimulated.WithLabelValues(strategy).Inc()
	m.SelectedRank.WithLabelValues(strategy).Observe(float64(rank))
	if win {
		m.TrialWins.WithLabelValues(strategy).Inc()
	}
}

// RecordBatch records a finished batch.
func (m *Metrics) RecordBatch(strategy string, durationSeconds float64, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.BatchesRun.WithLabelValues(strategy, status).Inc()
	m.BatchDuration.WithLabelValues(strategy).Observe(durationSeconds)
}
