package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels completed analyses.
	OutcomeSuccess = "success"
	// OutcomeError labels analyses that failed (invalid argument or internal).
	OutcomeError = "error"
)

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apilens",
			Name:      "analyses_total",
			Help:      "Total number of analyses handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	analysisDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "apilens",
			Name:      "analysis_seconds",
			Help:      "Analysis latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	recordsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apilens",
			Name:      "records_received_total",
			Help:      "Raw records received across all analyses.",
		},
	)

	recordsValidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apilens",
			Name:      "records_valid_total",
			Help:      "Records that passed validation across all analyses.",
		},
	)
)

// Register attaches apilens collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		analysesTotal,
		analysisDurationSeconds,
		recordsReceivedTotal,
		recordsValidTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveAnalysis records an analysis duration and outcome label.
func ObserveAnalysis(duration time.Duration, outcome string) {
	label := outcome
	if label != OutcomeError {
		label = OutcomeSuccess
	}
	analysesTotal.WithLabelValues(label).Inc()
	if duration < 0 {
		duration = 0
	}
	analysisDurationSeconds.Observe(duration.Seconds())
}

// CountRecords tracks received versus valid record volumes for one analysis.
func CountRecords(received, valid int) {
	if received > 0 {
		recordsReceivedTotal.Add(float64(received))
	}
	if valid > 0 {
		recordsValidTotal.Add(float64(valid))
	}
}
