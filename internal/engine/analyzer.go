package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loupelabs/apilens/internal/detectors"
	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/utils"
)

// ErrMissingRecords signals that the record collection itself was absent.
// This is the only error the analysis can return; per-record problems degrade
// to a silent skip.
var ErrMissingRecords = errors.New("records collection is required")

// Analyzer runs the single-pass access-log analysis: validate, fold, derive,
// assemble. One Analyze call owns all of its intermediate state; the result
// is a pure function of the input records and the injected thresholds.
type Analyzer struct {
	logger      *slog.Logger
	thresholds  models.Thresholds
	spikes      *detectors.SpikeDetector
	degradation *detectors.DegradationDetector
	clusters    *detectors.ClusterDetector
	behavior    *detectors.BehaviorDetector
	recommender *Recommender
}

// NewAnalyzer constructs an analyzer with the supplied threshold tables.
func NewAnalyzer(logger *slog.Logger, thresholds models.Thresholds) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger:      logger,
		thresholds:  thresholds,
		spikes:      detectors.NewSpikeDetector(),
		degradation: detectors.NewDegradationDetector(),
		clusters:    detectors.NewClusterDetector(),
		behavior:    detectors.NewBehaviorDetector(),
		recommender: NewRecommender(),
	}
}

// Analyze validates and folds the records, then derives issues, anomalies,
// and recommendations from the accumulated state. A nil records collection is
// an invalid argument; an empty one (or one with no valid record) yields the
// canonical empty report.
func (a *Analyzer) Analyze(ctx context.Context, records []models.RawRecord) (models.Report, error) {
	if records == nil {
		return models.Report{}, ErrMissingRecords
	}

	acc := newAccumulator()
	rejected := 0
	for _, rec := range records {
		ev, ok := validate(rec)
		if !ok {
			rejected++
			continue
		}
		acc.add(ev)
	}
	if rejected > 0 {
		a.logger.Debug("records rejected during validation",
			slog.Int("rejected", rejected),
			slog.Int("received", len(records)))
	}

	if acc.total == 0 {
		return emptyReport(), nil
	}

	return models.Report{
		Summary:              assembleSummary(acc),
		EndpointStats:        assembleEndpointStats(acc),
		PerformanceIssues:    classifyEndpoints(acc, a.thresholds),
		Recommendations:      a.recommender.Recommendations(acc),
		HourlyDistribution:   assembleHourly(acc),
		TopUsersByRequests:   assembleTopUsers(acc, 5),
		Anomalies:            a.detectAnomalies(acc),
		CachingOpportunities: a.recommender.CachingOpportunities(acc),
	}, nil
}

// detectAnomalies runs the windowed and behavioural detectors. Findings are
// grouped by type: spikes, degradations, error clusters, then user skew, each
// group in lexicographic endpoint order.
func (a *Analyzer) detectAnomalies(acc *accumulator) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)
	endpoints := acc.sortedEndpoints()

	for _, endpoint := range endpoints {
		spike, ok := a.spikes.Detect(acc.times[endpoint])
		if !ok {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:       models.AnomalyRequestSpike,
			Endpoint:   endpoint,
			Timestamp:  utils.FormatInstant(spike.Timestamp),
			NormalRate: ptr(spike.NormalRate),
			ActualRate: ptr(spike.Peak),
			Severity:   spike.Severity,
		})
	}

	for _, endpoint := range endpoints {
		agg := acc.endpoints[endpoint]
		deg, ok := a.degradation.Detect(agg.avgResponse(), agg.maxResponse, a.thresholds.ResponseTimeMs.Medium)
		if !ok {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:               models.AnomalyResponseDegradation,
			Endpoint:           endpoint,
			AvgResponseTimeMs:  ptr(deg.AvgResponseMs),
			PeakResponseTimeMs: ptr(deg.PeakResponseMs),
			Severity:           deg.Severity,
		})
	}

	for _, endpoint := range endpoints {
		cluster, ok := a.clusters.Detect(acc.errorTimes[endpoint])
		if !ok {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:       models.AnomalyErrorCluster,
			Endpoint:   endpoint,
			TimeWindow: utils.FormatWindow(cluster.Start, cluster.End),
			ErrorCount: ptr(cluster.Count),
			Severity:   cluster.Severity,
		})
	}

	if ranked := acc.rankedUsers(); len(ranked) > 0 {
		top := ranked[0]
		if skew, ok := a.behavior.Detect(top, acc.users[top], acc.total); ok {
			anomalies = append(anomalies, models.Anomaly{
				Type:         models.AnomalyUnusualUserBehavior,
				UserID:       skew.UserID,
				RequestCount: ptr(skew.Count),
				Severity:     skew.Severity,
			})
		}
	}

	return anomalies
}
