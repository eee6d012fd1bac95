package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loupelabs/apilens/internal/cache"
	"github.com/loupelabs/apilens/internal/engine"
	"github.com/loupelabs/apilens/internal/metrics"
	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/utils"
)

// AnalyticsService fronts the engine with report caching, metrics, and
// latency tracking. The cache is read-through and keyed by a digest of the
// request, so it can never change an emitted report.
type AnalyticsService struct {
	logger    *slog.Logger
	analyzer  *engine.Analyzer
	cache     cache.Provider
	reportTTL time.Duration
	latencies *utils.LatencyTracker
}

// NewAnalyticsService constructs the service facade. A nil cache provider
// disables caching.
func NewAnalyticsService(logger *slog.Logger, analyzer *engine.Analyzer, cacheProvider cache.Provider, reportTTL time.Duration) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	return &AnalyticsService{
		logger:    logger,
		analyzer:  analyzer,
		cache:     cacheProvider,
		reportTTL: reportTTL,
		latencies: utils.NewLatencyTracker(1024),
	}
}

// Analyze runs one batch analysis and returns the report together with the
// analysis ID assigned to this call. Repeated identical requests are served
// from the report cache.
func (s *AnalyticsService) Analyze(ctx context.Context, req models.AnalyzeRequest) (models.Report, string, error) {
	analysisID := uuid.NewString()
	logger := s.logger.With(slog.String("analysis_id", analysisID))

	key := requestDigest(req)
	if key != "" {
		if payload, err := s.cache.Get(ctx, key); err == nil {
			var cached models.Report
			if err := json.Unmarshal(payload, &cached); err == nil {
				logger.Debug("report served from cache", slog.String("digest", key))
				metrics.ObserveAnalysis(0, metrics.OutcomeSuccess)
				return cached, analysisID, nil
			}
		}
	}

	analyzer := s.analyzer
	if req.Thresholds != nil {
		analyzer = engine.NewAnalyzer(s.logger, *req.Thresholds)
	}

	start := time.Now()
	report, err := analyzer.Analyze(ctx, req.Logs)
	duration := time.Since(start)
	if err != nil {
		metrics.ObserveAnalysis(duration, metrics.OutcomeError)
		logger.Warn("analysis rejected", slog.Any("error", err))
		return models.Report{}, analysisID, err
	}

	s.latencies.Observe(duration)
	metrics.ObserveAnalysis(duration, metrics.OutcomeSuccess)
	metrics.CountRecords(len(req.Logs), report.Summary.TotalRequests)
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		logger.Info("analysis latency",
			slog.Duration("p95", s.latencies.Percentile(95)),
			slog.Int("samples", count))
	}

	if key != "" {
		if payload, marshalErr := json.Marshal(report); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, key, payload, s.reportTTL); cacheErr != nil {
				logger.Warn("failed to cache report", slog.Any("error", cacheErr))
			}
		}
	}

	return report, analysisID, nil
}

// LatencyP95 returns the current p95 analysis latency.
func (s *AnalyticsService) LatencyP95() time.Duration {
	return s.latencies.Percentile(95)
}

// requestDigest derives a stable cache key from the request content. The
// empty string disables caching for this call.
func requestDigest(req models.AnalyzeRequest) string {
	if req.Logs == nil {
		return ""
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "report:" + hex.EncodeToString(sum[:])
}
