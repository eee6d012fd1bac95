package engine

import "github.com/loupelabs/apilens/internal/models"

// classifyEndpoints emits severity-tagged performance issues for endpoints
// breaching the injected threshold tables. Endpoints are visited in
// lexicographic order, slow-endpoint check before error-rate check; the two
// checks are independent and one endpoint may emit both.
func classifyEndpoints(acc *accumulator, th models.Thresholds) []models.PerformanceIssue {
	issues := make([]models.PerformanceIssue, 0)
	for _, endpoint := range acc.sortedEndpoints() {
		agg := acc.endpoints[endpoint]
		if agg.count == 0 {
			continue
		}

		avg := agg.avgResponse()
		if severity, ok := th.ResponseTimeMs.Classify(avg); ok {
			issues = append(issues, models.PerformanceIssue{
				Type:              models.IssueSlowEndpoint,
				Endpoint:          endpoint,
				AvgResponseTimeMs: ptr(avg),
				ThresholdMs:       ptr(th.ResponseTimeMs.Medium),
				Severity:          severity,
			})
		}

		errRate := agg.errorRatePct()
		if severity, ok := th.ErrorRatePct.Classify(errRate); ok {
			issues = append(issues, models.PerformanceIssue{
				Type:                models.IssueHighErrorRate,
				Endpoint:            endpoint,
				ErrorRatePercentage: ptr(errRate),
				Severity:            severity,
			})
		}
	}
	return issues
}

func ptr[T any](v T) *T {
	return &v
}
