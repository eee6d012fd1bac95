package models

// Severity captures impact levels.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Performance-issue type labels.
const (
	IssueSlowEndpoint  = "slow_endpoint"
	IssueHighErrorRate = "high_error_rate"
)

// Anomaly type labels.
const (
	AnomalyRequestSpike        = "request_spike"
	AnomalyResponseDegradation = "response_degradation"
	AnomalyErrorCluster        = "error_cluster"
	AnomalyUnusualUserBehavior = "unusual_user_behavior"
)

// Report is the complete analysis result for one batch of access-log records.
type Report struct {
	Summary              Summary              `json:"summary"`
	EndpointStats        []EndpointStat       `json:"endpoint_stats"`
	PerformanceIssues    []PerformanceIssue   `json:"performance_issues"`
	Recommendations      []string             `json:"recommendations"`
	HourlyDistribution   map[string]int       `json:"hourly_distribution"`
	TopUsersByRequests   []UserActivity       `json:"top_users_by_requests"`
	Anomalies            []Anomaly            `json:"anomalies"`
	CachingOpportunities []CachingOpportunity `json:"caching_opportunities"`
}

// Summary holds the global traffic figures. Average and error rate are nil
// when no record survived validation.
type Summary struct {
	TotalRequests       int       `json:"total_requests"`
	TimeRange           TimeRange `json:"time_range"`
	AvgResponseTimeMs   *float64  `json:"avg_response_time_ms"`
	ErrorRatePercentage *float64  `json:"error_rate_percentage"`
}

// TimeRange bounds the observed traffic as RFC 3339 instants, nil when empty.
type TimeRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// EndpointStat summarises one endpoint's traffic.
type EndpointStat struct {
	Endpoint          string  `json:"endpoint"`
	RequestCount      int     `json:"request_count"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	SlowestRequestMs  float64 `json:"slowest_request_ms"`
	FastestRequestMs  float64 `json:"fastest_request_ms"`
	ErrorCount        int     `json:"error_count"`
	MostCommonStatus  int     `json:"most_common_status"`
}

// PerformanceIssue flags an endpoint breaching a threshold band. Metric
// fields are populated per issue type.
type PerformanceIssue struct {
	Type                string   `json:"type"`
	Endpoint            string   `json:"endpoint"`
	AvgResponseTimeMs   *float64 `json:"avg_response_time_ms,omitempty"`
	ThresholdMs         *float64 `json:"threshold_ms,omitempty"`
	ErrorRatePercentage *float64 `json:"error_rate_percentage,omitempty"`
	Severity            Severity `json:"severity"`
}

// Anomaly is a windowed or behavioural finding. Fields are populated per
// anomaly type; unused fields are omitted from the encoded report.
type Anomaly struct {
	Type               string   `json:"type"`
	Endpoint           string   `json:"endpoint,omitempty"`
	Timestamp          string   `json:"timestamp,omitempty"`
	NormalRate         *float64 `json:"normal_rate,omitempty"`
	ActualRate         *int     `json:"actual_rate,omitempty"`
	AvgResponseTimeMs  *float64 `json:"avg_response_time_ms,omitempty"`
	PeakResponseTimeMs *float64 `json:"peak_response_time_ms,omitempty"`
	TimeWindow         string   `json:"time_window,omitempty"`
	ErrorCount         *int     `json:"error_count,omitempty"`
	UserID             string   `json:"user_id,omitempty"`
	RequestCount       *int     `json:"request_count,omitempty"`
	Severity           Severity `json:"severity"`
}

// UserActivity is one row of the top-users ranking.
type UserActivity struct {
	UserID       string `json:"user_id"`
	RequestCount int    `json:"request_count"`
}

// CachingOpportunity recommends caching for a stable, read-heavy endpoint.
type CachingOpportunity struct {
	Endpoint                 string  `json:"endpoint"`
	PotentialCacheHitRate    int     `json:"potential_cache_hit_rate"`
	CurrentRequests          int     `json:"current_requests"`
	PotentialRequestsSaved   int     `json:"potential_requests_saved"`
	EstimatedCostSavingsUSD  float64 `json:"estimated_cost_savings_usd"`
	RecommendedTTLMinutes    int     `json:"recommended_ttl_minutes"`
	RecommendationConfidence string  `json:"recommendation_confidence"`
}
