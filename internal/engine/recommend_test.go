package engine

import (
	"context"
	"testing"
	"time"

	"github.com/loupelabs/apilens/internal/models"
)

func TestCachingOpportunityEligibleEndpoint(t *testing.T) {
	// 150 requests, 95% GET, no errors, tight response spread.
	records := make([]models.RawRecord, 0, 150)
	for i := 0; i < 150; i++ {
		method := "GET"
		if i < 7 {
			method = "POST"
		}
		responseMs := 100.0
		if i%2 == 0 {
			responseMs = 150
		}
		records = append(records, record(at(time.Duration(i)*time.Minute), "/api/catalog", method, responseMs, 200, "u1"))
	}

	report, err := newTestAnalyzer().Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.CachingOpportunities) != 1 {
		t.Fatalf("expected one caching opportunity, got %+v", report.CachingOpportunities)
	}
	opp := report.CachingOpportunities[0]
	if opp.Endpoint != "/api/catalog" {
		t.Fatalf("unexpected endpoint: %q", opp.Endpoint)
	}
	if opp.PotentialCacheHitRate != 95 {
		t.Fatalf("expected hit rate 95, got %d", opp.PotentialCacheHitRate)
	}
	if opp.CurrentRequests != 150 || opp.PotentialRequestsSaved != 120 {
		t.Fatalf("unexpected volumes: %+v", opp)
	}
	if opp.EstimatedCostSavingsUSD != 0.012 {
		t.Fatalf("expected savings 0.012, got %v", opp.EstimatedCostSavingsUSD)
	}
	if opp.RecommendedTTLMinutes != 15 || opp.RecommendationConfidence != "high" {
		t.Fatalf("unexpected TTL or confidence: %+v", opp)
	}

	if len(report.Recommendations) != 1 {
		t.Fatalf("expected one text recommendation, got %+v", report.Recommendations)
	}
	if report.Recommendations[0] != "Consider caching for /api/catalog (150 requests)" {
		t.Fatalf("unexpected recommendation text: %q", report.Recommendations[0])
	}
}

func TestCachingRuleSetsDiverge(t *testing.T) {
	// A busy, fast, write-heavy endpoint earns the text suggestion but never
	// the structured opportunity.
	records := make([]models.RawRecord, 0, 120)
	for i := 0; i < 120; i++ {
		records = append(records, record(at(time.Duration(i)*time.Minute), "/api/orders", "POST", 100, 200, "u1"))
	}

	report, err := newTestAnalyzer().Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.CachingOpportunities) != 0 {
		t.Fatalf("expected no opportunity for write-heavy traffic, got %+v", report.CachingOpportunities)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("expected the text suggestion to survive, got %+v", report.Recommendations)
	}
}

func TestCachingOpportunityRejectsErrorProneEndpoint(t *testing.T) {
	// Exactly 2% errors; the rule demands strictly below 2%.
	records := make([]models.RawRecord, 0, 150)
	for i := 0; i < 150; i++ {
		status := 200
		if i < 3 {
			status = 500
		}
		records = append(records, record(at(time.Duration(i)*time.Minute), "/api/catalog", "GET", 100, status, "u1"))
	}

	report, err := newTestAnalyzer().Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.CachingOpportunities) != 0 {
		t.Fatalf("expected no opportunity at the error-rate boundary, got %+v", report.CachingOpportunities)
	}
}

func TestCachingRulesRequireStrictVolume(t *testing.T) {
	// Exactly 100 requests sits on the volume cutoff for both rule sets.
	records := make([]models.RawRecord, 0, 100)
	for i := 0; i < 100; i++ {
		records = append(records, record(at(time.Duration(i)*time.Minute), "/api/catalog", "GET", 100, 200, "u1"))
	}

	report, err := newTestAnalyzer().Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.CachingOpportunities) != 0 || len(report.Recommendations) != 0 {
		t.Fatalf("expected no caching output at exactly 100 requests, got %+v / %+v",
			report.CachingOpportunities, report.Recommendations)
	}
}

func TestCachingOpportunityRejectsInconsistentLatency(t *testing.T) {
	records := make([]models.RawRecord, 0, 150)
	for i := 0; i < 150; i++ {
		responseMs := 50.0
		if i == 0 {
			responseMs = 600 // spread of 550ms breaks consistency
		}
		records = append(records, record(at(time.Duration(i)*time.Minute), "/api/catalog", "GET", responseMs, 200, "u1"))
	}

	report, err := newTestAnalyzer().Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.CachingOpportunities) != 0 {
		t.Fatalf("expected no opportunity for inconsistent latency, got %+v", report.CachingOpportunities)
	}
}
