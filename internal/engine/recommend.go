package engine

import (
	"fmt"
	"math"

	"github.com/loupelabs/apilens/internal/models"
)

// Recommender derives caching guidance from accumulated endpoint stats. It
// runs two independent rule sets: structured caching opportunities with a
// strict eligibility bar, and looser plain-text suggestions. The two lists
// overlap but are deliberately not reconciled.
type Recommender struct {
	MinRequests    int     // both rule sets require count strictly above this
	MinGetShare    float64 // opportunity: GET share must strictly exceed this
	MaxErrorRate   float64 // opportunity: error rate (percent) must stay below this
	MaxSpreadMs    float64 // opportunity: max-min response spread must stay below this
	HitShare       float64 // assumed fraction of requests a cache would absorb
	CostPerRequest float64 // placeholder USD cost per absorbed request
	TTLMinutes     int     // fixed TTL recommendation
	FastAvgMs      float64 // text suggestion: average response must stay below this
}

// NewRecommender creates a recommender with the stock rule constants.
func NewRecommender() *Recommender {
	return &Recommender{
		MinRequests:    100,
		MinGetShare:    0.8,
		MaxErrorRate:   2,
		MaxSpreadMs:    500,
		HitShare:       0.8,
		CostPerRequest: 0.0001,
		TTLMinutes:     15,
		FastAvgMs:      500,
	}
}

// CachingOpportunities returns structured candidates for endpoints that are
// busy, read-heavy, reliable, and latency-consistent.
func (r *Recommender) CachingOpportunities(acc *accumulator) []models.CachingOpportunity {
	opportunities := make([]models.CachingOpportunity, 0)
	for _, endpoint := range acc.sortedEndpoints() {
		agg := acc.endpoints[endpoint]
		if agg.count < 1 {
			continue
		}

		getShare := float64(agg.methodCounts["GET"]) / float64(agg.count)
		consistent := agg.maxResponse-agg.minResponse < r.MaxSpreadMs
		if agg.count <= r.MinRequests || getShare <= r.MinGetShare || agg.errorRatePct() >= r.MaxErrorRate || !consistent {
			continue
		}

		saved := int(float64(agg.count) * r.HitShare)
		opportunities = append(opportunities, models.CachingOpportunity{
			Endpoint:                 endpoint,
			PotentialCacheHitRate:    int(getShare * 100),
			CurrentRequests:          agg.count,
			PotentialRequestsSaved:   saved,
			EstimatedCostSavingsUSD:  round4(float64(saved) * r.CostPerRequest),
			RecommendedTTLMinutes:    r.TTLMinutes,
			RecommendationConfidence: "high",
		})
	}
	return opportunities
}

// Recommendations returns the plain-text suggestions for busy, fast
// endpoints. This rule set ignores methods and errors on purpose and may
// disagree with CachingOpportunities.
func (r *Recommender) Recommendations(acc *accumulator) []string {
	recommendations := make([]string, 0)
	for _, endpoint := range acc.sortedEndpoints() {
		agg := acc.endpoints[endpoint]
		if agg.count > r.MinRequests && agg.avgResponse() < r.FastAvgMs {
			recommendations = append(recommendations, fmt.Sprintf("Consider caching for %s (%d requests)", endpoint, agg.count))
		}
	}
	return recommendations
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
