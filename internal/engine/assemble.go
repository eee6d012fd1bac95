package engine

import (
	"sort"
	"time"

	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/utils"
)

// emptyReport is the canonical zero-valued result for inputs where no record
// survived validation. All lists are empty (not absent), the time range and
// rates are null.
func emptyReport() models.Report {
	return models.Report{
		EndpointStats:        []models.EndpointStat{},
		PerformanceIssues:    []models.PerformanceIssue{},
		Recommendations:      []string{},
		HourlyDistribution:   map[string]int{},
		TopUsersByRequests:   []models.UserActivity{},
		Anomalies:            []models.Anomaly{},
		CachingOpportunities: []models.CachingOpportunity{},
	}
}

func assembleSummary(acc *accumulator) models.Summary {
	avg := acc.sumResponse / float64(acc.total)
	errRate := 100 * float64(acc.totalErrors()) / float64(acc.total)
	return models.Summary{
		TotalRequests: acc.total,
		TimeRange: models.TimeRange{
			Start: ptr(utils.FormatInstant(acc.earliest)),
			End:   ptr(utils.FormatInstant(acc.latest)),
		},
		AvgResponseTimeMs:   ptr(avg),
		ErrorRatePercentage: ptr(errRate),
	}
}

// assembleEndpointStats builds per-endpoint rows sorted by descending request
// count; ties keep first-seen input order.
func assembleEndpointStats(acc *accumulator) []models.EndpointStat {
	stats := make([]models.EndpointStat, 0, len(acc.endpointOrder))
	for _, endpoint := range acc.endpointOrder {
		agg := acc.endpoints[endpoint]
		stats = append(stats, models.EndpointStat{
			Endpoint:          endpoint,
			RequestCount:      agg.count,
			AvgResponseTimeMs: agg.avgResponse(),
			SlowestRequestMs:  agg.maxResponse,
			FastestRequestMs:  agg.minResponse,
			ErrorCount:        agg.errors,
			MostCommonStatus:  agg.mostCommonStatus(),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].RequestCount > stats[j].RequestCount
	})
	return stats
}

// assembleHourly re-keys hour buckets to "HH:MM" labels. Buckets from
// different days that share a wall-clock hour are summed.
func assembleHourly(acc *accumulator) map[string]int {
	hours := make([]int64, 0, len(acc.hourly))
	for hour := range acc.hourly {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i] < hours[j] })

	labelled := make(map[string]int, len(hours))
	for _, hour := range hours {
		label := time.Unix(hour, 0).UTC().Format("15:04")
		labelled[label] += acc.hourly[hour]
	}
	return labelled
}

func assembleTopUsers(acc *accumulator, limit int) []models.UserActivity {
	ranked := acc.rankedUsers()
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	top := make([]models.UserActivity, 0, len(ranked))
	for _, user := range ranked {
		top = append(top, models.UserActivity{UserID: user, RequestCount: acc.users[user]})
	}
	return top
}
