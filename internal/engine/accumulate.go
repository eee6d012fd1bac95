package engine

import (
	"math"
	"sort"
	"time"
)

// endpointAggregate holds the running totals for one endpoint. Min starts at
// +Inf and max at -Inf so a zero-count aggregate stays distinguishable.
type endpointAggregate struct {
	count        int
	sumResponse  float64
	minResponse  float64
	maxResponse  float64
	errors       int
	statusCounts map[int]int
	methodCounts map[string]int
}

func (a *endpointAggregate) avgResponse() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sumResponse / float64(a.count)
}

func (a *endpointAggregate) errorRatePct() float64 {
	if a.count == 0 {
		return 0
	}
	return 100 * float64(a.errors) / float64(a.count)
}

// mostCommonStatus returns the most frequent status code; ties pick the
// lowest code.
func (a *endpointAggregate) mostCommonStatus() int {
	codes := make([]int, 0, len(a.statusCounts))
	for code := range a.statusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	best := 0
	bestCount := 0
	for _, code := range codes {
		if a.statusCounts[code] > bestCount {
			best = code
			bestCount = a.statusCounts[code]
		}
	}
	return best
}

// accumulator folds validated events into the per-run aggregates. It is owned
// by exactly one analysis call and never shared.
type accumulator struct {
	total       int
	sumResponse float64
	earliest    time.Time
	latest      time.Time

	hourly map[int64]int // unix second of the UTC-truncated hour -> count

	endpoints     map[string]*endpointAggregate
	endpointOrder []string // endpoints in first-seen input order

	users     map[string]int
	userOrder []string // users in first-seen input order

	times      map[string][]time.Time // per-endpoint event timestamps, arrival order
	errorTimes map[string][]time.Time // per-endpoint error timestamps, arrival order
}

func newAccumulator() *accumulator {
	return &accumulator{
		hourly:     make(map[int64]int),
		endpoints:  make(map[string]*endpointAggregate),
		users:      make(map[string]int),
		times:      make(map[string][]time.Time),
		errorTimes: make(map[string][]time.Time),
	}
}

// add folds one validated event into every aggregate.
func (acc *accumulator) add(ev event) {
	if acc.total == 0 || ev.Timestamp.Before(acc.earliest) {
		acc.earliest = ev.Timestamp
	}
	if acc.total == 0 || ev.Timestamp.After(acc.latest) {
		acc.latest = ev.Timestamp
	}
	acc.total++
	acc.sumResponse += ev.ResponseTimeMs

	hour := ev.Timestamp.UTC().Truncate(time.Hour)
	acc.hourly[hour.Unix()]++

	agg := acc.ensureEndpoint(ev.Endpoint)
	agg.count++
	agg.sumResponse += ev.ResponseTimeMs
	agg.minResponse = math.Min(agg.minResponse, ev.ResponseTimeMs)
	agg.maxResponse = math.Max(agg.maxResponse, ev.ResponseTimeMs)
	if ev.StatusCode >= 400 {
		agg.errors++
	}
	agg.statusCounts[ev.StatusCode]++
	agg.methodCounts[ev.Method]++

	if _, seen := acc.users[ev.UserID]; !seen {
		acc.userOrder = append(acc.userOrder, ev.UserID)
	}
	acc.users[ev.UserID]++

	acc.times[ev.Endpoint] = append(acc.times[ev.Endpoint], ev.Timestamp)
	if ev.StatusCode >= 400 {
		acc.errorTimes[ev.Endpoint] = append(acc.errorTimes[ev.Endpoint], ev.Timestamp)
	}
}

func (acc *accumulator) ensureEndpoint(endpoint string) *endpointAggregate {
	agg, ok := acc.endpoints[endpoint]
	if !ok {
		agg = &endpointAggregate{
			minResponse:  math.Inf(1),
			maxResponse:  math.Inf(-1),
			statusCounts: make(map[int]int),
			methodCounts: make(map[string]int),
		}
		acc.endpoints[endpoint] = agg
		acc.endpointOrder = append(acc.endpointOrder, endpoint)
	}
	return agg
}

func (acc *accumulator) totalErrors() int {
	sum := 0
	for _, agg := range acc.endpoints {
		sum += agg.errors
	}
	return sum
}

// sortedEndpoints returns endpoint keys in lexicographic order. Go's map
// iteration is randomized, so every derivation pass uses this ordering to
// keep reports reproducible.
func (acc *accumulator) sortedEndpoints() []string {
	sorted := append([]string(nil), acc.endpointOrder...)
	sort.Strings(sorted)
	return sorted
}

// rankedUsers returns users by descending request count, ties broken by
// first-seen input order.
func (acc *accumulator) rankedUsers() []string {
	ranked := append([]string(nil), acc.userOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return acc.users[ranked[i]] > acc.users[ranked[j]]
	})
	return ranked
}
