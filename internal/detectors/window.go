// Package detectors turns per-endpoint event sequences into anomaly findings
// using sliding-time-window scans.
package detectors

import (
	"sort"
	"time"
)

// WindowSpan is the fixed trailing span shared by all window scans. An event
// exactly WindowSpan behind the window's right edge is still inside it.
const WindowSpan = 300 * time.Second

// sortAscending returns a sorted copy, leaving the caller's slice untouched.
func sortAscending(times []time.Time) []time.Time {
	sorted := append([]time.Time(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted
}

// windowCounts computes, for each position in the sorted sequence, how many
// events fall within the trailing span ending at that event. Two-pointer scan,
// linear time.
func windowCounts(sorted []time.Time, span time.Duration) []int {
	counts := make([]int, len(sorted))
	left := 0
	for right := range sorted {
		for sorted[right].Sub(sorted[left]) > span {
			left++
		}
		counts[right] = right - left + 1
	}
	return counts
}
