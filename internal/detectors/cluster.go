package detectors

import (
	"time"

	"github.com/loupelabs/apilens/internal/models"
)

// ErrorCluster is a burst of error responses concentrated in one window.
type ErrorCluster struct {
	Start    time.Time
	End      time.Time
	Count    int
	Severity models.Severity
}

// ClusterDetector finds the first window holding enough error events. Only
// the first qualifying window per endpoint is reported; overlapping windows
// after it are deliberately ignored.
type ClusterDetector struct {
	MinErrors    int // window must reach this many errors
	CriticalSize int // windows above this are critical severity
}

// NewClusterDetector creates a cluster detector with the stock cutoffs.
func NewClusterDetector() *ClusterDetector {
	return &ClusterDetector{MinErrors: 10, CriticalSize: 50}
}

// Detect scans the endpoint's error timestamps and returns the first window
// reaching MinErrors.
func (d *ClusterDetector) Detect(errorTimes []time.Time) (ErrorCluster, bool) {
	if len(errorTimes) == 0 {
		return ErrorCluster{}, false
	}

	sorted := sortAscending(errorTimes)
	left := 0
	for right := range sorted {
		for sorted[right].Sub(sorted[left]) > WindowSpan {
			left++
		}
		count := right - left + 1
		if count >= d.MinErrors {
			severity := models.SeverityHigh
			if count > d.CriticalSize {
				severity = models.SeverityCritical
			}
			return ErrorCluster{
				Start:    sorted[left],
				End:      sorted[right],
				Count:    count,
				Severity: severity,
			}, true
		}
	}
	return ErrorCluster{}, false
}
