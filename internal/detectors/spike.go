package detectors

import (
	"time"

	"github.com/loupelabs/apilens/internal/models"
)

// Spike describes a burst of requests well above an endpoint's normal rate.
type Spike struct {
	Timestamp  time.Time
	NormalRate float64
	Peak       int
	Severity   models.Severity
}

// SpikeDetector flags endpoints whose peak windowed request count dwarfs the
// average windowed count.
type SpikeDetector struct {
	MinPeak     int     // windows smaller than this are never spikes
	BurstFactor float64 // peak must strictly exceed this multiple of the average
	HighPeak    int     // peaks above this are high severity
}

// NewSpikeDetector creates a spike detector with the stock cutoffs.
func NewSpikeDetector() *SpikeDetector {
	return &SpikeDetector{MinPeak: 10, BurstFactor: 3, HighPeak: 50}
}

// Detect scans the endpoint's event timestamps. The reported timestamp is the
// event at which the peak window count was first reached.
func (d *SpikeDetector) Detect(times []time.Time) (Spike, bool) {
	if len(times) == 0 {
		return Spike{}, false
	}

	sorted := sortAscending(times)
	counts := windowCounts(sorted, WindowSpan)

	sum := 0
	peak := 0
	peakIdx := 0
	for i, c := range counts {
		sum += c
		if c > peak {
			peak = c
			peakIdx = i
		}
	}
	avgRate := float64(sum) / float64(len(counts))

	if avgRate <= 0 || float64(peak) <= d.BurstFactor*avgRate || peak < d.MinPeak {
		return Spike{}, false
	}

	severity := models.SeverityMedium
	if peak > d.HighPeak {
		severity = models.SeverityHigh
	}
	return Spike{
		Timestamp:  sorted[peakIdx],
		NormalRate: avgRate,
		Peak:       peak,
		Severity:   severity,
	}, true
}
