package detectors

import "github.com/loupelabs/apilens/internal/models"

// Degradation flags an endpoint whose worst response dwarfs its average.
type Degradation struct {
	AvgResponseMs  float64
	PeakResponseMs float64
	Severity       models.Severity
}

// DegradationDetector compares an endpoint's aggregate max response time
// against a multiple of its average. It works off aggregate min/max rather
// than individual events; that imprecision is the defined behaviour.
type DegradationDetector struct {
	Factor float64 // peak must strictly exceed Factor times the average
}

// NewDegradationDetector creates a degradation detector with the stock factor.
func NewDegradationDetector() *DegradationDetector {
	return &DegradationDetector{Factor: 2}
}

// Detect reports a degradation when peak exceeds Factor times avg and is also
// above the floor (the medium response-time threshold).
func (d *DegradationDetector) Detect(avg, peak, floor float64) (Degradation, bool) {
	if peak > d.Factor*avg && peak > floor {
		return Degradation{
			AvgResponseMs:  avg,
			PeakResponseMs: peak,
			Severity:       models.SeverityHigh,
		}, true
	}
	return Degradation{}, false
}

// UserSkew reports a single user dominating total traffic.
type UserSkew struct {
	UserID   string
	Count    int
	Severity models.Severity
}

// BehaviorDetector flags the busiest user when their share of all valid
// requests exceeds DominanceShare.
type BehaviorDetector struct {
	DominanceShare float64
}

// NewBehaviorDetector creates a behaviour detector with the stock share.
func NewBehaviorDetector() *BehaviorDetector {
	return &BehaviorDetector{DominanceShare: 0.5}
}

// Detect checks the top user's request count against the total.
func (d *BehaviorDetector) Detect(userID string, count, total int) (UserSkew, bool) {
	if total <= 0 {
		return UserSkew{}, false
	}
	if float64(count)/float64(total) > d.DominanceShare {
		return UserSkew{UserID: userID, Count: count, Severity: models.SeverityHigh}, true
	}
	return UserSkew{}, false
}
