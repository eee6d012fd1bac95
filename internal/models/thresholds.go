package models

// Band maps severity levels to strictly-greater-than cutoffs for one metric.
type Band struct {
	Medium   float64 `json:"medium" yaml:"medium"`
	High     float64 `json:"high" yaml:"high"`
	Critical float64 `json:"critical" yaml:"critical"`
}

// Classify returns the highest severity whose cutoff the value exceeds.
// The second return is false when no cutoff is exceeded.
func (b Band) Classify(value float64) (Severity, bool) {
	switch {
	case value > b.Critical:
		return SeverityCritical, true
	case value > b.High:
		return SeverityHigh, true
	case value > b.Medium:
		return SeverityMedium, true
	}
	return "", false
}

// Thresholds carries the injected classification tables: response-time bands
// in milliseconds and error-rate bands in percent.
type Thresholds struct {
	ResponseTimeMs Band `json:"response_time_ms" yaml:"response_time_ms"`
	ErrorRatePct   Band `json:"error_rate_pct" yaml:"error_rate_pct"`
}

// DefaultThresholds returns the stock threshold tables.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ResponseTimeMs: Band{Medium: 500, High: 1000, Critical: 2000},
		ErrorRatePct:   Band{Medium: 5.0, High: 10.0, Critical: 15.0},
	}
}
