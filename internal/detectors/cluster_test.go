package detectors

import (
	"testing"
	"time"

	"github.com/loupelabs/apilens/internal/models"
)

func TestClusterDetectorFindsWindow(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	times := make([]time.Time, 0, 10)
	for i := 0; i < 10; i++ {
		times = append(times, base.Add(time.Duration(i)*20*time.Second))
	}

	cluster, ok := NewClusterDetector().Detect(times)
	if !ok {
		t.Fatalf("expected a cluster")
	}
	if cluster.Count != 10 {
		t.Fatalf("expected count 10, got %d", cluster.Count)
	}
	if cluster.Severity != models.SeverityHigh {
		t.Fatalf("expected high severity, got %s", cluster.Severity)
	}
	if !cluster.Start.Equal(times[0]) || !cluster.End.Equal(times[9]) {
		t.Fatalf("unexpected window bounds: %v - %v", cluster.Start, cluster.End)
	}
}

func TestClusterDetectorBelowMinimum(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	// Nine tightly packed errors are not enough.
	times := make([]time.Time, 0, 9)
	for i := 0; i < 9; i++ {
		times = append(times, base.Add(time.Duration(i)*time.Second))
	}
	if _, ok := NewClusterDetector().Detect(times); ok {
		t.Fatalf("expected no cluster for nine errors")
	}

	// Ten errors spread too thin never share a window.
	times = times[:0]
	for i := 0; i < 10; i++ {
		times = append(times, base.Add(time.Duration(i)*40*time.Second))
	}
	if _, ok := NewClusterDetector().Detect(times); ok {
		t.Fatalf("expected no cluster for spread-out errors")
	}
}

func TestClusterDetectorReportsFirstWindowOnly(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	times := make([]time.Time, 0, 30)
	for i := 0; i < 10; i++ {
		times = append(times, base.Add(time.Duration(i)*time.Second))
	}
	// A denser burst later must not displace the first qualifying window.
	later := base.Add(1000 * time.Second)
	for i := 0; i < 20; i++ {
		times = append(times, later.Add(time.Duration(i)*time.Second))
	}

	cluster, ok := NewClusterDetector().Detect(times)
	if !ok {
		t.Fatalf("expected a cluster")
	}
	if !cluster.End.Equal(base.Add(9 * time.Second)) {
		t.Fatalf("expected the first qualifying window, got end %v", cluster.End)
	}
	if cluster.Count != 10 {
		t.Fatalf("expected count 10, got %d", cluster.Count)
	}
}

func TestClusterDetectorEmptyInput(t *testing.T) {
	if _, ok := NewClusterDetector().Detect(nil); ok {
		t.Fatalf("expected no cluster for empty input")
	}
}
