// Package loadgen produces synthetic access-log records for benchmarks and
// local seeding.
package loadgen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/utils"
)

var (
	endpoints = []string{"/api/users", "/api/payments", "/api/reports", "/api/search", "/api/notifications"}
	errCodes  = []int{400, 404, 500}
)

// Generator emits records with read-heavy methods, jittered latencies, and a
// small error share, resembling production access logs. The same seed always
// yields the same records.
type Generator struct {
	faker *gofakeit.Faker
	start time.Time
}

// New constructs a generator. A zero start anchors the stream at a fixed
// instant so generated batches stay reproducible.
func New(seed int64, start time.Time) *Generator {
	if start.IsZero() {
		start = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	}
	return &Generator{faker: gofakeit.New(seed), start: start}
}

// Records returns n synthetic raw records, two seconds apart, wrapping hourly
// so multi-thousand batches still land in a bounded window.
func (g *Generator) Records(n int) []models.RawRecord {
	records := make([]models.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		ts := g.start.Add(time.Duration((i*2)%3600) * time.Second)

		method := "GET"
		switch roll := g.faker.Number(1, 100); {
		case roll > 95:
			method = "DELETE"
		case roll > 90:
			method = "PUT"
		case roll > 70:
			method = "POST"
		}

		status := 200
		if g.faker.Number(1, 100) <= 5 {
			status = g.faker.RandomInt(errCodes)
		}

		records = append(records, models.RawRecord{
			"timestamp":           utils.FormatInstant(ts),
			"endpoint":            g.faker.RandomString(endpoints),
			"method":              method,
			"response_time_ms":    g.faker.Number(20, 900),
			"status_code":         status,
			"user_id":             fmt.Sprintf("user_%03d", g.faker.Number(1, 200)),
			"request_size_bytes":  g.faker.Number(100, 5000),
			"response_size_bytes": g.faker.Number(100, 20000),
		})
	}
	return records
}
