// Command seeder posts a batch of synthetic access-log records to a running
// apilens-engine, for local development and smoke testing.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/loupelabs/apilens/internal/loadgen"
	"github.com/loupelabs/apilens/internal/models"
)

func main() {
	var (
		target string
		count  int
		seed   int64
	)
	flag.StringVar(&target, "target", "http://localhost:8080", "Base URL of the apilens-engine")
	flag.IntVar(&count, "count", 1000, "Number of records to generate")
	flag.Int64Var(&seed, "seed", 42, "Generator seed")
	flag.Parse()

	records := loadgen.New(seed, time.Time{}).Records(count)
	payload, err := json.Marshal(models.AnalyzeRequest{Logs: records})
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(target+"/api/v1/analyze", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("post analyze: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("analyze returned %d: %s", resp.StatusCode, body)
	}

	var report models.Report
	if err := json.Unmarshal(body, &report); err != nil {
		log.Fatalf("decode report: %v", err)
	}

	fmt.Printf("analysis %s: %d requests, %d endpoints, %d anomalies, %d caching opportunities\n",
		resp.Header.Get("X-Analysis-Id"),
		report.Summary.TotalRequests,
		len(report.EndpointStats),
		len(report.Anomalies),
		len(report.CachingOpportunities))
}
