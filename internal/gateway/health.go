package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/questlane/backend/pkg/xcontext"
)

type serviceHealth struct {
	Status string `json:"status"`
	Code   int    `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

type healthReport struct {
	Gateway       string                   `json:"gateway"`
	Services      map[string]serviceHealth `json:"services"`
	OverallStatus string                   `json:"overall_status"`
}

type healthChecker struct {
	timeout time.Duration
}

func newHealthChecker(timeout time.Duration) *healthChecker {
	return &healthChecker{timeout: timeout}
}

// Check probes every service in parallel and aggregates the results.
func (c *healthChecker) Check(ctx context.Context, services map[string]string) healthReport {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var mutex sync.Mutex
	var wg sync.WaitGroup
	results := map[string]serviceHealth{}

	for name, endpoint := range services {
		wg.Add(1)
		go func(name, endpoint string) {
			defer wg.Done()

			health := c.probe(ctx, endpoint)

			mutex.Lock()
			defer mutex.Unlock()
			results[name] = health
		}(name, endpoint)
	}

	wg.Wait()

	overall := "healthy"
	for _, health := range results {
		if health.Status != "healthy" {
			overall = "degraded"
			break
		}
	}

	return healthReport{
		Gateway:       "healthy",
		Services:      results,
		OverallStatus: overall,
	}
}

func (c *healthChecker) probe(ctx context.Context, endpoint string) serviceHealth {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/health", endpoint), nil)
	if err != nil {
		return serviceHealth{Status: "unreachable", Error: err.Error()}
	}

	resp, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return serviceHealth{Status: "unreachable", Error: err.Error()}
	}
	defer resp.Body.Close()

	status := "healthy"
	if resp.StatusCode != http.StatusOK {
		status = "unhealthy"
	}

	return serviceHealth{Status: status, Code: resp.StatusCode}
}
