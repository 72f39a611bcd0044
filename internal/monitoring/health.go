package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/conneroisu/webref/internal/logging"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	HealthStatusDegraded  HealthStatus = "degraded"
)

// HealthCheck represents a single health check result
type HealthCheck struct {
	Name     string                 `json:"name"`
	Status   HealthStatus           `json:"status"`
	Message  string                 `json:"message,omitempty"`
	Duration time.Duration          `json:"duration"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Critical bool                   `json:"critical"`
}

// CheckFunc runs one check.
type CheckFunc func(ctx context.Context) HealthCheck

type registeredCheck struct {
	name     string
	critical bool
	fn       CheckFunc
}

// HealthMonitor runs registered checks on demand
type HealthMonitor struct {
	checks    []registeredCheck
	mutex     sync.RWMutex
	logger    logging.Logger
	timeout   time.Duration
	version   string
	startTime time.Time
}

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status    HealthStatus           `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version,omitempty"`
	Uptime    string                 `json:"uptime"`
	Checks    map[string]HealthCheck `json:"checks"`
	System    SystemInfo             `json:"system"`
}

// SystemInfo provides system information
type SystemInfo struct {
	Hostname   string `json:"hostname"`
	GoVersion  string `json:"go_version"`
	Goroutines int    `json:"goroutines"`
	PID        int    `json:"pid"`
}

// NewHealthMonitor creates a monitor with a per-check timeout.
func NewHealthMonitor(logger logging.Logger, version string) *HealthMonitor {
	return &HealthMonitor{
		logger:    logger.WithComponent("health"),
		timeout:   2 * time.Second,
		version:   version,
		startTime: time.Now(),
	}
}

// Register adds a named check. A failing critical check makes the whole
// service unhealthy; a failing non-critical check only degrades it.
func (hm *HealthMonitor) Register(name string, critical bool, fn CheckFunc) {
	hm.mutex.Lock()
	defer hm.mutex.Unlock()
	hm.checks = append(hm.checks, registeredCheck{name: name, critical: critical, fn: fn})
}

// Check runs every registered check concurrently.
func (hm *HealthMonitor) Check(ctx context.Context) HealthResponse {
	hm.mutex.RLock()
	checks := append([]registeredCheck(nil), hm.checks...)
	hm.mutex.RUnlock()

	results := make([]HealthCheck, len(checks))
	var wg sync.WaitGroup
	for i, c := range checks {
		wg.Add(1)
		go func(i int, c registeredCheck) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, hm.timeout)
			defer cancel()

			start := time.Now()
			result := c.fn(checkCtx)
			result.Name = c.name
			result.Critical = c.critical
			result.Duration = time.Since(start)
			results[i] = result
		}(i, c)
	}
	wg.Wait()

	byName := make(map[string]HealthCheck, len(results))
	for _, r := range results {
		byName[r.Name] = r
		if r.Status != HealthStatusHealthy {
			hm.logger.Warn(ctx, nil, "Health check failed",
				"name", r.Name,
				"status", string(r.Status),
				"message", r.Message)
		}
	}

	hostname, _ := os.Hostname()
	return HealthResponse{
		Status:    overallStatus(results),
		Timestamp: time.Now(),
		Version:   hm.version,
		Uptime:    time.Since(hm.startTime).Round(time.Second).String(),
		Checks:    byName,
		System: SystemInfo{
			Hostname:   hostname,
			GoVersion:  runtime.Version(),
			Goroutines: runtime.NumGoroutine(),
			PID:        os.Getpid(),
		},
	}
}

// Names returns the registered check names, sorted.
func (hm *HealthMonitor) Names() []string {
	hm.mutex.RLock()
	defer hm.mutex.RUnlock()

	names := make([]string, 0, len(hm.checks))
	for _, c := range hm.checks {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

func overallStatus(results []HealthCheck) HealthStatus {
	status := HealthStatusHealthy
	for _, r := range results {
		if r.Status == HealthStatusHealthy {
			continue
		}
		if r.Critical && r.Status == HealthStatusUnhealthy {
			return HealthStatusUnhealthy
		}
		status = HealthStatusDegraded
	}
	return status
}

// HTTPHandler returns an HTTP handler for health checks
func (hm *HealthMonitor) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := hm.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if health.Status == HealthStatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(health); err != nil {
			hm.logger.Error(r.Context(), err, "Failed to encode health response")
		}
	}
}

// Healthy is a convenience result for checks.
func Healthy(message string, metadata map[string]interface{}) HealthCheck {
	return HealthCheck{Status: HealthStatusHealthy, Message: message, Metadata: metadata}
}

// Unhealthy is a convenience result for checks.
func Unhealthy(message string) HealthCheck {
	return HealthCheck{Status: HealthStatusUnhealthy, Message: message}
}
