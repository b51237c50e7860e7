package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const pingTimeout = 3 * time.Second

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck names a dependency for the readiness and health reports.
type HealthCheck struct {
	Name   string
	Pinger Pinger
}

// Check pairs a component name with its pinger.
func Check(name string, p Pinger) HealthCheck {
	return HealthCheck{Name: name, Pinger: p}
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler that pings every check on
// /ready and /health.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports process liveness. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready returns 200 when every component answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.ping(r.Context())
	for name, c := range components {
		components[name] = CompStatus{Status: c.Status}
	}
	h.write(w, ok, components, "")
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.ping(r.Context())
	h.write(w, ok, components, h.version)
}

// ping checks all components concurrently under a shared timeout.
func (h *HealthHandler) ping(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.checks))
		ok         = true
	)

	var g errgroup.Group
	for _, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Pinger.Ping(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[c.Name] = CompStatus{Status: "down"}
				ok = false
				return nil
			}
			components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
			return nil
		})
	}
	_ = g.Wait()

	return components, ok
}

func (h *HealthHandler) write(w http.ResponseWriter, ok bool, components map[string]CompStatus, version string) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    version,
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
