package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	statusOK   = "ok"
	statusDown = "down"

	checkTimeout = 3 * time.Second
)

// Checker reports whether a backing dependency is reachable.
// *pgxpool.Pool satisfies it directly.
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves the liveness, readiness and health endpoints of the
// ranch server.
type HealthHandler struct {
	checks  map[string]Checker
	version string
}

// NewHealthHandler creates a HealthHandler probing each named component.
func NewHealthHandler(version string, checks map[string]Checker) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
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

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready answers 503 until every component responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.checkAll(r.Context())
	h.respond(w, HealthResponse{}, healthy)
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.checkAll(r.Context())
	h.respond(w, HealthResponse{Version: h.version, Components: components}, healthy)
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse, healthy bool) {
	status := http.StatusOK
	resp.Status = statusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		resp.Status = statusDown
	}
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

// checkAll pings all components concurrently under a shared deadline.
func (h *HealthHandler) checkAll(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.checks))
		healthy    = true
		g          errgroup.Group
	)
	for name, check := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := check.Ping(ctx)
			st := CompStatus{Status: statusOK, Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: statusDown}
			}

			mu.Lock()
			defer mu.Unlock()
			components[name] = st
			if err != nil {
				healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()

	return components, healthy
}
