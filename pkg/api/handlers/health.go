package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/marmos91/finfo/pkg/fileinfo"
	"github.com/marmos91/finfo/pkg/maclabel"
)

// HealthHandler handles health check endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness probe: Is the server process running?
//   - Readiness probe: Is the collector ready to serve requests?
type HealthHandler struct {
	collector  *fileinfo.Collector
	labels     maclabel.Subsystem
	version    string
	startTime  time.Time
	instanceID string
}

// NewHealthHandler creates a new health handler.
//
// The collector parameter may be nil, in which case the readiness probe
// returns unhealthy status. The instance ID is generated once per process
// so that restarts are visible to monitoring.
func NewHealthHandler(collector *fileinfo.Collector, labels maclabel.Subsystem, version string) *HealthHandler {
	return &HealthHandler{
		collector:  collector,
		labels:     labels,
		version:    version,
		startTime:  time.Now(),
		instanceID: uuid.New().String(),
	}
}

// Liveness handles GET /health - simple liveness probe.
//
// Returns 200 OK if the server process is running. This endpoint is designed
// for Kubernetes liveness probes and should always succeed as long as the
// HTTP server is responsive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime)
	writeJSON(w, http.StatusOK, healthyResponse(map[string]interface{}{
		"service":    "finfo",
		"version":    h.version,
		"instance":   h.instanceID,
		"started_at": h.startTime.UTC().Format(time.RFC3339),
		"uptime":     uptime.Round(time.Second).String(),
		"uptime_sec": int64(uptime.Seconds()),
	}))
}

// Readiness handles GET /health/ready - readiness probe.
// Returns 200 OK once the collector is constructed.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.collector == nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("collector not initialized"))
		return
	}

	labelState := "disabled"
	if h.labels != nil && h.labels.Enabled() {
		labelState = "enabled"
	}

	writeJSON(w, http.StatusOK, healthyResponse(map[string]interface{}{
		"collector":  "ready",
		"mac_labels": labelState,
	}))
}
