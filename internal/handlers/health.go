package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

const serviceName = "netposture-api"

var startTime = time.Now()

// Health reports liveness plus the state of optional collaborators.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	analyzer := "disabled"
	if h.analyzer != nil {
		analyzer = "configured"
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Uptime:    time.Since(startTime).String(),
		Details: map[string]string{
			"go_version": runtime.Version(),
			"num_cpu":    strconv.Itoa(runtime.NumCPU()),
			"analyzer":   analyzer,
		},
	}

	writeJSON(w, r, http.StatusOK, response)
}
