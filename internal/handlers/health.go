package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Version is reported by the health endpoint. It is overridden at build
// time with -ldflags "-X .../internal/handlers.Version=...".
var Version = "dev"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	backendHost string
	logger      *slog.Logger
}

// NewHealthHandler creates a new health handler. Only the host of
// backendURL is reported.
func NewHealthHandler(backendURL string, logger *slog.Logger) *HealthHandler {
	host := ""
	if u, err := url.Parse(backendURL); err == nil {
		host = u.Host
	}
	return &HealthHandler{
		backendHost: host,
		logger:      logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Backend   string    `json:"backend"`
}

// ServeHTTP reports liveness. The backend is not contacted.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Backend:   h.backendHost,
	}, h.logger)
}
