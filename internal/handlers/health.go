package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	instanceID string
	log        *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		instanceID: uuid.New().String(),
		log:        log,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	InstanceID string    `json:"instance_id"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Version:    "1.0.0",
		InstanceID: h.instanceID,
	}, h.log)
}
