package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"momentum/pkg/contracts"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Status handles GET /health
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": contracts.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// VersionInfo handles GET /api/v1/version
func (h *HealthHandler) VersionInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, contracts.GetVersionInfo())
}
