package api

import (
	"net/http"

	"go.uber.org/zap"
)

// API metadata reported by GET /.
const (
	apiTitle       = "Catalog Demo API"
	apiDescription = "Demo item catalog with token authentication"
	apiVersion     = "1.0.0"
)

// HealthHandler serves the public status endpoints.
type HealthHandler struct {
	Environment string
	Logger      *zap.Logger
}

// Health handles GET /health. It never fails.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.Logger.Debug("health check requested")
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": h.Environment,
	})
}

// Info handles GET /.
func (h *HealthHandler) Info(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"title":       apiTitle,
		"description": apiDescription,
		"version":     apiVersion,
	})
}
