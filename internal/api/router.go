// Package api exposes the catalog over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/erazemk/catalog/internal/auth"
	"github.com/erazemk/catalog/internal/store"
)

// RouterConfig holds the collaborators the router wires into its handlers.
type RouterConfig struct {
	Authenticator auth.Authenticator
	Items         store.Repository
	Environment   string
	Logger        *zap.Logger
	// Metrics is optional; a private registry is created when nil.
	Metrics *Metrics
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	authHandler := &AuthHandler{Auth: cfg.Authenticator, Metrics: metrics, Logger: logger}
	itemsHandler := &ItemsHandler{Items: cfg.Items, Logger: logger}
	healthHandler := &HealthHandler{Environment: cfg.Environment, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(LoggingMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(RecoverMiddleware(logger))

	// Public.
	r.Get("/", healthHandler.Info)
	r.Get("/health", healthHandler.Health)
	r.Post("/login", authHandler.Login)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Authenticated.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Authenticator))
		r.Get("/items", itemsHandler.List)
		r.Post("/items", itemsHandler.Create)
		r.Get("/items/{id}", itemsHandler.Get)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
