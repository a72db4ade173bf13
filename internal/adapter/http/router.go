package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nesteggapp/nestegg/internal/adapter/http/handler"
	"github.com/nesteggapp/nestegg/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SummaryHandler  *handler.SummaryHandler
	EntryHandler    *handler.EntryHandler
	AccountHandler  *handler.AccountHandler
	CategoryHandler *handler.CategoryHandler
	SnapshotHandler *handler.SnapshotHandler
	HealthHandler   *handler.HealthHandler
	Logger          zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", cfg.SummaryHandler.Get)

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Put("/{id}", cfg.EntryHandler.Update)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Post("/{id}/archive", cfg.AccountHandler.Archive)
			r.Post("/{id}/restore", cfg.AccountHandler.Restore)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Post("/{id}/archive", cfg.CategoryHandler.Archive)
			r.Post("/{id}/restore", cfg.CategoryHandler.Restore)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Put("/", cfg.SnapshotHandler.Save)
			r.Get("/", cfg.SnapshotHandler.List)
			r.Get("/{month}", cfg.SnapshotHandler.Get)
		})
	})

	return r
}
