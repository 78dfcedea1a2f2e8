package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/ledgerexport/internal/adapter/http/handler"
	"github.com/iho/ledgerexport/internal/adapter/http/middleware"
	"github.com/iho/ledgerexport/internal/domain"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ExportHandler     *handler.ExportHandler
	AccountingHandler *handler.AccountingHandler
	ActivityHandler   *handler.ActivityHandler
	HealthHandler     *handler.HealthHandler
	TokenVerifier     middleware.TokenVerifier
	RateLimiter       *middleware.RateLimiter
	Logger            zerolog.Logger
	// MetricsHandler serves /metrics. Defaults to promhttp.Handler().
	MetricsHandler http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.TokenVerifier))
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Get("/export/transactions/", cfg.ActivityHandler.Transactions)
		r.Get("/export/transactions/sum", cfg.ExportHandler.Sum)

		r.Route("/admin/accounting", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.AccountingRoles...))
			r.Get("/list", cfg.AccountingHandler.List)
			r.Get("/download", cfg.AccountingHandler.Download)
			r.Post("/{id}", cfg.ExportHandler.Accounting)
			r.Get("/{id}/statement", cfg.ExportHandler.Statement)
		})
	})

	return r
}
