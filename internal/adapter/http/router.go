package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tuitiontrust/treasury/internal/adapter/http/handler"
	"github.com/tuitiontrust/treasury/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DonationHandler     *handler.DonationHandler
	TransactionHandler  *handler.TransactionHandler
	DistributionHandler *handler.DistributionHandler
	TrustlineHandler    *handler.TrustlineHandler
	SchoolHandler       *handler.SchoolHandler
	HealthHandler       *handler.HealthHandler
	DistributionSecret  string
	Logger              zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/donations", func(r chi.Router) {
			r.Get("/", cfg.DonationHandler.List)
			r.Get("/sync", cfg.DonationHandler.Sync)
			r.Get("/balances", cfg.DonationHandler.Balances)
			r.Get("/outgoing", cfg.DonationHandler.Outgoing)
		})

		r.Get("/transactions", cfg.TransactionHandler.ForAccount)

		r.Route("/distributions", func(r chi.Router) {
			r.Use(middleware.SharedSecretAuth(cfg.DistributionSecret))
			r.Post("/", cfg.DistributionHandler.Create)
		})

		r.Post("/trustline", cfg.TrustlineHandler.Create)
		r.Post("/schools/seed", cfg.SchoolHandler.Seed)
	})

	return r
}
