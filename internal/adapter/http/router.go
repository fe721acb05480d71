package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/journaldraft/internal/adapter/http/handler"
	"github.com/iho/journaldraft/internal/adapter/http/middleware"
	"github.com/iho/journaldraft/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DraftHandler     *handler.DraftHandler
	AccountHandler   *handler.AccountHandler
	JournalHandler   *handler.JournalHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logging          *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Drafts
		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", cfg.DraftHandler.Create)
			r.Get("/", cfg.DraftHandler.List)
			r.Get("/{id}", cfg.DraftHandler.Get)
			r.Delete("/{id}", cfg.DraftHandler.Discard)
			r.Get("/{id}/balance", cfg.DraftHandler.Evaluate)
			r.Post("/{id}/submit", cfg.DraftHandler.Submit)
			r.Post("/{id}/lines", cfg.DraftHandler.AddLine)
			r.Delete("/{id}/lines/{lineID}", cfg.DraftHandler.RemoveLine)
			r.Put("/{id}/lines/{lineID}/debit", cfg.DraftHandler.SetDebit)
			r.Put("/{id}/lines/{lineID}/credit", cfg.DraftHandler.SetCredit)
			r.Put("/{id}/lines/{lineID}/account", cfg.DraftHandler.SetAccount)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/journals", cfg.JournalHandler.ListByAccount)
		})

		// Journals
		r.Route("/journals", func(r chi.Router) {
			r.Get("/", cfg.JournalHandler.List)
			r.Get("/{id}", cfg.JournalHandler.Get)
		})
	})

	return r
}
