package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"momentum/internal/config"
	custommw "momentum/internal/middleware"
)

// NewRouter assembles the HTTP surface: schedule resolution, volatility
// reports, health and Prometheus metrics.
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(logger))
	r.Use(custommw.Recoverer(logger))
	r.Use(custommw.SecurityHeaders)

	if cfg.Server.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
		r.Use(limiter.Handler)
	}

	healthHandler := NewHealthHandler()
	scheduleHandler := NewScheduleHandler(logger)
	analyticsHandler := NewAnalyticsHandler(cfg.Analytics, cfg.Paths.DataDir, logger)

	r.Get("/health", healthHandler.Status)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/target-date", scheduleHandler.TargetDate)
		api.Post("/volatility", analyticsHandler.Volatility)
		api.Get("/version", healthHandler.VersionInfo)
	})

	return r
}
