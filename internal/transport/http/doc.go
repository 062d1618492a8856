// Package http exposes the schedule and analytics operations over HTTP.
//
// Routes are assembled by NewRouter: pattern resolution on
// GET /api/v1/target-date, volatility reports on POST /api/v1/volatility,
// plus /health and Prometheus /metrics. Handlers render JSON through
// go-chi/render and surface failures as structured APIError responses.
package http
