package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"momentum/internal/analytics"
	"momentum/internal/config"
	"momentum/internal/dataprocessing"
	apierrors "momentum/internal/errors"
)

// AnalyticsHandler handles volatility report requests
type AnalyticsHandler struct {
	cfg      config.AnalyticsConfig
	dataDir  string
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(cfg config.AnalyticsConfig, dataDir string, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		cfg:      cfg,
		dataDir:  dataDir,
		validate: validator.New(),
		logger:   logger.With(slog.String("handler", "analytics")),
	}
}

// VolatilityRequest describes a volatility computation over one price file
type VolatilityRequest struct {
	// File is a path relative to the configured data directory
	File     string            `json:"file" validate:"required"`
	Rename   map[string]string `json:"rename,omitempty"`
	Column   string            `json:"column,omitempty"`
	Lookback int               `json:"lookback,omitempty" validate:"omitempty,min=2"`
}

// VolatilityPoint is one dated volatility value
type VolatilityPoint struct {
	Date       string  `json:"date"`
	Volatility float64 `json:"volatility"`
}

// VolatilityResponse is the payload for a computed volatility series
type VolatilityResponse struct {
	Source   string            `json:"source"`
	Column   string            `json:"column"`
	Lookback int               `json:"lookback"`
	Points   []VolatilityPoint `json:"points"`
}

// Volatility handles POST /api/v1/volatility
func (h *AnalyticsHandler) Volatility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VolatilityRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InvalidRequestWithError(err)))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error())))
		return
	}

	// file paths stay inside the data directory
	clean := filepath.Clean(req.File)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.ErrValidation("file", "file must be a relative path inside the data directory")))
		return
	}
	path := filepath.Join(h.dataDir, clean)

	column := req.Column
	if column == "" {
		column = h.cfg.CloseColumn
	}
	lookback := req.Lookback
	if lookback == 0 {
		lookback = h.cfg.Lookback
	}

	rs, err := dataprocessing.LoadRecords(path, req.Rename)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load price file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		volatilityRunsTotal.WithLabelValues("error").Inc()
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	series, err := analytics.VolatilitySeries(rs, column, lookback)
	if err != nil {
		volatilityRunsTotal.WithLabelValues("error").Inc()
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	points := make([]VolatilityPoint, len(series.Values))
	for i, v := range series.Values {
		points[i] = VolatilityPoint{
			Date:       series.Dates[i].Format("2006-01-02"),
			Volatility: v,
		}
	}

	volatilityRunsTotal.WithLabelValues("success").Inc()
	h.logger.InfoContext(ctx, "volatility report computed",
		slog.String("file", req.File),
		slog.String("column", column),
		slog.Int("lookback", lookback),
		slog.Int("points", len(points)))

	render.JSON(w, r, VolatilityResponse{
		Source:   req.File,
		Column:   column,
		Lookback: lookback,
		Points:   points,
	})
}
