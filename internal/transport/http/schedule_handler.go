package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	apierrors "momentum/internal/errors"
	"momentum/internal/schedule"
)

// ScheduleHandler handles target-date resolution requests
type ScheduleHandler struct {
	logger *slog.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		logger: logger.With(slog.String("handler", "schedule")),
	}
}

// TargetDateResponse is the payload for a resolved pattern
type TargetDateResponse struct {
	Reference  string `json:"reference"`
	Pattern    string `json:"pattern"`
	Kind       int    `json:"kind"`
	TargetDate string `json:"target_date"`
	Weekday    string `json:"weekday"`
}

// TargetDate handles GET /api/v1/target-date.
// Query parameters: pattern (required), kind (1 or 2, required) and
// reference (YYYY-MM-DD, defaults to today).
func (h *ScheduleHandler) TargetDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.ErrValidation("pattern", "pattern is required")))
		return
	}

	kindParam := r.URL.Query().Get("kind")
	kind, err := strconv.Atoi(kindParam)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.ErrValidation("kind", "kind must be 1 or 2")))
		return
	}

	reference := time.Now().UTC()
	if refParam := r.URL.Query().Get("reference"); refParam != "" {
		reference, err = time.Parse("2006-01-02", refParam)
		if err != nil {
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("reference", "reference must be a YYYY-MM-DD date")))
			return
		}
	}

	target, err := schedule.TargetDate(reference, pattern, schedule.Kind(kind))
	if err != nil {
		h.logger.WarnContext(ctx, "pattern resolution failed",
			slog.String("pattern", pattern),
			slog.Int("kind", kind),
			slog.String("error", err.Error()))
		resolutionsTotal.WithLabelValues(kindParam, "error").Inc()
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	resolutionsTotal.WithLabelValues(kindParam, "success").Inc()
	h.logger.InfoContext(ctx, "pattern resolved",
		slog.String("pattern", pattern),
		slog.Int("kind", kind),
		slog.String("target_date", target.Format("2006-01-02")))

	render.JSON(w, r, TargetDateResponse{
		Reference:  reference.Format("2006-01-02"),
		Pattern:    pattern,
		Kind:       kind,
		TargetDate: target.Format("2006-01-02"),
		Weekday:    target.Weekday().String(),
	})
}
