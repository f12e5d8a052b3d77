package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/footyclub/records/internal/usecase"
)

// RecomputeAll kicks off a full rebuild and returns immediately; callers poll
// GET /v1/recompute/progress for completion. The rebuild keeps running after
// the triggering request disconnects.
func (h *Handler) RecomputeAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeAll")
	defer span.End()

	if h.aggregationService == nil {
		writeError(ctx, w, fmt.Errorf("%w: aggregation service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	runCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.aggregationService.RecomputeAll(runCtx); err != nil {
			h.logger.ErrorContext(runCtx, "full recompute failed", "error", err)
		}
	}()

	writeSuccess(ctx, w, http.StatusAccepted, recomputeAcceptedDTO{Status: "accepted"})
}

// RecomputeGameDay re-derives the records touched by one game day and waits
// for the result. Scoped recomputes are small enough to run synchronously.
func (h *Handler) RecomputeGameDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeGameDay")
	defer span.End()

	if h.aggregationService == nil {
		writeError(ctx, w, fmt.Errorf("%w: aggregation service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	gameDayID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("gameDayID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid game day id %q", usecase.ErrInvalidInput, r.PathValue("gameDayID")))
		return
	}

	if err := h.aggregationService.RecomputeForGameDay(ctx, gameDayID); err != nil {
		h.logger.WarnContext(ctx, "game day recompute failed", "game_day_id", gameDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recomputeGameDayDTO{
		GameDayID: gameDayID,
		Status:    "completed",
	})
}
