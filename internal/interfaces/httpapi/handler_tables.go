package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/usecase"
)

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListYears")
	defer span.End()

	includeAllTime := parseBoolParam(r.URL.Query().Get("includeAllTime"), true)

	years, err := h.queryService.GetAllYears(ctx, includeAllTime)
	if err != nil {
		h.logger.ErrorContext(ctx, "list years failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, yearsDTO{Years: years})
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTable")
	defer span.End()

	kind, ok := playerrecord.ParseTableKind(r.PathValue("kind"))
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown table kind %q", usecase.ErrInvalidInput, r.PathValue("kind")))
		return
	}

	query, err := parseGetTableQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.queryService.GetTable(ctx, kind, query.Year, query.QualifiedOnly, query.Take)
	if err != nil {
		h.logger.WarnContext(ctx, "get table failed", "kind", kind.String(), "year", query.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableDTO{
		Kind:          kind.String(),
		Year:          query.Year,
		QualifiedOnly: query.QualifiedOnly,
		Rows:          recordsToDTOs(records),
	})
}

func (h *Handler) GetWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWinners")
	defer span.End()

	kind, ok := playerrecord.ParseTableKind(r.PathValue("kind"))
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown table kind %q", usecase.ErrInvalidInput, r.PathValue("kind")))
		return
	}

	var year *int
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, raw))
			return
		}
		year = &parsed
	}

	winners, err := h.queryService.GetWinners(ctx, kind, year)
	if err != nil {
		h.logger.WarnContext(ctx, "get winners failed", "kind", kind.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, winnersDTO{
		Kind:    kind.String(),
		Year:    year,
		Winners: recordsToDTOs(winners),
	})
}

func (h *Handler) GetPlayerRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRecord")
	defer span.End()

	playerID := r.PathValue("playerID")
	year, err := strconv.Atoi(strings.TrimSpace(r.PathValue("year")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, r.PathValue("year")))
		return
	}

	rec, exists, err := h.queryService.GetForYearByPlayer(ctx, year, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player record failed", "player_id", playerID, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		// A player with no outcomes in the scope has no record. That is a
		// valid answer, not a missing resource.
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(rec))
}

func (h *Handler) GetRecomputeProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecomputeProgress")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(h.queryService.GetProgress(ctx)))
}

func parseGetTableQuery(r *http.Request) (getTableQuery, error) {
	values := r.URL.Query()

	query := getTableQuery{
		QualifiedOnly: parseBoolParam(values.Get("qualifiedOnly"), true),
	}

	if raw := strings.TrimSpace(values.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return getTableQuery{}, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, raw)
		}
		query.Year = year
	}

	if raw := strings.TrimSpace(values.Get("take")); raw != "" {
		take, err := strconv.Atoi(raw)
		if err != nil {
			return getTableQuery{}, fmt.Errorf("%w: invalid take %q", usecase.ErrInvalidInput, raw)
		}
		query.Take = take
	}

	return query, nil
}

func parseBoolParam(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y":
		return true
	case "0", "false", "f", "no", "n":
		return false
	default:
		return fallback
	}
}
