// Package handlers wires HTTP routes to the app services.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tt-league-service/internal/app/players"
	"tt-league-service/internal/app/standings"
	"tt-league-service/internal/app/teams"
	"tt-league-service/internal/domain"
	"tt-league-service/internal/poller"
)

const defaultUpsetLimit = 10

// Handler serves the read-side API over the latest replay.
type Handler struct {
	standings *standings.Service
	players   *players.Service
	teams     *teams.Service
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(standingsSvc *standings.Service, playersSvc *players.Service, teamsSvc *teams.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		standings: standingsSvc,
		players:   playersSvc,
		teams:     teamsSvc,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Standings returns the current league table.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	table, ok := h.standings.Standings()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "no data yet", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served standings", "count", len(table.Rows))
	}
	writeJSON(w, http.StatusOK, table, h.logger)
}

// Rounds lists the distinct rounds seen, in chronological order.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rounds, ok := h.standings.Rounds()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "no data yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rounds": rounds}, h.logger)
}

// Upsets returns the effective round's upsets, biggest gap first.
func (h *Handler) Upsets(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	limit := defaultUpsetLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = parsed
	}
	upsets, ok := h.standings.Upsets(limit)
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "no data yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"upsets": upsets}, h.logger)
}

// Predict forecasts a head-to-head between two named players.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	a := strings.TrimSpace(r.URL.Query().Get("a"))
	b := strings.TrimSpace(r.URL.Query().Get("b"))
	if a == "" || b == "" {
		writeError(w, r, http.StatusBadRequest, "both a and b players are required", h.logger)
		return
	}

	prediction, err := h.players.Predict(a, b)
	if err != nil {
		if errors.Is(err, players.ErrUnknownPlayer) {
			writeError(w, r, http.StatusNotFound, "player not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "prediction failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, prediction, h.logger)
}

// PlayerRoutes dispatches /players/{name} and /players/{name}/stats.
func (h *Handler) PlayerRoutes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	wantStats := false
	if strings.HasSuffix(rest, "/stats") {
		wantStats = true
		rest = strings.TrimSuffix(rest, "/stats")
	}

	name, err := url.PathUnescape(strings.Trim(rest, "/"))
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid player name", h.logger)
		return
	}

	if wantStats {
		payload, ok := h.players.Stats(name)
		if !ok {
			writeError(w, r, http.StatusNotFound, "player not found", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, payload, h.logger)
		return
	}

	player, ok := h.players.ByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

// TeamRating serves /teams/{name}/rating with optional season/round query
// parameters selecting a historical point; also includes the fixture-
// weighted actual rating when the round is explicit.
func (h *Handler) TeamRating(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	if !strings.HasSuffix(rest, "/rating") {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	name, err := url.PathUnescape(strings.Trim(strings.TrimSuffix(rest, "/rating"), "/"))
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid team name", h.logger)
		return
	}

	round := domain.RoundID{
		Season: strings.TrimSpace(r.URL.Query().Get("season")),
		Label:  strings.TrimSpace(r.URL.Query().Get("round")),
	}
	if (round.Season == "") != (round.Label == "") {
		writeError(w, r, http.StatusBadRequest, "season and round must be supplied together", h.logger)
		return
	}

	ratings, ok := h.teams.RatingsForRound(name, round)
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}

	payload := map[string]any{
		"team":          name,
		"activeRating":  ratings.Active,
		"overallRating": ratings.Overall,
	}
	if !round.IsZero() {
		if actual, ok := h.teams.ActualRating(name, round); ok {
			payload["actualRating"] = actual
		}
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}
