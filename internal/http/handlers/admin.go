package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tt-league-service/internal/timeutil"
)

// Refresher triggers one out-of-schedule fetch/replay cycle.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// AdminHandler serves the refresh endpoint, optionally behind the daily
// token gate (token is the current DDMM).
type AdminHandler struct {
	refresher Refresher
	tokenGate bool
	logger    *slog.Logger
	now       func() time.Time
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, tokenGate bool, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		tokenGate: tokenGate,
		logger:    logger,
		now:       time.Now,
	}
}

// Refresh handles POST /admin/refresh.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if h.tokenGate {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = r.Header.Get("X-Admin-Token")
		}
		if token != timeutil.DailyToken(h.now()) {
			writeError(w, r, http.StatusForbidden, "invalid token", h.logger)
			return
		}
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh unavailable", h.logger)
		return
	}
	if err := h.refresher.Refresh(r.Context()); err != nil {
		writeError(w, r, http.StatusBadGateway, "refresh failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"}, h.logger)
}
