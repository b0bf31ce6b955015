// Package http assembles the service router.
package http

import (
	"log/slog"
	"net/http"

	"tt-league-service/internal/http/handlers"
	"tt-league-service/internal/http/middleware"
	"tt-league-service/internal/metrics"
)

// NewRouter builds the service mux wrapped with the logging middleware.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/standings", h.Standings)
	mux.HandleFunc("/rounds", h.Rounds)
	mux.HandleFunc("/upsets", h.Upsets)
	mux.HandleFunc("/predict", h.Predict)
	mux.HandleFunc("/players/", h.PlayerRoutes)
	mux.HandleFunc("/teams/", h.TeamRating)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}

	return middleware.LoggingMiddleware(logger, recorder, mux)
}
