// Package server wires configuration, providers, the poller and the HTTP
// surface into one runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"tt-league-service/internal/app/players"
	"tt-league-service/internal/app/standings"
	"tt-league-service/internal/app/teams"
	"tt-league-service/internal/config"
	httpserver "tt-league-service/internal/http"
	"tt-league-service/internal/http/handlers"
	"tt-league-service/internal/logging"
	"tt-league-service/internal/metrics"
	"tt-league-service/internal/poller"
	"tt-league-service/internal/providers"
	"tt-league-service/internal/snapshots"
	"tt-league-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	store            *store.MemoryStore
	standingsService *standings.Service
	playersService   *players.Service
	teamsService     *teams.Service
	httpServer       httpServer
	metricsServer    httpServer
	poller           Poller
	metricsStop      func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	memoryStore, standingsSvc, playersSvc, teamsSvc := buildServices()

	writer := snapshots.NewWriter(cfg.Snapshots.Dir)
	warmFrom := snapshots.NewFSStore(cfg.Snapshots.Dir)
	plr := poller.New(provider, memoryStore, writer, warmFrom, logger, recorder, cfg.PollInterval)

	httpSrv := buildHTTPServer(cfg, standingsSvc, playersSvc, teamsSvc, logger, recorder, plr)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		store:            memoryStore,
		standingsService: standingsSvc,
		playersService:   playersSvc,
		teamsService:     teamsSvc,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		poller:           plr,
		metricsStop:      metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, standingsSvc *standings.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:              cfg,
		logger:           logger,
		standingsService: standingsSvc,
		httpServer:       httpSrv,
		poller:           plr,
	}
}

func buildServices() (*store.MemoryStore, *standings.Service, *players.Service, *teams.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, standings.NewService(memoryStore), players.NewService(memoryStore), teams.NewService(memoryStore)
}

func buildHTTPServer(cfg config.Config, standingsSvc *standings.Service, playersSvc *players.Service, teamsSvc *teams.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(standingsSvc, playersSvc, teamsSvc, logger, statusFn)
	var admin *handlers.AdminHandler
	if plr != nil {
		admin = handlers.NewAdminHandler(plr, cfg.Snapshots.AdminDailyToken, logger)
	}
	router := httpserver.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider extracts the underlying provider from the poller when it
// exposes one, so wrapper cleanup can run at shutdown.
func (s *Server) pollerProvider() providers.MatchProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.MatchProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
