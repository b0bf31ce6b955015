package server

import (
	"log/slog"
	"time"

	"tt-league-service/internal/config"
	"tt-league-service/internal/metrics"
	"tt-league-service/internal/providers"
	"tt-league-service/internal/providers/archive"
	"tt-league-service/internal/providers/fixture"
	"tt-league-service/internal/providers/sheets"
)

// providerFactory assembles the match provider with shared wrappers
// (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.MatchProvider {
	base := selectProvider(cfg, f.logger)
	// Shared rate limiter keeps the gviz endpoint happy even when the poll
	// interval is configured aggressively.
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

// selectProvider picks the match source from configuration: a deterministic
// fixture set, the static archive, the live sheet, or archive+sheet merged.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "archive":
		return archive.New(cfg.Archive.Path, cfg.Archive.OldSeasonsPath)
	case "sheets":
		return newSheetsClient(cfg, logger)
	default:
		static := archive.New(cfg.Archive.Path, cfg.Archive.OldSeasonsPath)
		return providers.NewMergedProvider(static, newSheetsClient(cfg, logger), logger)
	}
}

func newSheetsClient(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	return sheets.NewClient(sheets.Config{
		BaseURL:       cfg.Sheets.BaseURL,
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		SheetName:     cfg.Sheets.SheetName,
		Query:         cfg.Sheets.Query,
		Logger:        logger,
	})
}
