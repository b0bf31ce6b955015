package providers

import (
	"context"
	"errors"
	"log/slog"

	"tt-league-service/internal/domain"
)

// mergedProvider concatenates the static archive with the live feed, archive
// first, preserving each source's order so the combined list stays
// chronological the way the upstream maintains it.
type mergedProvider struct {
	static MatchProvider
	live   MatchProvider
	logger *slog.Logger
}

// NewMergedProvider combines a static archive source with a live feed. A
// failing source degrades to an empty contribution; the call only errors
// when both sources fail.
func NewMergedProvider(static, live MatchProvider, logger *slog.Logger) MatchProvider {
	return &mergedProvider{static: static, live: live, logger: logger}
}

func (m *mergedProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	staticMatches, staticErr := m.fetchFrom(ctx, m.static, "static")
	liveMatches, liveErr := m.fetchFrom(ctx, m.live, "live")

	if staticErr != nil && liveErr != nil {
		return nil, errors.Join(staticErr, liveErr)
	}

	merged := make([]domain.Match, 0, len(staticMatches)+len(liveMatches))
	merged = append(merged, staticMatches...)
	merged = append(merged, liveMatches...)
	return merged, nil
}

func (m *mergedProvider) fetchFrom(ctx context.Context, source MatchProvider, name string) ([]domain.Match, error) {
	if source == nil {
		return nil, nil
	}
	matches, err := source.FetchMatches(ctx)
	if err != nil {
		logWithProvider(ctx, m.logger, slog.LevelWarn, name, "merge source failed", "err", err)
		return nil, err
	}
	return matches, nil
}
