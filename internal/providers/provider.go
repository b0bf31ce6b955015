package providers

import (
	"context"
	"errors"

	"tt-league-service/internal/domain"
)

// ErrProviderUnavailable signals that a provider is missing or misconfigured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// MatchProvider supplies the full ordered match list the engine replays.
// Implementations must preserve the upstream order; the engine never
// re-sorts.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]domain.Match, error)
}

// Func adapts a plain function into a MatchProvider.
type Func func(ctx context.Context) ([]domain.Match, error)

func (f Func) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	return f(ctx)
}
