package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a MatchProvider with exponential-backoff retries.
type retryingProvider struct {
	inner           MatchProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries or
// initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, initialInterval time.Duration) MatchProvider {
	if maxRetries <= 0 {
		maxRetries = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxRetries:      uint64(maxRetries),
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	attempt := 0
	operation := func() ([]domain.Match, error) {
		attempt++
		start := time.Now()
		matches, err := r.inner.FetchMatches(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok {
				r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			}
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
				"attempt", attempt, "err", err)
			return nil, err
		}
		return matches, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval

	matches, err := backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(policy, r.maxRetries), ctx))
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			"attempts", attempt, "err", err)
		return nil, err
	}
	return matches, nil
}
