package testutil

import (
	"context"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/providers"
)

// GoodProvider returns the provided matches with no error.
type GoodProvider struct {
	Matches []domain.Match
}

func (p GoodProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	return p.Matches, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	return nil, p.Err
}

// EmptyProvider returns no matches, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	return []domain.Match{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	return nil, providers.ErrProviderUnavailable
}

// CountingProvider returns matches and counts fetches.
type CountingProvider struct {
	Matches []domain.Match
	Calls   int
}

func (p *CountingProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	p.Calls++
	return p.Matches, nil
}
