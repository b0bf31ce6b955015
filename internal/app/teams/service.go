// Package teams exposes roster-level reads: team ratings at a point in
// league history and the fixture-weighted actual rating.
package teams

import (
	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
	eloteams "tt-league-service/internal/elo/teams"
)

// Store provides read access to the latest replay and its match list.
type Store interface {
	Result() (*elo.Result, bool)
	Matches() []domain.Match
	TeamRoster(team string) []*elo.Player
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// RatingsForRound computes a team's active and overall ratings as of the
// given round; a zero round means the latest one.
func (s *Service) RatingsForRound(team string, round domain.RoundID) (eloteams.RoundRatings, bool) {
	result, ok := s.store.Result()
	if !ok {
		return eloteams.RoundRatings{}, false
	}
	if round.IsZero() {
		round = result.LatestRound
	}

	roster := s.store.TeamRoster(team)
	if len(roster) == 0 {
		return eloteams.RoundRatings{}, false
	}
	return eloteams.RatingsForRound(roster, round), true
}

// ActualRating computes the fixture-weighted rating for the team's side of
// the given round's fixture, using each participant's rating entering that
// round. Nil when the team fielded nobody resolvable.
func (s *Service) ActualRating(team string, round domain.RoundID) (*float64, bool) {
	result, ok := s.store.Result()
	if !ok {
		return nil, false
	}

	var fixture []domain.Match
	for _, m := range s.store.Matches() {
		if !m.Round.Equal(round) {
			continue
		}
		if sameTeam(m.SideA.Team, team) || sameTeam(m.SideB.Team, team) {
			fixture = append(fixture, m)
		}
	}
	if len(fixture) == 0 {
		return nil, false
	}

	rating := eloteams.ActualRatingForMatch(fixture, team, func(name string) (float64, bool) {
		p, ok := result.Players[name]
		if !ok {
			return 0, false
		}
		return p.RatingBefore(round), true
	})
	return rating, true
}

func sameTeam(a, b string) bool {
	return a != "" && domain.NormalizeName(a) == domain.NormalizeName(b)
}
