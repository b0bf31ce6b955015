// Package players exposes single-player reads: the full record, the six
// derived performance scores and head-to-head predictions.
package players

import (
	"errors"

	"tt-league-service/internal/elo"
	"tt-league-service/internal/elo/prob"
	"tt-league-service/internal/elo/stats"
)

// ErrUnknownPlayer is returned when a name resolves to nobody in the replay.
var ErrUnknownPlayer = errors.New("unknown player")

// Store provides read access to the latest replay.
type Store interface {
	Player(name string) (*elo.Player, bool)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ByName resolves a player by feed-normalized name.
func (s *Service) ByName(name string) (*elo.Player, bool) {
	return s.store.Player(name)
}

// StatsPayload couples the derived scores with their sample counts.
type StatsPayload struct {
	Name   string       `json:"name"`
	Values stats.Scores `json:"values"`
	Counts stats.Counts `json:"counts"`
}

// Stats computes the derived performance scores for one player.
func (s *Service) Stats(name string) (StatsPayload, bool) {
	p, ok := s.store.Player(name)
	if !ok {
		return StatsPayload{}, false
	}
	values, counts := stats.Compute(p)
	return StatsPayload{Name: p.Name, Values: values, Counts: counts}, true
}

// Prediction is a head-to-head forecast between two players.
type Prediction struct {
	PlayerA      string             `json:"playerA"`
	PlayerB      string             `json:"playerB"`
	RatingA      float64            `json:"ratingA"`
	RatingB      float64            `json:"ratingB"`
	WinA         float64            `json:"winA"`
	WinB         float64            `json:"winB"`
	Distribution map[string]float64 `json:"distribution"`
}

// Predict forecasts a match between two players at their current ratings.
func (s *Service) Predict(nameA, nameB string) (Prediction, error) {
	a, ok := s.store.Player(nameA)
	if !ok {
		return Prediction{}, ErrUnknownPlayer
	}
	b, ok := s.store.Player(nameB)
	if !ok {
		return Prediction{}, ErrUnknownPlayer
	}

	winA := prob.Win(a.Rating, b.Rating)
	return Prediction{
		PlayerA:      a.Name,
		PlayerB:      b.Name,
		RatingA:      a.Rating,
		RatingB:      b.Rating,
		WinA:         winA,
		WinB:         1 - winA,
		Distribution: prob.ScoreDistribution(winA),
	}, nil
}
