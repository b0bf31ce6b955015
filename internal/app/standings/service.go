// Package standings turns the latest replay into the ordered league table
// and the effective round's upset list.
package standings

import (
	"sort"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
)

// Store provides read access to the latest replay.
type Store interface {
	Result() (*elo.Result, bool)
}

// Row is one line of the league table.
type Row struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Rating     float64 `json:"rating"`
	MaxRating  float64 `json:"maxRating"`
	MinRating  float64 `json:"minRating"`
	Matches    int     `json:"matches"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	DMatches   int     `json:"dMatches"`
	DWins      int     `json:"dWins"`
	DLosses    int     `json:"dLosses"`
	SetsWon    int     `json:"setsWon"`
	SetsLost   int     `json:"setsLost"`
	LastPlayed string  `json:"lastPlayed"`
	RoundGain  float64 `json:"roundGain"`
}

// Table is the standings payload.
type Table struct {
	Rows        []Row          `json:"rows"`
	TotalSets   int            `json:"totalSets"`
	LatestRound domain.RoundID `json:"latestRound"`
}

// Service coordinates standings reads over a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Standings returns the league table ordered by rating, best first. Ties
// break on name so the ordering is stable across replays.
func (s *Service) Standings() (Table, bool) {
	result, ok := s.store.Result()
	if !ok {
		return Table{}, false
	}

	rows := make([]Row, 0, len(result.Players))
	for _, p := range result.Players {
		rows = append(rows, Row{
			Name:       p.Name,
			Team:       p.Team,
			Rating:     p.Rating,
			MaxRating:  p.MaxRating,
			MinRating:  p.MinRating,
			Matches:    p.Matches,
			Wins:       p.Wins,
			Losses:     p.Losses,
			DMatches:   p.DMatches,
			DWins:      p.DWins,
			DLosses:    p.DLosses,
			SetsWon:    p.SetsWon,
			SetsLost:   p.SetsLost,
			LastPlayed: p.LastPlayed,
			RoundGain:  p.RoundGain,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rating != rows[j].Rating {
			return rows[i].Rating > rows[j].Rating
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return Table{
		Rows:        rows,
		TotalSets:   result.TotalSets,
		LatestRound: result.LatestRound,
	}, true
}

// Upsets returns the effective round's upsets, biggest rating gap first,
// truncated to limit when limit is positive.
func (s *Service) Upsets(limit int) ([]elo.Upset, bool) {
	result, ok := s.store.Result()
	if !ok {
		return nil, false
	}

	upsets := make([]elo.Upset, len(result.Upsets))
	copy(upsets, result.Upsets)
	sort.Slice(upsets, func(i, j int) bool {
		if upsets[i].Diff != upsets[j].Diff {
			return upsets[i].Diff > upsets[j].Diff
		}
		return upsets[i].Winner < upsets[j].Winner
	})

	if limit > 0 && len(upsets) > limit {
		upsets = upsets[:limit]
	}
	return upsets, true
}

// Rounds lists the distinct rounds seen, in replay order.
func (s *Service) Rounds() ([]domain.RoundID, bool) {
	result, ok := s.store.Result()
	if !ok {
		return nil, false
	}
	return result.Rounds, true
}
