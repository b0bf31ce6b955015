package elo

import "tt-league-service/internal/domain"

// StartRating is the mean-initialized rating every player begins with.
const StartRating = 100.0

// HistoryEntry is one point of a player's rating trajectory: the rating
// after the last processed match of the given round. The sequence is
// append-only and chronologically ordered because matches replay in order.
type HistoryEntry struct {
	SeasonOrder int     `json:"seasonOrder"`
	RoundNum    int     `json:"roundNum"`
	Label       string  `json:"label"`
	Season      string  `json:"season"`
	Rating      float64 `json:"rating"`
}

// MatchDetail is one row of a player's match log.
//
// DeltaOpp is a display-only approximation: the average K across the
// opponent side times that side's performance differential. It is never fed
// back into any rating update.
type MatchDetail struct {
	Date           string  `json:"date"`
	Round          string  `json:"round"`
	Season         string  `json:"season"`
	Opponent       string  `json:"opponent"`
	OpponentTeam   string  `json:"opponentTeam"`
	OwnTeam        string  `json:"ownTeam"`
	ScoreOwn       int     `json:"scoreOwn"`
	ScoreOpp       int     `json:"scoreOpp"`
	RatingAfter    float64 `json:"ratingAfter"`
	OppRatingAfter float64 `json:"oppRatingAfter"`
	DeltaOwn       float64 `json:"deltaOwn"`
	DeltaOpp       float64 `json:"deltaOpp"`
	Doubles        bool    `json:"doubles"`
	DisplayName    string  `json:"displayName"`
}

// RoundOf reconstructs the round identity of the logged match.
func (d MatchDetail) RoundOf() domain.RoundID {
	return domain.RoundID{Season: d.Season, Label: d.Round}
}

// Player carries all per-player state accumulated during a replay. The
// engine owns it exclusively while Process runs; afterwards callers must
// treat it as read-only.
type Player struct {
	Name string `json:"name"`
	Team string `json:"team"`

	Rating    float64 `json:"rating"`
	MaxRating float64 `json:"maxRating"`
	MinRating float64 `json:"minRating"`

	Matches  int `json:"matches"`
	Wins     int `json:"wins"`
	Losses   int `json:"losses"`
	DMatches int `json:"dMatches"`
	DWins    int `json:"dWins"`
	DLosses  int `json:"dLosses"`

	SetsWon   int `json:"setsWon"`
	SetsLost  int `json:"setsLost"`
	DSetsWon  int `json:"dSetsWon"`
	DSetsLost int `json:"dSetsLost"`

	LastPlayed string  `json:"lastPlayed"`
	RoundGain  float64 `json:"roundGain"`

	BestWinOpponent   string  `json:"bestWinOpponent"`
	BestWinRating     float64 `json:"bestWinRating"`
	WorstLossOpponent string  `json:"worstLossOpponent"`
	WorstLossRating   float64 `json:"worstLossRating"`

	History      []HistoryEntry `json:"history"`
	MatchDetails []MatchDetail  `json:"matchDetails"`
}

func newPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Rating:    StartRating,
		MaxRating: StartRating,
		MinRating: StartRating,
	}
}

// TotalMatches is the combined singles and doubles activity count.
func (p *Player) TotalMatches() int {
	return p.Matches + p.DMatches
}

// recordHistory upserts the rating snapshot for the given round: several
// matches inside one round collapse into a single "rating after this round"
// entry rather than one entry per match.
func (p *Player) recordHistory(round domain.RoundID, rating float64) {
	if n := len(p.History); n > 0 {
		last := &p.History[n-1]
		if last.Season == round.Season && last.Label == round.Label {
			last.Rating = rating
			return
		}
	}
	p.History = append(p.History, HistoryEntry{
		SeasonOrder: round.SeasonOrder(),
		RoundNum:    round.Number(),
		Label:       round.Label,
		Season:      round.Season,
		Rating:      rating,
	})
}

// RatingAt returns the player's rating as of the given round: the exact
// round entry when present, otherwise the latest earlier one. The second
// return is false when the player had not played by then.
func (p *Player) RatingAt(round domain.RoundID) (float64, bool) {
	target := round.Order()
	for i := len(p.History) - 1; i >= 0; i-- {
		e := p.History[i]
		order := e.SeasonOrder*1000 + e.RoundNum
		if order <= target {
			return e.Rating, true
		}
	}
	return 0, false
}

// RatingBefore returns the player's rating entering the given round: the
// latest history entry strictly earlier than it, or the start rating when
// the player has no earlier history.
func (p *Player) RatingBefore(round domain.RoundID) float64 {
	target := round.Order()
	for i := len(p.History) - 1; i >= 0; i-- {
		e := p.History[i]
		if e.SeasonOrder*1000+e.RoundNum < target {
			return e.Rating
		}
	}
	return StartRating
}

// ActivityThrough counts matches played up to and including the given round.
func (p *Player) ActivityThrough(round domain.RoundID) int {
	target := round.Order()
	count := 0
	for _, d := range p.MatchDetails {
		if d.RoundOf().Order() <= target {
			count++
		}
	}
	return count
}
