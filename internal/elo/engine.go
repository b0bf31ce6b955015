package elo

import (
	"fmt"
	"math"

	"tt-league-service/internal/domain"
)

// Upset records a singles result inside the effective round where the
// lower-rated side won. Diff is positive by construction.
type Upset struct {
	Winner       string  `json:"winner"`
	WinnerTeam   string  `json:"winnerTeam"`
	WinnerRating float64 `json:"winnerRating"`
	Loser        string  `json:"loser"`
	LoserTeam    string  `json:"loserTeam"`
	LoserRating  float64 `json:"loserRating"`
	Score        string  `json:"score"`
	Diff         float64 `json:"diff"`
}

// Result is the full output of one replay. Every call to Process builds a
// fresh Result; nothing is shared between invocations, so concurrent calls
// with distinct match slices are safe.
type Result struct {
	Players     map[string]*Player `json:"players"`
	Rounds      []domain.RoundID   `json:"rounds"`
	TotalSets   int                `json:"totalSets"`
	LatestRound domain.RoundID     `json:"latestRound"`
	Upsets      []Upset            `json:"upsets"`
}

// Options tunes a replay.
type Options struct {
	// CurrentRound designates the round for which RoundGain and upsets are
	// tracked. Defaults to the round of the last played match.
	CurrentRound *domain.RoundID
}

// Process replays the match list in its given order, which the caller
// guarantees to be chronological, and derives all per-player state.
// Structurally broken records fail the whole call; data-quality issues
// (walkovers, unresolvable sides) degrade silently per record instead.
func Process(matches []domain.Match, opts Options) (*Result, error) {
	for i, m := range matches {
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("match %d: %w", i, err)
		}
	}

	res := &Result{Players: make(map[string]*Player)}

	effective := domain.RoundID{}
	if opts.CurrentRound != nil {
		effective = *opts.CurrentRound
	} else {
		for _, m := range matches {
			if m.Played() {
				effective = m.Round
			}
		}
	}

	seenRounds := make(map[domain.RoundID]bool)

	for _, m := range matches {
		if !m.Played() {
			continue
		}

		res.TotalSets += m.ScoreA + m.ScoreB
		res.LatestRound = m.Round
		if !seenRounds[m.Round] {
			seenRounds[m.Round] = true
			res.Rounds = append(res.Rounds, m.Round)
		}

		// Forfeited legs never touch ratings; neither does a record whose
		// side could not be resolved to any name.
		if m.SideA.HasWalkover() || m.SideB.HasWalkover() {
			continue
		}
		if len(m.SideA.Names) == 0 || len(m.SideB.Names) == 0 {
			continue
		}

		res.score(m, effective)
	}

	return res, nil
}

func validate(m domain.Match) error {
	if m.Season == "" {
		return fmt.Errorf("missing season")
	}
	if m.Round.Label == "" {
		return fmt.Errorf("missing round")
	}
	if len(m.SideA.Names) == 0 && len(m.SideB.Names) == 0 {
		return fmt.Errorf("missing participants on both sides")
	}
	return nil
}

// score applies one played, fully resolvable match to the player map.
func (res *Result) score(m domain.Match, effective domain.RoundID) {
	sideA := res.ensureSide(m.SideA)
	sideB := res.ensureSide(m.SideB)

	// Activity counters move before the K-factor is read so that a player's
	// first match is scored at K=30, not at the pre-match count.
	for _, p := range sideA {
		bumpActivity(p, m)
	}
	for _, p := range sideB {
		bumpActivity(p, m)
	}

	preA := ratingsOf(sideA)
	preB := ratingsOf(sideB)
	ra := mean(preA)
	rb := mean(preB)

	n := float64(m.ScoreA + m.ScoreB)
	ea := n / (1 + math.Pow(10, (rb-ra)/300))
	eb := n / (1 + math.Pow(10, (ra-rb)/300))
	diffA := float64(m.ScoreA) - ea
	diffB := float64(m.ScoreB) - eb

	inRound := m.Round.Equal(effective)

	res.applySide(m, sideA, sideB, preB, diffA, diffB, m.ScoreA, m.ScoreB, m.SideA, m.SideB, inRound)
	res.applySide(m, sideB, sideA, preA, diffB, diffA, m.ScoreB, m.ScoreA, m.SideB, m.SideA, inRound)

	if !m.Doubles && inRound && m.ScoreA != m.ScoreB {
		res.detectUpset(m, ra, rb)
	}
}

// applySide updates one side's players: rating delta, tallies, history and
// the match-log entry.
func (res *Result) applySide(m domain.Match, own, opp []*Player, oppPre []float64, diffOwn, diffOpp float64, scoreOwn, scoreOpp int, ownSide, oppSide domain.Side, inRound bool) {
	won := scoreOwn > scoreOpp

	// Display-only opponent delta: average K across the opposing names times
	// their differential. Shown in match logs, never applied to a rating.
	oppAvgK := 0.0
	for _, p := range opp {
		oppAvgK += kFactor(p.TotalMatches())
	}
	oppAvgK /= float64(len(opp))
	deltaOpp := oppAvgK * diffOpp
	if m.Doubles {
		deltaOpp /= 2
	}
	oppRatingAfter := mean(oppPre) + deltaOpp

	for i, p := range own {
		delta := kFactor(p.TotalMatches()) * diffOwn
		if m.Doubles {
			delta /= 2
		}
		p.Rating += delta
		if p.Rating > p.MaxRating {
			p.MaxRating = p.Rating
		}
		if p.Rating < p.MinRating {
			p.MinRating = p.Rating
		}
		if inRound {
			p.RoundGain += delta
		}

		if m.Doubles {
			if won {
				p.DWins++
			} else {
				p.DLosses++
			}
			p.DSetsWon += scoreOwn
			p.DSetsLost += scoreOpp
		} else {
			if won {
				p.Wins++
			} else {
				p.Losses++
			}
			p.SetsWon += scoreOwn
			p.SetsLost += scoreOpp

			oppRating := oppPre[0]
			oppName := opp[0].Name
			if won {
				if p.BestWinOpponent == "" || oppRating > p.BestWinRating {
					p.BestWinOpponent = oppName
					p.BestWinRating = oppRating
				}
			} else {
				if p.WorstLossOpponent == "" || oppRating < p.WorstLossRating {
					p.WorstLossOpponent = oppName
					p.WorstLossRating = oppRating
				}
			}
		}

		p.recordHistory(m.Round, p.Rating)
		p.MatchDetails = append(p.MatchDetails, MatchDetail{
			Date:           m.Date,
			Round:          m.Round.Label,
			Season:         m.Season,
			Opponent:       oppSide.Display(),
			OpponentTeam:   oppSide.Team,
			OwnTeam:        ownSide.Team,
			ScoreOwn:       scoreOwn,
			ScoreOpp:       scoreOpp,
			RatingAfter:    p.Rating,
			OppRatingAfter: oppRatingAfter,
			DeltaOwn:       delta,
			DeltaOpp:       deltaOpp,
			Doubles:        m.Doubles,
			DisplayName:    ownSide.Names[i],
		})
	}
}

func (res *Result) detectUpset(m domain.Match, ra, rb float64) {
	var winner, loser domain.Side
	var winnerRating, loserRating float64
	var winnerScore, loserScore int

	if m.ScoreA > m.ScoreB {
		winner, loser = m.SideA, m.SideB
		winnerRating, loserRating = ra, rb
		winnerScore, loserScore = m.ScoreA, m.ScoreB
	} else {
		winner, loser = m.SideB, m.SideA
		winnerRating, loserRating = rb, ra
		winnerScore, loserScore = m.ScoreB, m.ScoreA
	}

	if winnerRating >= loserRating {
		return
	}

	res.Upsets = append(res.Upsets, Upset{
		Winner:       winner.Display(),
		WinnerTeam:   winner.Team,
		WinnerRating: winnerRating,
		Loser:        loser.Display(),
		LoserTeam:    loser.Team,
		LoserRating:  loserRating,
		Score:        fmt.Sprintf("%d:%d", winnerScore, loserScore),
		Diff:         loserRating - winnerRating,
	})
}

// ensureSide lazily creates the side's players and refreshes their team
// assignment to the most recent one seen.
func (res *Result) ensureSide(side domain.Side) []*Player {
	players := make([]*Player, 0, len(side.Names))
	for _, name := range side.Names {
		p, ok := res.Players[name]
		if !ok {
			p = newPlayer(name)
			res.Players[name] = p
		}
		if side.Team != "" {
			p.Team = side.Team
		}
		players = append(players, p)
	}
	return players
}

func bumpActivity(p *Player, m domain.Match) {
	if m.Doubles {
		p.DMatches++
	} else {
		p.Matches++
	}
	p.LastPlayed = m.Round.Label
}

func ratingsOf(players []*Player) []float64 {
	out := make([]float64, len(players))
	for i, p := range players {
		out[i] = p.Rating
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
