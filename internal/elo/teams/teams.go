// Package teams aggregates individual ratings into roster-level ones: the
// active/overall ratings of a team at a point in league history and the
// fixture-specific "actual" rating weighted by who really played.
package teams

import (
	"sort"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
)

// activeRosterSize is how many of the most active players make up the
// "active" team rating.
const activeRosterSize = 4

// fullFixtureUnits is the weight of a complete fixture lineup (singles
// count 1.0, each doubles appearance 0.5). Under-strength lineups are
// normalized against this floor rather than their true weight, deliberately
// diluting the rating when a roster fields fewer than a full lineup.
const fullFixtureUnits = 18.0

// RoundRatings holds a team's aggregates as of one round. Nil means no
// roster player had any history by then.
type RoundRatings struct {
	Active  *float64 `json:"activeRating"`
	Overall *float64 `json:"overallRating"`
}

// RatingsForRound computes a roster's active and overall ratings as of the
// given round. Players with no history entry at or before the round have
// not played yet and are excluded.
func RatingsForRound(roster []*elo.Player, round domain.RoundID) RoundRatings {
	type qualified struct {
		player   *elo.Player
		rating   float64
		activity int
	}

	var players []qualified
	for _, p := range roster {
		rating, ok := p.RatingAt(round)
		if !ok {
			continue
		}
		players = append(players, qualified{
			player:   p,
			rating:   rating,
			activity: p.ActivityThrough(round),
		})
	}
	if len(players) == 0 {
		return RoundRatings{}
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].activity != players[j].activity {
			return players[i].activity > players[j].activity
		}
		if players[i].rating != players[j].rating {
			return players[i].rating > players[j].rating
		}
		return players[i].player.Name < players[j].player.Name
	})

	top := players
	if len(top) > activeRosterSize {
		top = top[:activeRosterSize]
	}

	active := 0.0
	for _, q := range top {
		active += q.rating
	}
	active /= float64(len(top))

	overall := 0.0
	for _, q := range players {
		overall += q.rating
	}
	overall /= float64(len(players))

	return RoundRatings{Active: &active, Overall: &overall}
}

// RatingFn resolves a participant's pre-fixture rating. A false return
// excludes the participant (unknown player).
type RatingFn func(name string) (float64, bool)

// ActualRatingForMatch computes one team's fixture-weighted rating over the
// individual games of a team-vs-team fixture. Each unique participant's
// rating is weighted by how much of the fixture they played: 1.0 per
// singles appearance, 0.5 per doubles appearance. The weight sum is floored
// at fullFixtureUnits, so walkover-thinned lineups rate below strength.
func ActualRatingForMatch(fixture []domain.Match, team string, ratingOf RatingFn) *float64 {
	weights := make(map[string]float64)
	ratings := make(map[string]float64)

	for _, m := range fixture {
		for _, side := range []domain.Side{m.SideA, m.SideB} {
			if !sameTeam(side.Team, team) {
				continue
			}
			unit := 1.0
			if m.Doubles {
				unit = 0.5
			}
			for _, name := range side.Names {
				if domain.IsWalkover(name) {
					continue
				}
				if _, known := ratings[name]; !known {
					r, ok := ratingOf(name)
					if !ok {
						continue
					}
					ratings[name] = r
				}
				weights[name] += unit
			}
		}
	}

	if len(weights) == 0 {
		return nil
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for name, w := range weights {
		weightedSum += ratings[name] * w
		totalWeight += w
	}

	denominator := totalWeight
	if denominator < fullFixtureUnits {
		denominator = fullFixtureUnits
	}

	actual := weightedSum / denominator
	return &actual
}

func sameTeam(a, b string) bool {
	return domain.NormalizeName(a) == domain.NormalizeName(b) && a != ""
}
