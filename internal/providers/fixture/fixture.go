// Package fixture returns a small deterministic match list useful for local
// development and for bootstrapping without the spreadsheet.
package fixture

import (
	"context"

	"tt-league-service/internal/domain"
)

// Provider serves a static two-round mini league.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchMatches returns a deterministic set of example matches in
// chronological order: two singles rounds, one doubles match and one
// forfeited leg.
func (p *Provider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx

	raw := []domain.RawMatch{
		{
			Season: "JAR 2025", Round: "1. kolo", Date: "7.3.2025", Location: "Herňa A", Group: "A",
			PlayerA: "Marek Novák", PlayerB: "Peter Kováč",
			PlayerATeam: "Pinec Devín", PlayerBTeam: "Rakety BA",
			ScoreA: 3, ScoreB: 1,
		},
		{
			Season: "JAR 2025", Round: "1. kolo", Date: "7.3.2025", Location: "Herňa A", Group: "A",
			PlayerA: "Jozef Baláž", PlayerB: "Milan Urban",
			PlayerATeam: "Pinec Devín", PlayerBTeam: "Rakety BA",
			ScoreA: 2, ScoreB: 3,
		},
		{
			Season: "JAR 2025", Round: "1. kolo", Date: "7.3.2025", Location: "Herňa A", Group: "A",
			PlayerA: "Marek Novák/Jozef Baláž", PlayerB: "Peter Kováč/Milan Urban",
			PlayerATeam: "Pinec Devín", PlayerBTeam: "Rakety BA",
			ScoreA: 3, ScoreB: 0, Doubles: true,
		},
		{
			Season: "JAR 2025", Round: "2. kolo", Date: "14.3.2025", Location: "Herňa B", Group: "A",
			PlayerA: "Peter Kováč", PlayerB: "Marek Novák",
			PlayerATeam: "Rakety BA", PlayerBTeam: "Pinec Devín",
			ScoreA: 3, ScoreB: 2,
		},
		{
			Season: "JAR 2025", Round: "2. kolo", Date: "14.3.2025", Location: "Herňa B", Group: "A",
			PlayerA: "Milan Urban", PlayerB: "kontumácia",
			PlayerATeam: "Rakety BA", PlayerBTeam: "Pinec Devín",
			ScoreA: 3, ScoreB: 0,
		},
	}

	matches := make([]domain.Match, 0, len(raw))
	for _, rm := range raw {
		matches = append(matches, rm.Normalize())
	}
	return matches, nil
}
