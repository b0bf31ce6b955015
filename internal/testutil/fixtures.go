package testutil

import (
	"tt-league-service/internal/domain"
)

// SinglesMatch builds a played singles match between two named players.
func SinglesMatch(season, round, playerA, playerB string, scoreA, scoreB int) domain.Match {
	return domain.Match{
		Season:  season,
		Round:   domain.RoundID{Season: season, Label: round},
		SideA:   domain.Side{Names: []string{domain.NormalizeName(playerA)}},
		SideB:   domain.Side{Names: []string{domain.NormalizeName(playerB)}},
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		Doubles: false,
	}
}

// DoublesMatch builds a played doubles match between two pairs.
func DoublesMatch(season, round string, sideA, sideB []string, scoreA, scoreB int) domain.Match {
	a := make([]string, 0, len(sideA))
	for _, n := range sideA {
		a = append(a, domain.NormalizeName(n))
	}
	b := make([]string, 0, len(sideB))
	for _, n := range sideB {
		b = append(b, domain.NormalizeName(n))
	}
	return domain.Match{
		Season:  season,
		Round:   domain.RoundID{Season: season, Label: round},
		SideA:   domain.Side{Names: a},
		SideB:   domain.Side{Names: b},
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		Doubles: true,
	}
}

// WithTeams sets both sides' team labels on a match.
func WithTeams(m domain.Match, teamA, teamB string) domain.Match {
	m.SideA.Team = teamA
	m.SideB.Team = teamB
	return m
}
