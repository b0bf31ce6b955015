package elo

import (
	"math"
	"strings"
	"testing"

	"tt-league-service/internal/domain"
)

func singles(season, round, a, b string, scoreA, scoreB int) domain.Match {
	return domain.Match{
		Season: season,
		Round:  domain.RoundID{Season: season, Label: round},
		SideA:  domain.Side{Names: []string{a}},
		SideB:  domain.Side{Names: []string{b}},
		ScoreA: scoreA,
		ScoreB: scoreB,
	}
}

func doubles(season, round string, a, b []string, scoreA, scoreB int) domain.Match {
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

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProcessFirstSinglesMatch(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 1),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anna := res.Players["anna"]
	boris := res.Players["boris"]
	if anna == nil || boris == nil {
		t.Fatalf("expected both players, got %v", res.Players)
	}

	// Equal ratings, N=4: expectation 2 sets each, diff +1/-1 at K=30.
	if !almostEqual(anna.Rating, 130) {
		t.Fatalf("anna rating = %v, want 130", anna.Rating)
	}
	if !almostEqual(boris.Rating, 70) {
		t.Fatalf("boris rating = %v, want 70", boris.Rating)
	}
	if anna.Matches != 1 || anna.Wins != 1 || anna.Losses != 0 {
		t.Fatalf("anna tallies = %d/%d/%d", anna.Matches, anna.Wins, anna.Losses)
	}
	if boris.Losses != 1 {
		t.Fatalf("boris losses = %d, want 1", boris.Losses)
	}
	if anna.SetsWon != 3 || anna.SetsLost != 1 {
		t.Fatalf("anna sets = %d:%d", anna.SetsWon, anna.SetsLost)
	}
	if res.TotalSets != 4 {
		t.Fatalf("total sets = %d, want 4", res.TotalSets)
	}
	if len(res.Rounds) != 1 {
		t.Fatalf("rounds = %v", res.Rounds)
	}
}

func TestProcessFirstDoublesMatch(t *testing.T) {
	res, err := Process([]domain.Match{
		doubles("JAR 2025", "1. kolo", []string{"anna", "boris"}, []string{"cyril", "dana"}, 3, 0),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// N=3 at equal ratings: diff 1.5, K=30 halved for doubles -> 22.5.
	for _, name := range []string{"anna", "boris"} {
		p := res.Players[name]
		if !almostEqual(p.Rating, 122.5) {
			t.Fatalf("%s rating = %v, want 122.5", name, p.Rating)
		}
		if p.DMatches != 1 || p.DWins != 1 || p.Matches != 0 {
			t.Fatalf("%s doubles tallies = %d/%d", name, p.DMatches, p.DWins)
		}
	}
	for _, name := range []string{"cyril", "dana"} {
		p := res.Players[name]
		if !almostEqual(p.Rating, 77.5) {
			t.Fatalf("%s rating = %v, want 77.5", name, p.Rating)
		}
		if p.DLosses != 1 {
			t.Fatalf("%s dlosses = %d", name, p.DLosses)
		}
	}
}

func TestProcessDeltasAreZeroSumAtEqualActivity(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 2),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := res.Players["anna"].Rating + res.Players["boris"].Rating
	if !almostEqual(sum, 200) {
		t.Fatalf("rating sum = %v, want 200", sum)
	}
}

func TestProcessAsymmetricKFactors(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "1. kolo", "anna", "cyril", 3, 0),
		// Anna's third match is scored at K=22 while dana's first uses K=30.
		singles("JAR 2025", "2. kolo", "anna", "dana", 0, 3),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anna := res.Players["anna"]
	dana := res.Players["dana"]

	last := anna.MatchDetails[len(anna.MatchDetails)-1]
	danaLast := dana.MatchDetails[len(dana.MatchDetails)-1]
	if almostEqual(last.DeltaOwn, -danaLast.DeltaOwn) {
		t.Fatalf("expected asymmetric deltas, got %v and %v", last.DeltaOwn, danaLast.DeltaOwn)
	}
	if math.Abs(last.DeltaOwn) >= math.Abs(danaLast.DeltaOwn) {
		t.Fatalf("veteran delta %v should be smaller than newcomer delta %v", last.DeltaOwn, danaLast.DeltaOwn)
	}
}

func TestProcessWalkoverLegCountsSetsButNotRatings(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "kontumácia", 3, 0),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalSets != 3 {
		t.Fatalf("total sets = %d, want 3", res.TotalSets)
	}
	if len(res.Players) != 0 {
		t.Fatalf("walkover leg must not create players, got %v", res.Players)
	}
}

func TestProcessUnplayedFixtureIsIgnored(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "kontumácia", "kontumácia", 0, 0),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalSets != 0 || len(res.Rounds) != 0 {
		t.Fatalf("unplayed fixture leaked into result: %+v", res)
	}
}

func TestProcessRejectsStructurallyBrokenMatch(t *testing.T) {
	bad := singles("", "1. kolo", "anna", "boris", 3, 0)
	_, err := Process([]domain.Match{bad}, Options{})
	if err == nil {
		t.Fatal("expected error for missing season")
	}
	if !strings.Contains(err.Error(), "match 0") {
		t.Fatalf("error should name the offending index, got %v", err)
	}

	noRound := singles("JAR 2025", "", "anna", "boris", 3, 0)
	if _, err := Process([]domain.Match{noRound}, Options{}); err == nil {
		t.Fatal("expected error for missing round")
	}

	noSides := domain.Match{
		Season: "JAR 2025",
		Round:  domain.RoundID{Season: "JAR 2025", Label: "1. kolo"},
		ScoreA: 3,
	}
	if _, err := Process([]domain.Match{noSides}, Options{}); err == nil {
		t.Fatal("expected error for missing participants")
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	matches := []domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 1),
		singles("JAR 2025", "2. kolo", "boris", "anna", 3, 2),
		doubles("JAR 2025", "2. kolo", []string{"anna", "cyril"}, []string{"boris", "dana"}, 1, 3),
	}

	first, err := Process(matches, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Process(matches, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, p := range first.Players {
		q := second.Players[name]
		if q == nil || !almostEqual(p.Rating, q.Rating) {
			t.Fatalf("replay diverged for %s: %v vs %v", name, p, q)
		}
	}
	if first.TotalSets != second.TotalSets {
		t.Fatalf("total sets diverged: %d vs %d", first.TotalSets, second.TotalSets)
	}
}

func TestProcessDetectsUpsetInEffectiveRound(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "2. kolo", "anna", "boris", 2, 3),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Upsets) != 1 {
		t.Fatalf("upsets = %v, want exactly one", res.Upsets)
	}
	u := res.Upsets[0]
	if u.Winner != "boris" || u.Loser != "anna" {
		t.Fatalf("unexpected upset participants: %+v", u)
	}
	if u.Diff <= 0 {
		t.Fatalf("upset diff must be positive, got %v", u.Diff)
	}
	if !almostEqual(u.Diff, u.LoserRating-u.WinnerRating) {
		t.Fatalf("diff %v does not match rating gap %v", u.Diff, u.LoserRating-u.WinnerRating)
	}
	if u.Score != "3:2" {
		t.Fatalf("upset score = %q, want 3:2", u.Score)
	}
}

func TestProcessNoUpsetOutsideEffectiveRound(t *testing.T) {
	current := domain.RoundID{Season: "JAR 2025", Label: "3. kolo"}
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "2. kolo", "anna", "boris", 0, 3),
	}, Options{CurrentRound: &current})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Upsets) != 0 {
		t.Fatalf("upsets outside the effective round must not register: %v", res.Upsets)
	}
}

func TestProcessRoundGainOnlyInEffectiveRound(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "2. kolo", "anna", "boris", 3, 0),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anna := res.Players["anna"]
	last := anna.MatchDetails[len(anna.MatchDetails)-1]
	if !almostEqual(anna.RoundGain, last.DeltaOwn) {
		t.Fatalf("round gain %v should equal the effective round delta %v", anna.RoundGain, last.DeltaOwn)
	}
}

func TestProcessHistoryCollapsesWithinRound(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "1. kolo", "anna", "cyril", 3, 0),
		singles("JAR 2025", "2. kolo", "anna", "dana", 3, 0),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anna := res.Players["anna"]
	if len(anna.History) != 2 {
		t.Fatalf("history = %v, want two entries", anna.History)
	}
	if anna.History[0].Label != "1. kolo" || anna.History[1].Label != "2. kolo" {
		t.Fatalf("history order wrong: %v", anna.History)
	}
	if !almostEqual(anna.History[1].Rating, anna.Rating) {
		t.Fatalf("last history entry %v should carry final rating %v", anna.History[1].Rating, anna.Rating)
	}
}

func TestProcessBestWinAndWorstLoss(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		// Boris meets a fresh opponent and loses again; cyril's best win is
		// boris at his deflated pre-match rating.
		singles("JAR 2025", "2. kolo", "boris", "cyril", 1, 3),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cyril := res.Players["cyril"]
	if cyril.BestWinOpponent != "boris" {
		t.Fatalf("best win opponent = %q", cyril.BestWinOpponent)
	}
	boris := res.Players["boris"]
	if boris.WorstLossOpponent == "" {
		t.Fatalf("boris should have a worst loss recorded")
	}
}

func TestProcessTeamAssignmentFollowsLatestMatch(t *testing.T) {
	m1 := singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0)
	m1.SideA.Team = "Old Team"
	m2 := singles("JAR 2025", "2. kolo", "anna", "cyril", 3, 0)
	m2.SideA.Team = "New Team"

	res, err := Process([]domain.Match{m1, m2}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Players["anna"].Team != "New Team" {
		t.Fatalf("team = %q, want latest assignment", res.Players["anna"].Team)
	}
}

func TestProcessMaxMinRatingTrack(t *testing.T) {
	res, err := Process([]domain.Match{
		singles("JAR 2025", "1. kolo", "anna", "boris", 3, 0),
		singles("JAR 2025", "2. kolo", "anna", "boris", 0, 3),
	}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anna := res.Players["anna"]
	if anna.MaxRating < 145-1e-9 {
		t.Fatalf("max rating %v should capture the post-win peak", anna.MaxRating)
	}
	if anna.MinRating > StartRating {
		t.Fatalf("min rating %v should never exceed the start rating here", anna.MinRating)
	}
	boris := res.Players["boris"]
	if boris.MinRating > 55+1e-9 {
		t.Fatalf("boris min rating %v should capture the post-loss trough", boris.MinRating)
	}
}
