package stats

import (
	"math"
	"testing"

	"tt-league-service/internal/elo"
)

func singlesDetail(own, opp int, delta float64) elo.MatchDetail {
	return elo.MatchDetail{
		ScoreOwn:    own,
		ScoreOpp:    opp,
		DeltaOwn:    delta,
		RatingAfter: 100 + delta,
	}
}

func doublesDetail(own, opp int) elo.MatchDetail {
	return elo.MatchDetail{ScoreOwn: own, ScoreOpp: opp, Doubles: true}
}

func TestComputeEmptyLogYieldsNils(t *testing.T) {
	s, c := Compute(&elo.Player{Name: "fresh"})
	if s.Attack != nil || s.Defense != nil || s.Consistency != nil ||
		s.Momentum != nil || s.TeamImpact != nil || s.Clutch != nil {
		t.Fatalf("all scores must be nil without matches: %+v", s)
	}
	if c != (Counts{}) {
		t.Fatalf("all counts must be zero: %+v", c)
	}
}

func TestAttackShrinksTowardNeutral(t *testing.T) {
	// One dominant win far below the confidence threshold lands near 50,
	// not near the raw base.
	p := &elo.Player{MatchDetails: []elo.MatchDetail{singlesDetail(3, 0, 45)}}
	s, c := Compute(p)
	if s.Attack == nil || c.Attack != 1 {
		t.Fatalf("attack = %v, count %d", s.Attack, c.Attack)
	}
	// base 100 blended at 1/10 confidence: 50 + 50*0.1 = 55.
	if math.Abs(*s.Attack-55) > 1e-9 {
		t.Fatalf("attack = %v, want 55", *s.Attack)
	}
}

func TestAttackFullConfidence(t *testing.T) {
	var log []elo.MatchDetail
	for i := 0; i < 10; i++ {
		log = append(log, singlesDetail(3, 0, 10))
	}
	s, c := Compute(&elo.Player{MatchDetails: log})
	if c.Attack != 10 {
		t.Fatalf("attack count = %d, want 10", c.Attack)
	}
	if math.Abs(*s.Attack-100) > 1e-9 {
		t.Fatalf("attack = %v, want 100 at full confidence", *s.Attack)
	}
}

func TestAttackIgnoresDoubles(t *testing.T) {
	p := &elo.Player{MatchDetails: []elo.MatchDetail{doublesDetail(3, 0)}}
	s, c := Compute(p)
	if s.Attack != nil || c.Attack != 0 {
		t.Fatalf("doubles must not feed attack: %v, %d", s.Attack, c.Attack)
	}
}

func TestDefensePrefersHardLosses(t *testing.T) {
	hard := elo.MatchDetail{
		ScoreOwn: 2, ScoreOpp: 3,
		DeltaOwn: -10, RatingAfter: 90,
		DeltaOpp: 8, OppRatingAfter: 158,
	}
	soft := elo.MatchDetail{
		ScoreOwn: 0, ScoreOpp: 3,
		DeltaOwn: -10, RatingAfter: 90,
		DeltaOpp: 8, OppRatingAfter: 108,
	}
	s, c := Compute(&elo.Player{MatchDetails: []elo.MatchDetail{hard, soft}})
	if c.Defense != 1 {
		t.Fatalf("defense count = %d, want only the hard loss", c.Defense)
	}
	// base 2/5*100=40, blend 1/8: 50+(40-50)/8 = 48.75, doubled.
	if math.Abs(*s.Defense-97.5) > 1e-9 {
		t.Fatalf("defense = %v, want 97.5", *s.Defense)
	}
}

func TestDefenseFallsBackToAllLosses(t *testing.T) {
	soft := elo.MatchDetail{
		ScoreOwn: 1, ScoreOpp: 3,
		DeltaOwn: -5, RatingAfter: 95,
		DeltaOpp: 4, OppRatingAfter: 104,
	}
	s, c := Compute(&elo.Player{MatchDetails: []elo.MatchDetail{soft}})
	if c.Defense != 1 || s.Defense == nil {
		t.Fatalf("fallback losses should qualify: %v, %d", s.Defense, c.Defense)
	}
}

func TestDefenseNilWithoutLosses(t *testing.T) {
	s, c := Compute(&elo.Player{MatchDetails: []elo.MatchDetail{singlesDetail(3, 0, 20)}})
	if s.Defense != nil || c.Defense != 0 {
		t.Fatalf("defense without losses must be nil: %v, %d", s.Defense, c.Defense)
	}
}

func TestConsistencySteadyDeltasScoreHigh(t *testing.T) {
	var log []elo.MatchDetail
	for i := 0; i < 12; i++ {
		log = append(log, singlesDetail(3, 1, 5))
	}
	s, _ := Compute(&elo.Player{MatchDetails: log})
	// Identical deltas, zero spread: full confidence keeps the base 100.
	if math.Abs(*s.Consistency-100) > 1e-9 {
		t.Fatalf("consistency = %v, want 100", *s.Consistency)
	}
}

func TestConsistencyUsesRecentWindow(t *testing.T) {
	var log []elo.MatchDetail
	for i := 0; i < 20; i++ {
		log = append(log, singlesDetail(3, 1, 5))
	}
	_, c := Compute(&elo.Player{MatchDetails: log})
	if c.Consistency != 12 {
		t.Fatalf("consistency count = %d, want the window size", c.Consistency)
	}
}

func TestMomentumRewardsRecentGains(t *testing.T) {
	var log []elo.MatchDetail
	for i := 0; i < 5; i++ {
		log = append(log, singlesDetail(3, 0, 10))
	}
	s, c := Compute(&elo.Player{MatchDetails: log})
	if c.Momentum != 5 {
		t.Fatalf("momentum count = %d, want 5", c.Momentum)
	}
	// base 50+10*3=80 at full confidence.
	if math.Abs(*s.Momentum-80) > 1e-9 {
		t.Fatalf("momentum = %v, want 80", *s.Momentum)
	}
}

func TestMomentumClampedAtHundred(t *testing.T) {
	var log []elo.MatchDetail
	for i := 0; i < 5; i++ {
		log = append(log, singlesDetail(3, 0, 45))
	}
	s, _ := Compute(&elo.Player{MatchDetails: log})
	if *s.Momentum != 100 {
		t.Fatalf("momentum = %v, want clamp at 100", *s.Momentum)
	}
}

func TestTeamImpactCountsOnlyDoubles(t *testing.T) {
	log := []elo.MatchDetail{
		doublesDetail(3, 1),
		doublesDetail(1, 3),
		singlesDetail(3, 0, 10),
	}
	s, c := Compute(&elo.Player{MatchDetails: log})
	if c.TeamImpact != 2 {
		t.Fatalf("team impact count = %d, want 2", c.TeamImpact)
	}
	// base 50 stays 50 regardless of confidence.
	if math.Abs(*s.TeamImpact-50) > 1e-9 {
		t.Fatalf("team impact = %v, want 50", *s.TeamImpact)
	}
}

func TestClutchOnlyFiveSetMatches(t *testing.T) {
	log := []elo.MatchDetail{
		singlesDetail(3, 2, 5),
		singlesDetail(2, 3, -5),
		singlesDetail(3, 0, 10),
		doublesDetail(3, 2),
	}
	s, c := Compute(&elo.Player{MatchDetails: log})
	// Doubles deciders count too; only the 3-0 is excluded.
	if c.Clutch != 3 {
		t.Fatalf("clutch count = %d, want 3", c.Clutch)
	}
	if s.Clutch == nil {
		t.Fatal("clutch must not be nil with deciders on record")
	}
}
