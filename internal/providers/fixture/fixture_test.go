package fixture

import (
	"context"
	"testing"

	"tt-league-service/internal/elo"
)

func TestFetchMatchesIsDeterministic(t *testing.T) {
	p := New()
	first, err := p.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	second, _ := p.FetchMatches(context.Background())
	if len(first) != len(second) || len(first) == 0 {
		t.Fatalf("fixture not stable: %d vs %d", len(first), len(second))
	}
}

func TestFetchMatchesReplaysCleanly(t *testing.T) {
	matches, err := New().FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	result, err := elo.Process(matches, elo.Options{})
	if err != nil {
		t.Fatalf("fixture must survive the engine: %v", err)
	}
	if len(result.Players) != 4 {
		t.Fatalf("players = %d, want the four regulars", len(result.Players))
	}
	if len(result.Rounds) != 2 {
		t.Fatalf("rounds = %v", result.Rounds)
	}
	// The forfeited leg contributes sets without touching ratings.
	if result.TotalSets != 20 {
		t.Fatalf("total sets = %d, want 20", result.TotalSets)
	}
}

func TestFixtureContainsDoublesAndForfeit(t *testing.T) {
	matches, _ := New().FetchMatches(context.Background())

	var doubles, forfeits int
	for _, m := range matches {
		if m.Doubles {
			doubles++
		}
		if m.SideA.HasWalkover() || m.SideB.HasWalkover() {
			forfeits++
		}
	}
	if doubles == 0 || forfeits == 0 {
		t.Fatalf("fixture should exercise doubles (%d) and forfeits (%d)", doubles, forfeits)
	}
}
