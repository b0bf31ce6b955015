package teams

import (
	"testing"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
)

type stubStore struct {
	result  *elo.Result
	matches []domain.Match
	roster  []*elo.Player
}

func (s stubStore) Result() (*elo.Result, bool) { return s.result, s.result != nil }
func (s stubStore) Matches() []domain.Match     { return s.matches }
func (s stubStore) TeamRoster(string) []*elo.Player {
	return s.roster
}

func round(label string) domain.RoundID {
	return domain.RoundID{Season: "JAR 2025", Label: label}
}

func teamPlayer(name string, rating float64) *elo.Player {
	return &elo.Player{
		Name:   name,
		Team:   "Modrí",
		Rating: rating,
		History: []elo.HistoryEntry{{
			SeasonOrder: round("1. kolo").SeasonOrder(),
			RoundNum:    1,
			Label:       "1. kolo",
			Season:      "JAR 2025",
			Rating:      rating,
		}},
	}
}

func fixtureStore() stubStore {
	anna := teamPlayer("anna", 144)
	boris := teamPlayer("boris", 90)
	return stubStore{
		result: &elo.Result{
			Players: map[string]*elo.Player{
				"anna":  anna,
				"boris": boris,
			},
			LatestRound: round("2. kolo"),
		},
		roster: []*elo.Player{anna, boris},
		matches: []domain.Match{
			{
				Season: "JAR 2025",
				Round:  round("2. kolo"),
				SideA:  domain.Side{Names: []string{"anna"}, Team: "Modrí"},
				SideB:  domain.Side{Names: []string{"cyril"}, Team: "Červení"},
				ScoreA: 3,
				ScoreB: 1,
			},
		},
	}
}

func TestRatingsForRoundDefaultsToLatest(t *testing.T) {
	svc := NewService(fixtureStore())
	got, ok := svc.RatingsForRound("Modrí", domain.RoundID{})
	if !ok || got.Active == nil {
		t.Fatalf("ratings = %+v, %v", got, ok)
	}
	if *got.Active != 117 {
		t.Fatalf("active = %v, want 117", *got.Active)
	}
}

func TestRatingsForRoundUnknownTeam(t *testing.T) {
	store := fixtureStore()
	store.roster = nil
	svc := NewService(store)
	if _, ok := svc.RatingsForRound("Zelení", round("1. kolo")); ok {
		t.Fatal("empty roster must not produce ratings")
	}
}

func TestRatingsForRoundWithoutReplay(t *testing.T) {
	svc := NewService(stubStore{})
	if _, ok := svc.RatingsForRound("Modrí", domain.RoundID{}); ok {
		t.Fatal("no replay means no ratings")
	}
}

func TestActualRatingUsesPreFixtureRatings(t *testing.T) {
	svc := NewService(fixtureStore())
	got, ok := svc.ActualRating("Modrí", round("2. kolo"))
	if !ok || got == nil {
		t.Fatalf("actual = %v, %v", got, ok)
	}
	// anna's only history entry is round 1, so her pre-round-2 rating is 144;
	// a single singles appearance over the 18-unit floor.
	want := 144.0 / 18
	if *got != want {
		t.Fatalf("actual = %v, want %v", *got, want)
	}
}

func TestActualRatingNoFixtureThatRound(t *testing.T) {
	svc := NewService(fixtureStore())
	if _, ok := svc.ActualRating("Modrí", round("9. kolo")); ok {
		t.Fatal("round without a fixture must not resolve")
	}
}
