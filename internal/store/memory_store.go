package store

import (
	"sync"
	"time"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
)

// MemoryStore keeps a thread-safe snapshot of the latest engine replay.
// The poller swaps whole results in; readers get the shared pointer and
// must treat the result as immutable, which holds because the engine never
// touches a result after returning it.
type MemoryStore struct {
	mu        sync.RWMutex
	result    *elo.Result
	matches   []domain.Match
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetResult replaces the current snapshot with a fresh replay and the match
// list it was derived from.
func (s *MemoryStore) SetResult(result *elo.Result, matches []domain.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.matches = matches
	s.updatedAt = time.Now()
}

// Result returns the latest replay, or false when no replay has happened yet.
func (s *MemoryStore) Result() (*elo.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.result, s.result != nil
}

// Matches returns the match list behind the latest replay.
func (s *MemoryStore) Matches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.matches
}

// UpdatedAt reports when the snapshot was last replaced.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}

// Player resolves a player by feed-normalized name (trimmed, lowercased).
// The player map keys stay case-sensitive; external lookups go through here.
func (s *MemoryStore) Player(name string) (*elo.Player, bool) {
	result, ok := s.Result()
	if !ok {
		return nil, false
	}

	if p, exact := result.Players[name]; exact {
		return p, true
	}
	normalized := domain.NormalizeName(name)
	for key, p := range result.Players {
		if domain.NormalizeName(key) == normalized {
			return p, true
		}
	}
	return nil, false
}

// TeamRoster collects all players whose current team matches, normalized.
func (s *MemoryStore) TeamRoster(team string) []*elo.Player {
	result, ok := s.Result()
	if !ok {
		return nil
	}

	normalized := domain.NormalizeName(team)
	var roster []*elo.Player
	for _, p := range result.Players {
		if domain.NormalizeName(p.Team) == normalized && p.Team != "" {
			roster = append(roster, p)
		}
	}
	return roster
}
