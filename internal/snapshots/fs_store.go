// Package snapshots persists the last good match list to disk so a restart
// can serve standings before the first successful poll.
package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"tt-league-service/internal/domain"
)

const matchesFile = "matches.json"

// Store defines how snapshots are loaded.
type Store interface {
	LoadMatches() ([]domain.Match, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatches reads the persisted match list from disk.
func (s *FSStore) LoadMatches() ([]domain.Match, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}

	f, err := os.Open(filepath.Join(s.basePath, matchesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []domain.Match
	if err := json.NewDecoder(f).Decode(&matches); err != nil {
		return nil, err
	}
	return matches, nil
}
