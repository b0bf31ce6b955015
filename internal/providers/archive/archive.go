// Package archive loads the static historical match files that ship with
// the deployment (data/matches.json and optionally an older-seasons file).
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tt-league-service/internal/domain"
)

// Provider reads match archives from the local filesystem.
type Provider struct {
	path           string
	oldSeasonsPath string
}

// New constructs an archive provider. oldSeasonsPath may be empty; when set
// its matches are prepended so retired seasons replay before current ones.
func New(path, oldSeasonsPath string) *Provider {
	return &Provider{path: path, oldSeasonsPath: oldSeasonsPath}
}

// FetchMatches reads and normalizes the archive files, old seasons first.
// A missing old-seasons file is tolerated; the main archive is required.
func (p *Provider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []domain.Match
	if p.oldSeasonsPath != "" {
		old, err := readArchive(p.oldSeasonsPath)
		if err == nil {
			matches = append(matches, old...)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("archive: old seasons: %w", err)
		}
	}

	current, err := readArchive(p.path)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return append(matches, current...), nil
}

func readArchive(path string) ([]domain.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []domain.RawMatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	matches := make([]domain.Match, 0, len(raw))
	for _, rm := range raw {
		matches = append(matches, rm.Normalize())
	}
	return matches, nil
}
