package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tt-league-service/internal/domain"
)

// Writer persists the match list snapshot atomically.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMatches writes the match list snapshot. Identical content is left
// untouched to spare the disk; otherwise the file is replaced via a tmp
// file and rename so readers never see a partial snapshot.
func (w *Writer) WriteMatches(matches []domain.Match) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}

	target := filepath.Join(w.basePath, matchesFile)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
