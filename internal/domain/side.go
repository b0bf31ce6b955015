package domain

import "strings"

// Walkover names the league uses for forfeited legs (kontumácia). Matching is
// case-insensitive and tolerant of the spelling without diacritics.
var walkoverTokens = map[string]bool{
	"kontumácia": true,
	"kontumacia": true,
}

// IsWalkover reports whether a participant name encodes a forfeit rather
// than a real player.
func IsWalkover(name string) bool {
	return walkoverTokens[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeName produces the lookup form of a player name. Player map keys
// stay case-sensitive; consumers normalize when resolving external input.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Side is one side of a match: one name for singles, two "/"-joined names
// for doubles, plus the team the side played for.
type Side struct {
	Names []string `json:"names"`
	Team  string   `json:"team"`
}

// ParseSide splits a raw participant field on "/" and trims each name.
// Empty fragments are dropped so "A /" yields a single-name side.
func ParseSide(raw, team string) Side {
	var names []string
	for _, part := range strings.Split(raw, "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return Side{Names: names, Team: strings.TrimSpace(team)}
}

// HasWalkover reports whether any participant on the side is a forfeit token.
func (s Side) HasWalkover() bool {
	for _, n := range s.Names {
		if IsWalkover(n) {
			return true
		}
	}
	return false
}

// AllWalkover reports whether the side consists solely of forfeit tokens.
func (s Side) AllWalkover() bool {
	if len(s.Names) == 0 {
		return false
	}
	for _, n := range s.Names {
		if !IsWalkover(n) {
			return false
		}
	}
	return true
}

// Display renders the side the way the feed writes it.
func (s Side) Display() string {
	return strings.Join(s.Names, "/")
}
