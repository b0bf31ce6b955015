package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// RawMatch mirrors one entry of the upstream feed (matches.json or a sheet
// cell). Field types are deliberately loose: the feed is hand-maintained and
// ships scores as strings and the doubles flag as either a bool or "true".
type RawMatch struct {
	Season      string   `json:"season"`
	Round       string   `json:"round"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Group       string   `json:"group"`
	PlayerA     string   `json:"player_a"`
	PlayerB     string   `json:"player_b"`
	PlayerATeam string   `json:"player_a_team"`
	PlayerBTeam string   `json:"player_b_team"`
	ScoreA      FlexInt  `json:"score_a"`
	ScoreB      FlexInt  `json:"score_b"`
	Doubles     FlexBool `json:"doubles"`
}

// Match is the normalized shape the engine consumes.
type Match struct {
	Season   string  `json:"season"`
	Round    RoundID `json:"round"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
	Group    string  `json:"group"`
	SideA    Side    `json:"sideA"`
	SideB    Side    `json:"sideB"`
	ScoreA   int     `json:"scoreA"`
	ScoreB   int     `json:"scoreB"`
	Doubles  bool    `json:"doubles"`
}

// Normalize converts a raw feed entry into the engine shape. Score coercion
// never fails (malformed values become 0); identity validation is the
// engine's job so that a broken record fails the whole replay, not the load.
func (rm RawMatch) Normalize() Match {
	return Match{
		Season:   strings.TrimSpace(rm.Season),
		Round:    RoundID{Season: strings.TrimSpace(rm.Season), Label: strings.TrimSpace(rm.Round)},
		Date:     strings.TrimSpace(rm.Date),
		Location: strings.TrimSpace(rm.Location),
		Group:    strings.TrimSpace(rm.Group),
		SideA:    ParseSide(rm.PlayerA, rm.PlayerATeam),
		SideB:    ParseSide(rm.PlayerB, rm.PlayerBTeam),
		ScoreA:   int(rm.ScoreA),
		ScoreB:   int(rm.ScoreB),
		Doubles:  bool(rm.Doubles),
	}
}

// Played reports whether the match represents an actual result. A fixture
// with both scores at 0 and walkover tokens on both sides is a slot that has
// not been played yet; everything else counts as played, including forfeited
// legs where only one side is a walkover token.
func (m Match) Played() bool {
	if m.ScoreA == 0 && m.ScoreB == 0 && m.SideA.AllWalkover() && m.SideB.AllWalkover() {
		return false
	}
	return true
}

// FlexInt decodes JSON numbers or numeric strings, coercing anything else to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, perr := strconv.Atoi(strings.TrimSpace(s)); perr == nil {
			*f = FlexInt(parsed)
			return nil
		}
	}
	*f = 0
	return nil
}

// FlexBool decodes JSON booleans or the strings "true"/"false".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}
	*f = false
	return nil
}
