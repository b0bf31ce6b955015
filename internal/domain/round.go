package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RoundID uniquely identifies a league round by its season term and round
// label (e.g. season "JAR 2025", label "3. kolo"). Rounds have no entity of
// their own; they are derived from matches on demand.
type RoundID struct {
	Season string `json:"season"`
	Label  string `json:"label"`
}

const (
	termSpring = 1
	termFall   = 2
)

// SeasonOrder reduces the season term to a sortable integer: year*10 + term,
// where JAR sorts before the autumn term of the same year.
func (r RoundID) SeasonOrder() int {
	fields := strings.Fields(r.Season)
	year := 0
	term := termFall
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil && n > 1900 {
			year = n
			continue
		}
		if strings.EqualFold(f, "jar") {
			term = termSpring
		}
	}
	return year*10 + term
}

// Number extracts the round number as the first embedded digit run of the
// label ("12. kolo" -> 12). Zero when the label carries no digits.
func (r RoundID) Number() int {
	start := -1
	for i, c := range r.Label {
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(r.Label[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(r.Label[start:])
		return n
	}
	return 0
}

// Key renders the sortable display key used in player histories.
func (r RoundID) Key() string {
	return fmt.Sprintf("%d-%02d|%s(%s)", r.SeasonOrder(), r.Number(), r.Label, r.Season)
}

// Order returns a single comparable value combining season and round number.
func (r RoundID) Order() int {
	return r.SeasonOrder()*1000 + r.Number()
}

// Before reports whether r is chronologically earlier than other.
func (r RoundID) Before(other RoundID) bool {
	return r.Order() < other.Order()
}

// Equal compares round identity, which is the (season, label) pair.
func (r RoundID) Equal(other RoundID) bool {
	return r.Season == other.Season && r.Label == other.Label
}

// IsZero reports whether the round is unset.
func (r RoundID) IsZero() bool {
	return r.Season == "" && r.Label == ""
}
