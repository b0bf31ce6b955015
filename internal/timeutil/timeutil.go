package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DailyToken renders the rotating access token for the given day: the
// zero-padded day-of-month followed by the zero-padded month, matching the
// gate the league site has always used.
func DailyToken(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Day(), int(t.Month()))
}
