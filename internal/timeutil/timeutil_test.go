package timeutil

import (
	"testing"
	"time"
)

func TestDailyTokenZeroPads(t *testing.T) {
	cases := map[time.Time]string{
		time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC):     "0703",
		time.Date(2025, time.November, 23, 0, 0, 0, 0, time.UTC): "2311",
		time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC): "0101",
		time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC): "3112",
	}
	for at, want := range cases {
		if got := DailyToken(at); got != want {
			t.Fatalf("DailyToken(%v) = %q, want %q", at, got, want)
		}
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-07")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDate(parsed) != "2025-03-07" {
		t.Fatalf("round trip = %q", FormatDate(parsed))
	}

	if _, err := ParseDate("07.03.2025"); err == nil {
		t.Fatal("wrong layout must fail")
	}
}
