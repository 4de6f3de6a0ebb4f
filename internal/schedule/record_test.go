package schedule

import (
	"testing"
	"time"
)

func TestClockMinutes(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"700":  7 * 60,
		"1530": 15*60 + 30,
		"0":    0,
		"2359": 23*60 + 59,
		"2460": -1,
		"1299": -1,
		"":     -1,
		"7:00": -1,
	}
	for in, want := range cases {
		if got := ClockMinutes(in); got != want {
			t.Fatalf("ClockMinutes(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestOvernight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end string
		want       bool
	}{
		{"700", "1530", false},
		{"1530", "700", true},
		{"700", "700", true}, // full 24 hours
		{"1900", "700", true},
		{"1600", "1900", false},
	}
	for _, tc := range cases {
		if got := Overnight(tc.start, tc.end); got != tc.want {
			t.Fatalf("Overnight(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestNewRecord_EndDateFollowsOvernightRule(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	same := NewRecord("bellam5", "116", date, "700", "1530", "1056", "")
	if same.StartDate != "02/29/2024" || same.EndDate != "02/29/2024" {
		t.Fatalf("same-day block dates = %s .. %s", same.StartDate, same.EndDate)
	}

	over := NewRecord("bellam5", "116", date, "1530", "700", "1056", "")
	if over.EndDate != "03/01/2024" {
		t.Fatalf("overnight block end date = %s, want 03/01/2024", over.EndDate)
	}

	full := NewRecord("bellam5", "116", date, "700", "700", "1056", "")
	if full.EndDate != "03/01/2024" {
		t.Fatalf("24h block end date = %s, want 03/01/2024", full.EndDate)
	}
}
