package parser

import (
	"testing"
	"time"
)

func TestIsWeekday_FridaySaturdayAreWeekend(t *testing.T) {
	t.Parallel()

	// February 2024: the 2nd is a Friday, the 3rd a Saturday.
	weekend := map[int]bool{}
	for day := 1; day <= 29; day++ {
		date := time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)
		if !IsWeekday(date) {
			weekend[day] = true
		}
	}

	wantWeekend := []int{2, 3, 9, 10, 16, 17, 23, 24}
	if len(weekend) != len(wantWeekend) {
		t.Fatalf("weekend day count = %d, want %d (%v)", len(weekend), len(wantWeekend), weekend)
	}
	for _, day := range wantWeekend {
		if !weekend[day] {
			t.Fatalf("day %d should be a weekend day", day)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	cases := map[[2]int]int{
		{2024, 2}:  29,
		{2025, 2}:  28,
		{2025, 1}:  31,
		{2025, 4}:  30,
		{2025, 12}: 31,
	}
	for in, want := range cases {
		if got := DaysInMonth(in[0], in[1]); got != want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", in[0], in[1], got, want)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"A":  1,
		"B":  2,
		"H":  8,
		"AG": 33,
		"AH": 34,
		"":   0,
		"5":  0,
	}
	for in, want := range cases {
		if got := ColumnIndex(in); got != want {
			t.Fatalf("ColumnIndex(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNormalizeCell(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  AK  ":       "AK",
		"D\nE":         "D E",
		"D\r\nE":       "D  E",
		"":             "",
		"\n\n":         "",
		"on vacation ": "on vacation",
	}
	for in, want := range cases {
		if got := NormalizeCell(in); got != want {
			t.Fatalf("NormalizeCell(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMonthNames(t *testing.T) {
	t.Parallel()

	if got := MonthName(2); got != "February" {
		t.Fatalf("MonthName(2) = %q", got)
	}
	if got := MonthAbbr(9); got != "Sep" {
		t.Fatalf("MonthAbbr(9) = %q", got)
	}
	if got := MonthName(13); got != "" {
		t.Fatalf("MonthName(13) = %q, want empty", got)
	}
}
