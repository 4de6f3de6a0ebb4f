package parser

import "testing"

func TestDetectMonthYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		month    int
		year     int
	}{
		{"OnCall Feb 2025.xlsx", 2, 2025},
		{"rotation_february2024.xlsx", 2, 2024},
		{"TEAM8 December 2023 oncall.xlsx", 12, 2023},
		{"schedule.xlsx", 0, 0},
		{"jan schedule.xlsx", 1, 0},
		{"Work Schedule 2026.xlsx", 0, 2026},
	}

	for _, tc := range cases {
		month, year := DetectMonthYear(tc.filename)
		if month != tc.month || year != tc.year {
			t.Fatalf("DetectMonthYear(%q) = (%d, %d), want (%d, %d)",
				tc.filename, month, year, tc.month, tc.year)
		}
	}
}
