package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var yearPattern = regexp.MustCompile(`20\d{2}`)

// DetectMonthYear extracts a target month and year from an uploaded
// filename ("OnCall Feb 2025.xlsx", "rotation_february2024.xlsx").
// Month is matched by name or abbreviation substring, year by the first
// 4-digit token matching 20xx. Either value is 0 when not found.
func DetectMonthYear(filename string) (month, year int) {
	lower := strings.ToLower(filename)

	for m := 1; m <= 12; m++ {
		name := strings.ToLower(time.Month(m).String())
		abbr := name[:3]
		if strings.Contains(lower, name) || strings.Contains(lower, abbr) {
			month = m
			break
		}
	}

	if match := yearPattern.FindString(filename); match != "" {
		year, _ = strconv.Atoi(match)
	}

	return month, year
}
