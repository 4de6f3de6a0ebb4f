package parser

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ColumnIndex converts a column letter ("A", "H", "AG") to a 1-based
// column index. Invalid letters return 0.
func ColumnIndex(letter string) int {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(letter))
	if err != nil {
		return 0
	}
	return n
}

// CellName builds an A1-style cell reference from 1-based coordinates.
func CellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// IsWeekday reports whether a date falls on a working day under the
// regional convention used by the hospital: Sunday through Thursday are
// weekdays, Friday and Saturday are the weekend.
func IsWeekday(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday:
		return false
	default:
		return true
	}
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName returns the English month name ("February").
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// MonthAbbr returns the three-letter month abbreviation ("Feb").
func MonthAbbr(month int) string {
	name := MonthName(month)
	if name == "" {
		return ""
	}
	return name[:3]
}

// NormalizeCell trims a raw cell value and collapses newlines into
// spaces. Marker cells are frequently multi-line in the source grids.
func NormalizeCell(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
