package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkShiftGrid reads grids whose layout repeats in row blocks: the row
// for a given day is found by scanning a day-number column across the
// configured row ranges rather than by a fixed offset. Cells may hold
// compound "/"-separated values denoting multiple co-assigned readers.
type WorkShiftGrid struct {
	File      *excelize.File
	Sheet     string
	DayCol    int
	RowRanges [][2]int
}

// FindDayRow scans the day column for the given day of the month.
// Returns 0 when the day does not appear in any configured row range.
func (g *WorkShiftGrid) FindDayRow(day int) (int, error) {
	for _, rng := range g.RowRanges {
		for row := rng[0]; row <= rng[1]; row++ {
			value, err := g.File.GetCellValue(g.Sheet, CellName(g.DayCol, row))
			if err != nil {
				return 0, fmt.Errorf("failed to read cell %s!%s: %w", g.Sheet, CellName(g.DayCol, row), err)
			}
			if parseDayNumber(value) == day {
				return row, nil
			}
		}
	}
	return 0, nil
}

// ReadDay returns the ordered reader tokens in the cell at (day row,
// col): compound values are split on "/", trimmed, and uppercased.
// Empty when the day row is absent or the cell is blank.
func (g *WorkShiftGrid) ReadDay(day, col int) ([]string, error) {
	row, err := g.FindDayRow(day)
	if err != nil || row == 0 {
		return nil, err
	}

	value, err := g.File.GetCellValue(g.Sheet, CellName(col, row))
	if err != nil {
		return nil, fmt.Errorf("failed to read cell %s!%s: %w", g.Sheet, CellName(col, row), err)
	}
	value = strings.ToUpper(NormalizeCell(value))
	if value == "" {
		return nil, nil
	}

	var tokens []string
	for _, part := range strings.Split(value, "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens, nil
}

// parseDayNumber extracts the day of month from a day-column cell.
// Cells are written as plain numbers or "12-Jan" style labels; date-typed
// cells render through excelize as "m/d/yy" with a trailing time, so the
// day sits in the middle segment there.
func parseDayNumber(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if idx := strings.IndexByte(value, ' '); idx >= 0 {
		value = value[:idx]
	}
	if day, err := strconv.Atoi(value); err == nil {
		return day
	}
	if idx := strings.IndexByte(value, '-'); idx >= 0 {
		day, err := strconv.Atoi(strings.TrimSpace(value[:idx]))
		if err != nil {
			return 0
		}
		return day
	}
	if parts := strings.Split(value, "/"); len(parts) == 3 {
		if day, err := strconv.Atoi(parts[1]); err == nil {
			return day
		}
	}
	return 0
}
