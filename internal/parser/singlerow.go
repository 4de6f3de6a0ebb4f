package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SingleRow reads a grid layout where one fixed row holds one value per
// day of the month, e.g. a rotating single on-call slot.
type SingleRow struct {
	File     *excelize.File
	Sheet    string
	Row      int
	FirstCol int
	LastCol  int
}

// ReadDay returns the trimmed cell value for one day, or "" when the
// day maps past the configured last column or the cell is empty.
func (s *SingleRow) ReadDay(day int) (string, error) {
	col := s.FirstCol + day - 1
	if s.LastCol > 0 && col > s.LastCol {
		return "", nil
	}

	value, err := s.File.GetCellValue(s.Sheet, CellName(col, s.Row))
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s!%s: %w", s.Sheet, CellName(col, s.Row), err)
	}
	return NormalizeCell(value), nil
}
