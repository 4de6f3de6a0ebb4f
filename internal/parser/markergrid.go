package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GridCell one non-empty marker cell paired with the identifier from
// the row's name column.
type GridCell struct {
	Row   int
	Name  string // trimmed identifier cell text
	Value string // normalized marker cell text
}

// MarkerGrid reads a one-row-per-employee grid: day d of the month lives
// at column FirstCol+d-1, and each row's identifier sits in a fixed name
// column. Rows listed in SkipRows (embedded header rows) are ignored.
type MarkerGrid struct {
	File     *excelize.File
	Sheet    string
	NameCol  int
	FirstCol int
	LastCol  int // 0 means unbounded; otherwise days past it are out of range
	RowStart int
	RowEnd   int
	SkipRows map[int]bool
}

// ReadDay returns the populated cells for one day of the month, in row
// order. Days mapping past LastCol return nothing: the grid simply does
// not cover them.
func (g *MarkerGrid) ReadDay(day int) ([]GridCell, error) {
	col := g.FirstCol + day - 1
	if g.LastCol > 0 && col > g.LastCol {
		return nil, nil
	}

	var cells []GridCell
	for row := g.RowStart; row <= g.RowEnd; row++ {
		if g.SkipRows[row] {
			continue
		}

		value, err := g.File.GetCellValue(g.Sheet, CellName(col, row))
		if err != nil {
			return nil, fmt.Errorf("failed to read cell %s!%s: %w", g.Sheet, CellName(col, row), err)
		}
		value = NormalizeCell(value)
		if value == "" {
			continue
		}

		name, err := g.File.GetCellValue(g.Sheet, CellName(g.NameCol, row))
		if err != nil {
			return nil, fmt.Errorf("failed to read cell %s!%s: %w", g.Sheet, CellName(g.NameCol, row), err)
		}
		name = NormalizeCell(name)
		if name == "" {
			continue
		}

		cells = append(cells, GridCell{Row: row, Name: name, Value: value})
	}
	return cells, nil
}
