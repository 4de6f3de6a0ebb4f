// Package exporter writes the fixed-layout import files the scheduling
// system ingests, as CSV and as a styled XLSX workbook.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/sharadgeorge/oncall-converter/internal/model"
	"github.com/sharadgeorge/oncall-converter/internal/parser"
)

// header fixed import column order. Readers and writers must agree on
// it exactly; the downstream system matches columns by position.
var header = []string{"EMPLOYEE", "TEAM", "STARTDATE", "STARTTIME", "ENDDATE", "ENDTIME", "ROLE", "NOTES"}

const sheetName = "Schedule"

// Filename builds the import file name for one month's run.
func Filename(year, month int, ext string) string {
	return fmt.Sprintf("EpicOnCall_Import_SCHEDULE_%d_%s.%s", year, parser.MonthName(month), ext)
}

// WriteCSV writes records in import layout to w, in record order.
func WriteCSV(w io.Writer, records []model.ScheduleRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Employee, r.Team, r.StartDate, r.StartTime, r.EndDate, r.EndTime, r.Role, r.Notes}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV import file at path, creating parent
// directories as needed.
func WriteCSVFile(path string, records []model.ScheduleRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, records)
}

// NewWorkbook builds the XLSX import workbook in memory: one sheet, a
// bold header row, then one row per record.
func NewWorkbook(records []model.ScheduleRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range header {
		cell := parser.CellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}
	last := parser.CellName(len(header), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range records {
		row := i + 2
		values := []string{r.Employee, r.Team, r.StartDate, r.StartTime, r.EndDate, r.EndTime, r.Role, r.Notes}
		for col, v := range values {
			cell := parser.CellName(col+1, row)
			// Times and team ids stay strings so leading digits and
			// the no-colon time format survive Excel.
			if err := f.SetCellStr(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}

// WriteXLSXFile writes the XLSX import file at path.
func WriteXLSXFile(path string, records []model.ScheduleRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := NewWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ReadCSV parses an import-layout CSV back into records. Used by tests
// and by operators re-checking a generated file.
func ReadCSV(r io.Reader) ([]model.ScheduleRecord, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	var records []model.ScheduleRecord
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("csv row has %d columns, want %d", len(row), len(header))
		}
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// ReadWorkbook parses an import-layout XLSX back into records.
func ReadWorkbook(f *excelize.File) ([]model.ScheduleRecord, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	var records []model.ScheduleRecord
	for _, row := range rows[1:] {
		// Trailing empty cells are dropped by excelize.
		for len(row) < len(header) {
			row = append(row, "")
		}
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func recordFromRow(row []string) model.ScheduleRecord {
	return model.ScheduleRecord{
		Employee:  row[0],
		Team:      row[1],
		StartDate: row[2],
		StartTime: row[3],
		EndDate:   row[4],
		EndTime:   row[5],
		Role:      row[6],
		Notes:     row[7],
	}
}
