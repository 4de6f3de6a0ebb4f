package converter

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	_ "github.com/sharadgeorge/oncall-converter/internal/department/all"
	"github.com/sharadgeorge/oncall-converter/internal/directory"
	"github.com/sharadgeorge/oncall-converter/internal/model"
)

func testDirectory() *directory.Directory {
	return directory.New([]model.EmployeeDirectoryEntry{
		{Username: "bellam5", Initials: "MB", FullName: "Dr. Monica Bella", Roles: []string{"1056"}, Department: "Radiology"},
		{Username: "mumir4", Initials: "MM", FullName: "Dr. Mir Miranda", Roles: []string{"1056"}, Department: "Radiology"},
	})
}

// writeRadiologyFixtures builds a minimal February 2024 upload pair.
func writeRadiologyFixtures(t *testing.T, workName, oncallName string) (string, string) {
	t.Helper()
	dir := t.TempDir()

	set := func(f *excelize.File, sheet, cell, value string) {
		t.Helper()
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("set %s: %v", cell, err)
		}
	}

	work := excelize.NewFile()
	if _, err := work.NewSheet("WORK SCHEDULE"); err != nil {
		t.Fatalf("create sheet: %v", err)
	}
	set(work, "WORK SCHEDULE", "A5", "1")
	set(work, "WORK SCHEDULE", "C5", "MM") // MRI work block, day 1
	workPath := filepath.Join(dir, workName)
	if err := work.SaveAs(workPath); err != nil {
		t.Fatalf("save work fixture: %v", err)
	}
	_ = work.Close()

	oncall := excelize.NewFile()
	set(oncall, "Sheet1", "A30", "Dr. Monica Bella") // MRI on-call band
	set(oncall, "Sheet1", "D30", "X")                // day 1
	oncallPath := filepath.Join(dir, oncallName)
	if err := oncall.SaveAs(oncallPath); err != nil {
		t.Fatalf("save oncall fixture: %v", err)
	}
	_ = oncall.Close()

	return workPath, oncallPath
}

func TestConvert_DetectsMonthFromFilename(t *testing.T) {
	t.Parallel()

	workPath, oncallPath := writeRadiologyFixtures(t, "Work Schedule Feb 2024.xlsx", "OnCall Feb 2024.xlsx")
	c := New(testDirectory(), zap.NewNop())

	result, err := c.Convert(Options{
		Department: "Radiology",
		Files:      []string{workPath, oncallPath},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(result.NeedsInput) != 0 {
		t.Fatalf("unexpected input requests: %+v", result.NeedsInput)
	}
	if result.Month != 2 || result.Year != 2024 {
		t.Fatalf("detected %d/%d, want 2/2024", result.Month, result.Year)
	}

	// Day 1 MRI: work block + on-call block.
	if len(result.Records) != 2 {
		t.Fatalf("record count = %d: %+v", len(result.Records), result.Records)
	}
	if result.Records[0].Employee != "mumir4" || result.Records[1].Employee != "bellam5" {
		t.Fatalf("records = %+v", result.Records)
	}

	// Every record satisfied exactly one registered block.
	if len(result.Records) > result.ExpectedCount {
		t.Fatalf("records (%d) exceed expected blocks (%d)", len(result.Records), result.ExpectedCount)
	}
	if got := len(result.Records) + len(result.Warnings.MissingBlocks); got != result.ExpectedCount {
		t.Fatalf("records + missing = %d, want %d", got, result.ExpectedCount)
	}
}

func TestConvert_UnresolvedMonthNeedsInput(t *testing.T) {
	t.Parallel()

	workPath, oncallPath := writeRadiologyFixtures(t, "work.xlsx", "oncall.xlsx")
	c := New(testDirectory(), zap.NewNop())

	result, err := c.Convert(Options{
		Department: "Radiology",
		Files:      []string{workPath, oncallPath},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(result.NeedsInput) != 1 || result.NeedsInput[0].Slot != "month" {
		t.Fatalf("needsInput = %+v, want a month request", result.NeedsInput)
	}
	if len(result.Records) != 0 {
		t.Fatalf("a run needing input must not produce records")
	}

	// Resubmitting with the month set runs normally.
	result, err = c.Convert(Options{
		Department: "Radiology",
		Files:      []string{workPath, oncallPath},
		Month:      2,
		Year:       2024,
	})
	if err != nil {
		t.Fatalf("convert with explicit month: %v", err)
	}
	if len(result.NeedsInput) != 0 || len(result.Records) != 2 {
		t.Fatalf("explicit month run = %+v", result)
	}
}

func TestConvert_UnknownDepartment(t *testing.T) {
	t.Parallel()

	c := New(testDirectory(), zap.NewNop())
	if _, err := c.Convert(Options{Department: "Oncology", Files: []string{"x.xlsx"}}); err == nil {
		t.Fatalf("unknown department must error")
	}
}
