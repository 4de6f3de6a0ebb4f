// Package converter orchestrates one conversion run: department
// lookup, month detection, worksheet validation, extraction and the
// final warnings report.
package converter

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/department"
	"github.com/sharadgeorge/oncall-converter/internal/directory"
	"github.com/sharadgeorge/oncall-converter/internal/model"
	"github.com/sharadgeorge/oncall-converter/internal/parser"
)

// Coordinator runs conversions against a shared read-only directory.
// Safe for concurrent use: every run gets its own tracker and resolver.
type Coordinator struct {
	dir *directory.Directory
	log *zap.Logger
}

// New creates a coordinator.
func New(dir *directory.Directory, log *zap.Logger) *Coordinator {
	return &Coordinator{dir: dir, log: log}
}

// Options one conversion request. Month and Year may be zero; they are
// then detected from the first uploaded filename.
type Options struct {
	Department string
	Files      []string
	Month      int
	Year       int
	Sheets     map[string]string
	Rows       map[string][2]int
}

// Result outcome of one run. NeedsInput being non-empty means the run
// did not execute: the operator must supply the listed choices and
// resubmit.
type Result struct {
	Department    string                    `json:"department"`
	Month         int                       `json:"month"`
	Year          int                       `json:"year"`
	Records       []model.ScheduleRecord    `json:"records"`
	ExpectedCount int                       `json:"expectedCount"`
	Warnings      model.WarningsReport      `json:"warnings"`
	NeedsInput    []department.InputRequest `json:"needsInput,omitempty"`
}

// Convert executes one run synchronously. Configuration failures
// (unknown department, wrong file count, unreadable workbook) return an
// error; data-quality issues land in the result's warnings report.
func (c *Coordinator) Convert(opts Options) (*Result, error) {
	dept, err := department.Get(opts.Department)
	if err != nil {
		return nil, err
	}
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no input files provided")
	}

	month, year := opts.Month, opts.Year
	if month == 0 || year == 0 {
		detectedMonth, detectedYear := parser.DetectMonthYear(filepath.Base(opts.Files[0]))
		if month == 0 {
			month = detectedMonth
		}
		if year == 0 {
			year = detectedYear
		}
	}
	if year == 0 {
		year = time.Now().Year()
	}
	if month == 0 {
		// Guessing the month silently would misdate a whole month of
		// shifts. Hand the choice back instead.
		return &Result{
			Department: dept.Name(),
			Year:       year,
			NeedsInput: []department.InputRequest{{
				Slot:    "month",
				Reason:  "target month not found in filename",
				Choices: monthNames(),
			}},
		}, nil
	}

	run := department.NewRun(dept.Name(), month, year, c.dir, c.log)
	defer run.Close()

	requests, err := dept.ValidateAndConfigure(run, opts.Files, department.Options{
		SheetOverrides: opts.Sheets,
		Rows:           opts.Rows,
	})
	if err != nil {
		return nil, fmt.Errorf("validation failed for %s: %w", dept.Name(), err)
	}
	if len(requests) > 0 {
		return &Result{Department: dept.Name(), Month: month, Year: year, NeedsInput: requests}, nil
	}

	records, err := dept.Extract(run)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", dept.Name(), err)
	}

	result := &Result{
		Department:    dept.Name(),
		Month:         month,
		Year:          year,
		Records:       records,
		ExpectedCount: run.Tracker.ExpectedCount(),
		Warnings:      run.Tracker.Report(),
	}

	c.log.Info("conversion finished",
		zap.String("department", dept.Name()),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("records", len(records)),
		zap.Int("expected", result.ExpectedCount),
		zap.Int("unknownNames", len(result.Warnings.UnknownNames)),
		zap.Int("unknownInitials", len(result.Warnings.UnknownInitials)),
		zap.Int("missingBlocks", len(result.Warnings.MissingBlocks)))

	return result, nil
}

// Directory returns the shared employee directory.
func (c *Coordinator) Directory() *directory.Directory {
	return c.dir
}

func monthNames() []string {
	names := make([]string, 12)
	for m := 1; m <= 12; m++ {
		names[m-1] = parser.MonthName(m)
	}
	return names
}
