// Package radiology implements schedule extraction for the Radiology
// department: a work-shift grid covering the daytime reading blocks and
// an on-call marker grid covering evenings and weekends.
package radiology

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/department"
	"github.com/sharadgeorge/oncall-converter/internal/model"
	"github.com/sharadgeorge/oncall-converter/internal/parser"
	"github.com/sharadgeorge/oncall-converter/internal/schedule"
)

func init() {
	department.Register(Radiology{})
}

// teleToken marks the remote reading fallback in compound work-shift
// cells. It is assigned only when no other reader in the cell resolves,
// and never reported as an unknown identifier.
const teleToken = "TELE"

// defaultRole applied when an employee carries no directory roles.
const defaultRole = "1056"

// team one radiology modality with its work-schedule columns and its
// row band in the on-call grid.
type team struct {
	Name       string
	ID         string
	WorkCols   []int
	OncallRows [2]int
}

// teams modality list in output order. Gen_CT splits its weekday work
// time across two columns; every other team has a single work column.
var teams = []team{
	{Name: "Gen_CT", ID: "114", WorkCols: cols("H", "I"), OncallRows: [2]int{5, 21}},
	{Name: "IRA", ID: "115", WorkCols: cols("M"), OncallRows: [2]int{24, 27}},
	{Name: "MRI", ID: "116", WorkCols: cols("C"), OncallRows: [2]int{30, 38}},
	{Name: "US", ID: "126", WorkCols: cols("E"), OncallRows: [2]int{5, 21}},
	{Name: "Fluoro", ID: "127", WorkCols: cols("O"), OncallRows: [2]int{5, 21}},
}

func cols(letters ...string) []int {
	out := make([]int, len(letters))
	for i, l := range letters {
		out[i] = parser.ColumnIndex(l)
	}
	return out
}

// runConfig worksheets selected during validation.
type runConfig struct {
	work   *parser.WorkShiftGrid
	oncall *excelize.File
	sheet  string // on-call worksheet
}

// Radiology the department implementation. Stateless; registered once.
type Radiology struct{}

// Name implements department.Department.
func (Radiology) Name() string { return "Radiology" }

// FileRequirements implements department.Department.
func (Radiology) FileRequirements() []string {
	return []string{
		"Work Schedule file (.xlsx)",
		"OnCall Schedule file (.xlsx)",
	}
}

// TeamAbbreviations implements department.Department.
func (Radiology) TeamAbbreviations() map[string]string {
	return map[string]string{
		"Gen_CT": "GEN",
		"IRA":    "IRA",
		"MRI":    "MRI",
		"US":     "US",
		"Fluoro": "FLU",
	}
}

// ValidateAndConfigure opens both workbooks and pins the worksheets.
// Both sheets fall back to the workbook's first sheet, so radiology
// never needs operator input here.
func (Radiology) ValidateAndConfigure(run *department.Run, files []string, opts department.Options) ([]department.InputRequest, error) {
	if len(files) != 2 {
		return nil, fmt.Errorf("radiology requires exactly 2 files, got %d", len(files))
	}

	workFile, err := excelize.OpenFile(files[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open work schedule: %w", err)
	}
	run.TrackFile(workFile)

	workSheet, err := parser.ResolveSheet(workFile, parser.SheetSpec{
		Slot:          "work",
		Exact:         []string{"WORK SCHEDULE"},
		Override:      opts.SheetOverride("work"),
		FallbackFirst: true,
	})
	if err != nil {
		return nil, err
	}

	oncallFile, err := excelize.OpenFile(files[1])
	if err != nil {
		return nil, fmt.Errorf("failed to open on-call schedule: %w", err)
	}
	run.TrackFile(oncallFile)

	oncallSheet, err := parser.ResolveSheet(oncallFile, parser.SheetSpec{
		Slot:          "oncall",
		Exact:         []string{"Sheet1"},
		Override:      opts.SheetOverride("oncall"),
		FallbackFirst: true,
	})
	if err != nil {
		return nil, err
	}

	run.Log.Info("radiology worksheets selected",
		zap.String("work", workSheet),
		zap.String("oncall", oncallSheet))

	run.Config = &runConfig{
		work: &parser.WorkShiftGrid{
			File:   workFile,
			Sheet:  workSheet,
			DayCol: 1,
			// Schedule data repeats in weekly row blocks separated by
			// header rows.
			RowRanges: [][2]int{{5, 9}, {13, 17}, {21, 25}, {29, 33}, {37, 41}},
		},
		oncall: oncallFile,
		sheet:  oncallSheet,
	}
	return nil, nil
}

// Extract walks every day of the run's month. Weekdays carry daytime
// work blocks plus an overnight on-call block; weekends collapse to a
// single 24-hour on-call block per team. Every block registers as
// expected whether or not an employee resolves.
func (Radiology) Extract(run *department.Run) ([]model.ScheduleRecord, error) {
	cfg, ok := run.Config.(*runConfig)
	if !ok {
		return nil, fmt.Errorf("radiology run is not configured")
	}

	var records []model.ScheduleRecord

	emit := func(t team, date time.Time, day int, start, end, source, username string) {
		run.Tracker.Register(t.Name, day, start, end, source)
		if username == "" {
			return
		}
		role := run.Resolver.Directory().PrimaryRole(username, defaultRole)
		records = append(records, schedule.NewRecord(username, t.ID, date, start, end, role, ""))
		run.Tracker.Satisfy(t.Name, day, start, end)
	}

	days := parser.DaysInMonth(run.Year, run.Month)
	for day := 1; day <= days; day++ {
		date := time.Date(run.Year, time.Month(run.Month), day, 0, 0, 0, 0, time.UTC)

		for _, t := range teams {
			if !parser.IsWeekday(date) {
				username, err := oncallEmployee(run, cfg, day, t)
				if err != nil {
					return nil, err
				}
				emit(t, date, day, "700", "700", "oncall", username)
				continue
			}

			if t.Name == "Gen_CT" {
				// Gen_CT splits the weekday into a morning and an
				// afternoon reading block before on-call starts.
				morning, err := workEmployee(run, cfg, day, t.WorkCols[0])
				if err != nil {
					return nil, err
				}
				emit(t, date, day, "700", "1100", "work", morning)

				afternoon, err := workEmployee(run, cfg, day, t.WorkCols[1])
				if err != nil {
					return nil, err
				}
				emit(t, date, day, "1100", "1530", "work", afternoon)
			} else {
				worker, err := workEmployee(run, cfg, day, t.WorkCols[0])
				if err != nil {
					return nil, err
				}
				emit(t, date, day, "700", "1530", "work", worker)
			}

			oncall, err := oncallEmployee(run, cfg, day, t)
			if err != nil {
				return nil, err
			}
			emit(t, date, day, "1530", "700", "oncall", oncall)
		}
	}

	return records, nil
}

// workEmployee resolves the reader assigned to one work-schedule column
// for one day. Compound cells list co-assigned readers separated by
// "/": the first resolving non-TELE reader wins, and TELE itself is
// used only when nothing else resolved.
func workEmployee(run *department.Run, cfg *runConfig, day, col int) (string, error) {
	tokens, err := cfg.work.ReadDay(day, col)
	if err != nil {
		return "", err
	}

	sawTele := false
	for _, token := range tokens {
		if token == teleToken {
			sawTele = true
			continue
		}
		if username, ok := run.Resolver.Resolve(token); ok {
			return username, nil
		}
	}

	if sawTele {
		// Fallback lookup only; TELE must never show up as unknown.
		if username, ok := run.Resolver.Lookup(teleToken); ok {
			return username, nil
		}
	}
	return "", nil
}

// oncallEmployee finds the first row in the team's on-call band marked
// "X" for the day and resolves its hand-written name. Rows 23 and 29
// hold embedded section headers.
func oncallEmployee(run *department.Run, cfg *runConfig, day int, t team) (string, error) {
	grid := &parser.MarkerGrid{
		File:     cfg.oncall,
		Sheet:    cfg.sheet,
		NameCol:  1,
		FirstCol: 4,
		RowStart: t.OncallRows[0],
		RowEnd:   t.OncallRows[1],
		SkipRows: map[int]bool{23: true, 29: true},
	}

	cells, err := grid.ReadDay(day)
	if err != nil {
		return "", err
	}
	for _, cell := range cells {
		if !strings.EqualFold(cell.Value, "X") {
			continue
		}
		// First marked row wins, resolved or not.
		username, _ := run.Resolver.ResolveLoose(cell.Name)
		return username, nil
	}
	return "", nil
}
