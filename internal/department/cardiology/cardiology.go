// Package cardiology implements schedule extraction for the Cardiology
// department: a rotation workbook feeding Team 123 (consultants and
// staff) and Team 94, plus a separate Team 8 echo workbook.
package cardiology

import (
	"fmt"
	"strconv"
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
	department.Register(Cardiology{})
}

const (
	teamCardiology     = "Cardiology"                  // Team 123
	teamInterventional = "Interventional Cardiologist" // Team 94
	teamCardiovascular = "Cardiovascular"              // Team 8

	// consultantRole fixed role code for Team 123 consultant blocks.
	consultantRole = "3042457"
	// defaultStaffRole applied when a staff member carries no
	// directory roles.
	defaultStaffRole = "72"
)

// consultantVocab marker vocabulary of the attending sheet. Consultants
// only ever carry day-call variants and the weekend marker; everything
// else in their cells is free-form annotation.
var consultantVocab = &parser.Vocabulary{
	Aliases: map[string]string{
		"D":   "D",
		"LD":  "LD",
		"DL":  "DL",
		"D/A": "D/A",
		"X":   "X",
	},
}

// staffVocab marker vocabulary of the SP sheet. "2C/E" and "2CE" are
// shorthand for working the day block and staying for the evening.
var staffVocab = &parser.Vocabulary{
	Aliases: map[string]string{
		"D":   "D",
		"LD":  "LD",
		"DL":  "DL",
		"D/A": "D/A",
		"X":   "X",
		"2C":  "2C",
		"N":   "N",
		"E":   "E",
		"CE":  "E",
		"2BE": "E",
	},
	Compounds: map[string][]string{
		"2C/E": {"D", "E"},
		"2CE":  {"D", "E"},
	},
}

// echoRoles Team 8 marker-to-role mapping: X covers both the adult and
// the pediatric echo role, XA and XP one each.
var echoRoles = map[string][]string{
	"X":  {"84", "2001"},
	"XA": {"84"},
	"XP": {"2001"},
}

// runConfig worksheets and row layout selected during validation.
type runConfig struct {
	rotation       *excelize.File
	attendingSheet string
	spSheet        string
	team8          *excelize.File
	team8Sheet     string

	consultantRows [2]int
	staffRows      [2]int
	team94Row      int
	team8Rows      [2]int
}

// Cardiology the department implementation. Stateless; registered once.
type Cardiology struct{}

// Name implements department.Department.
func (Cardiology) Name() string { return "Cardiology" }

// FileRequirements implements department.Department.
func (Cardiology) FileRequirements() []string {
	return []string{
		"Rotation Schedule file (.xlsx) - for Teams 94 and 123",
		"Team 8 Schedule file (.xlsx) - for Cardiovascular team",
	}
}

// TeamAbbreviations implements department.Department.
func (Cardiology) TeamAbbreviations() map[string]string {
	return map[string]string{
		teamCardiovascular: "CardioVasc",
		teamInterventional: "Int_Cardio",
		teamCardiology:     "Cardiology",
	}
}

// ValidateAndConfigure opens both workbooks and resolves the three
// worksheets. The SP sheet has no reliable fallback: when it cannot be
// found the operator must pick one, so it comes back as an InputRequest
// instead of silently using the wrong sheet.
func (Cardiology) ValidateAndConfigure(run *department.Run, files []string, opts department.Options) ([]department.InputRequest, error) {
	if len(files) < 2 {
		return nil, fmt.Errorf("cardiology requires at least 2 files, got %d", len(files))
	}

	rotation, err := excelize.OpenFile(files[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open rotation schedule: %w", err)
	}
	run.TrackFile(rotation)

	abbr := strings.ToLower(parser.MonthAbbr(run.Month))

	attendingSheet, err := parser.ResolveSheet(rotation, parser.SheetSpec{
		Slot:          "attending",
		Keywords:      [][]string{{abbr, "attending"}},
		Override:      opts.SheetOverride("attending"),
		FallbackFirst: true,
	})
	if err != nil {
		return nil, err
	}

	spSheet, err := parser.ResolveSheet(rotation, parser.SheetSpec{
		Slot: "sp",
		Keywords: [][]string{
			{"sp", abbr},
			{"sp", strconv.Itoa(run.Year)},
			{"sp"},
		},
		Override: opts.SheetOverride("sp"),
		Optional: true,
	})
	if err != nil {
		return nil, err
	}

	team8, err := excelize.OpenFile(files[1])
	if err != nil {
		return nil, fmt.Errorf("failed to open team 8 schedule: %w", err)
	}
	run.TrackFile(team8)

	team8Sheet, err := parser.ResolveSheet(team8, parser.SheetSpec{
		Slot:          "team8",
		Keywords:      [][]string{{"on", "call"}},
		Override:      opts.SheetOverride("team8"),
		FallbackFirst: true,
	})
	if err != nil {
		return nil, err
	}

	if spSheet == "" {
		return []department.InputRequest{{
			Slot:    "sp",
			Reason:  "no SP (staff/fellows) sheet found in the rotation workbook",
			Choices: rotation.GetSheetList(),
		}}, nil
	}

	run.Log.Info("cardiology worksheets selected",
		zap.String("attending", attendingSheet),
		zap.String("sp", spSheet),
		zap.String("team8", team8Sheet))

	run.Config = &runConfig{
		rotation:       rotation,
		attendingSheet: attendingSheet,
		spSheet:        spSheet,
		team8:          team8,
		team8Sheet:     team8Sheet,
		consultantRows: opts.RowRange("consultants", [2]int{6, 11}),
		staffRows:      opts.RowRange("staff", [2]int{6, 13}),
		team94Row:      opts.RowRange("team94", [2]int{29, 29})[0],
		team8Rows:      opts.RowRange("team8", [2]int{12, 16}),
	}
	return nil, nil
}

// Extract reads all four sources and reconciles them day by day. Output
// order per day is Team 123, then Team 94, then Team 8.
func (Cardiology) Extract(run *department.Run) ([]model.ScheduleRecord, error) {
	cfg, ok := run.Config.(*runConfig)
	if !ok {
		return nil, fmt.Errorf("cardiology run is not configured")
	}

	var records []model.ScheduleRecord

	days := parser.DaysInMonth(run.Year, run.Month)
	for day := 1; day <= days; day++ {
		date := time.Date(run.Year, time.Month(run.Month), day, 0, 0, 0, 0, time.UTC)
		weekday := parser.IsWeekday(date)

		consultants, err := readCandidates(run, cfg.rotation, cfg.attendingSheet, cfg.consultantRows, day, consultantVocab, true)
		if err != nil {
			return nil, err
		}
		staff, err := readCandidates(run, cfg.rotation, cfg.spSheet, cfg.staffRows, day, staffVocab, false)
		if err != nil {
			return nil, err
		}

		emit := func(team, teamID string, sel schedule.Selection, start, end, role, notes, source string) {
			if !sel.Present {
				return
			}
			run.Tracker.Register(team, day, start, end, source)
			if sel.Employee == "" {
				return
			}
			if role == "" {
				role = staffRole(run, sel.Employee)
			}
			records = append(records, schedule.NewRecord(sel.Employee, teamID, date, start, end, role, notes))
			run.Tracker.Satisfy(team, day, start, end)
		}

		// Team 123
		if weekday {
			consultant := schedule.Select(consultants, schedule.Priority{
				Primary:   "D",
				Secondary: []string{"LD", "DL", "D/A"},
				AnyToken:  true,
			})
			emit(teamCardiology, "123", consultant, "700", "1600", consultantRole, "2nd Day Call", "Team123")

			dayCall := schedule.Select(staff, schedule.Priority{Primary: "D", Secondary: []string{"2C"}})
			emit(teamCardiology, "123", dayCall, "700", "1600", "", "1st Day Call", "Team123")

			evening := schedule.Select(staff, schedule.Priority{Primary: "E"})
			emit(teamCardiology, "123", evening, "1600", "1900", "", "Evening Call", "Team123")

			night := schedule.Select(staff, schedule.Priority{Primary: "N"})
			emit(teamCardiology, "123", night, "1900", "700", "", "Night Call", "Team123")
		} else {
			consultant := schedule.Select(consultants, schedule.Priority{
				Primary:   "X",
				Secondary: []string{"D"},
				AnyToken:  true,
			})
			emit(teamCardiology, "123", consultant, "700", "1900", consultantRole, "2nd Weekend Day Call", "Team123")

			dayCall := schedule.Select(staff, schedule.Priority{Primary: "D", Secondary: []string{"2C"}})
			emit(teamCardiology, "123", dayCall, "700", "1900", "", "1st Weekend Day Call", "Team123")

			night := schedule.Select(staff, schedule.Priority{Primary: "N"})
			emit(teamCardiology, "123", night, "1900", "700", "", "Night Call", "Team123")
		}

		// Team 94: single rotating slot; on call from end of procedures
		// on weekdays, the full day on weekends.
		team94 := &parser.SingleRow{
			File:     cfg.rotation,
			Sheet:    cfg.attendingSheet,
			Row:      cfg.team94Row,
			FirstCol: parser.ColumnIndex("D"),
			LastCol:  parser.ColumnIndex("AH"),
		}
		value, err := team94.ReadDay(day)
		if err != nil {
			return nil, err
		}
		if value != "" {
			start := "1600"
			if !weekday {
				start = "700"
			}
			run.Tracker.Register(teamInterventional, day, start, "700", "Team94")
			if username, ok := run.Resolver.Resolve(value); ok {
				records = append(records, schedule.NewRecord(username, "94", date, start, "700", staffRole(run, username), "On Call"))
				run.Tracker.Satisfy(teamInterventional, day, start, "700")
			}
		}

		// Team 8: one 24-hour record per employee per covered echo role.
		echo := &parser.MarkerGrid{
			File:     cfg.team8,
			Sheet:    cfg.team8Sheet,
			NameCol:  parser.ColumnIndex("B"),
			FirstCol: parser.ColumnIndex("C"),
			LastCol:  parser.ColumnIndex("AG"),
			RowStart: cfg.team8Rows[0],
			RowEnd:   cfg.team8Rows[1],
		}
		cells, err := echo.ReadDay(day)
		if err != nil {
			return nil, err
		}
		for _, cell := range cells {
			roles, ok := echoRoles[strings.ToUpper(cell.Value)]
			if !ok {
				continue
			}
			username, _ := run.Resolver.Resolve(cell.Name)
			for _, role := range roles {
				run.Tracker.Register(teamCardiovascular, day, "700", "700", "Team8")
				if username == "" {
					continue
				}
				records = append(records, schedule.NewRecord(username, "8", date, "700", "700", role, ""))
				run.Tracker.Satisfy(teamCardiovascular, day, "700", "700")
			}
		}
	}

	return records, nil
}

// readCandidates collects the day's marker-bearing entries from one
// rotation sheet band. Names live in column B. With resolveFreeText the
// identifier is resolved even when the cell carries no markers, so
// unknown consultants surface regardless of what was written next to
// them; the SP sheet skips resolution for marker-less cells, keeping
// free-text rows out of the warnings.
func readCandidates(run *department.Run, f *excelize.File, sheet string, rows [2]int, day int, vocab *parser.Vocabulary, resolveFreeText bool) ([]schedule.Candidate, error) {
	grid := &parser.MarkerGrid{
		File:     f,
		Sheet:    sheet,
		NameCol:  parser.ColumnIndex("B"),
		FirstCol: parser.ColumnIndex("D"),
		LastCol:  parser.ColumnIndex("AH"),
		RowStart: rows[0],
		RowEnd:   rows[1],
	}

	cells, err := grid.ReadDay(day)
	if err != nil {
		return nil, err
	}

	var candidates []schedule.Candidate
	for _, cell := range cells {
		var username string
		if resolveFreeText {
			username, _ = run.Resolver.Resolve(cell.Name)
		}
		markers := vocab.Parse(cell.Value)
		if len(markers) == 0 {
			continue
		}
		if !resolveFreeText {
			username, _ = run.Resolver.Resolve(cell.Name)
		}
		candidates = append(candidates, schedule.Candidate{Employee: username, Markers: markers})
	}
	return candidates, nil
}

// staffRole returns the employee's first directory role, defaulting for
// staff members missing from the role table.
func staffRole(run *department.Run, username string) string {
	role := run.Resolver.Directory().PrimaryRole(username, "")
	if role == "" {
		run.Log.Warn("employee has no directory role, using default",
			zap.String("employee", username),
			zap.String("role", defaultStaffRole))
		return defaultStaffRole
	}
	return role
}
