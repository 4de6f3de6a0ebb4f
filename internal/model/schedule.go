package model

// ScheduleRecord one row of the fixed import layout. Produced only,
// never mutated after creation. Dates are MM/DD/YYYY, times are no-colon
// 24h strings ("700", "1530"). Duplicates are possible when upstream
// data is ambiguous; uniqueness is not a model invariant.
type ScheduleRecord struct {
	Employee  string `json:"employee"`
	Team      string `json:"team"`
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`
	Role      string `json:"role"`
	Notes     string `json:"notes"`
}

// RawAssignment a single raw extraction hit for one day, before
// reconciliation. Employee is the resolved username or "" when the cell
// text could not be resolved.
type RawAssignment struct {
	Day      int      `json:"day"`
	Employee string   `json:"employee"`
	Markers  []string `json:"markers"`
	Source   string   `json:"source"` // sheet tag the hit came from
}

// ExpectedBlock one time block the schedule structure implies should
// exist. Satisfied flips at most once, on the first exact
// (team, day, start, end) match against an emitted record.
type ExpectedBlock struct {
	Team      string `json:"team"`
	Day       int    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Source    string `json:"source"`
	Satisfied bool   `json:"satisfied"`
}

// WarningsReport operator-facing data-quality summary for one run.
// Purely informational; it never blocks output generation.
type WarningsReport struct {
	UnknownNames    []string        `json:"unknownNames"`
	UnknownInitials []string        `json:"unknownInitials"`
	MissingBlocks   []ExpectedBlock `json:"missingBlocks"`
}

// Empty reports whether the run produced no warnings at all.
func (w *WarningsReport) Empty() bool {
	return len(w.UnknownNames) == 0 && len(w.UnknownInitials) == 0 && len(w.MissingBlocks) == 0
}
