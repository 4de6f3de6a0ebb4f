package schedule

import (
	"sort"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

// Tracker accumulates the data-quality state of one conversion run:
// identifiers that failed to resolve and the ledger of expected time
// blocks. One Tracker per run, never shared across runs.
type Tracker struct {
	department      string
	unknownNames    map[string]bool
	unknownInitials map[string]bool
	expected        []model.ExpectedBlock
}

// NewTracker creates an empty tracker for one run.
func NewTracker(department string) *Tracker {
	return &Tracker{
		department:      department,
		unknownNames:    make(map[string]bool),
		unknownInitials: make(map[string]bool),
	}
}

// AddUnknownName records a name-like identifier that failed resolution.
func (t *Tracker) AddUnknownName(name string) {
	t.unknownNames[name] = true
}

// AddUnknownInitials records an initials-like identifier that failed
// resolution.
func (t *Tracker) AddUnknownInitials(initials string) {
	t.unknownInitials[initials] = true
}

// Register records one expected-block opportunity. Duplicate
// registrations for the same key stay separate entries: each represents
// one opportunity, so the missing-coverage report counts repeats.
func (t *Tracker) Register(team string, day int, start, end, source string) {
	t.expected = append(t.expected, model.ExpectedBlock{
		Team:      team,
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Source:    source,
	})
}

// Satisfy flips the first not-yet-satisfied registration exactly
// matching (team, day, start, end). Returns false when no open
// registration matched.
func (t *Tracker) Satisfy(team string, day int, start, end string) bool {
	for i := range t.expected {
		e := &t.expected[i]
		if e.Satisfied || e.Team != team || e.Day != day || e.StartTime != start || e.EndTime != end {
			continue
		}
		e.Satisfied = true
		return true
	}
	return false
}

// Unsatisfied returns every registration that was never satisfied, in
// registration order.
func (t *Tracker) Unsatisfied() []model.ExpectedBlock {
	var missing []model.ExpectedBlock
	for _, e := range t.expected {
		if !e.Satisfied {
			missing = append(missing, e)
		}
	}
	return missing
}

// ExpectedCount returns the number of registered block opportunities.
func (t *Tracker) ExpectedCount() int {
	return len(t.expected)
}

// Report builds the operator-facing warnings view of the tracker state.
func (t *Tracker) Report() model.WarningsReport {
	report := model.WarningsReport{
		UnknownNames:    sortedKeys(t.unknownNames),
		UnknownInitials: sortedKeys(t.unknownInitials),
		MissingBlocks:   t.Unsatisfied(),
	}
	return report
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
