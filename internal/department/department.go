package department

import (
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/directory"
	"github.com/sharadgeorge/oncall-converter/internal/model"
	"github.com/sharadgeorge/oncall-converter/internal/schedule"
)

// Department fixed extraction contract one department implements.
// Implementations are stateless; all per-run state lives in the Run.
type Department interface {
	// Name returns the department name, unique across the registry.
	Name() string
	// FileRequirements describes the expected upload files, in order.
	FileRequirements() []string
	// TeamAbbreviations maps team names to display abbreviations.
	TeamAbbreviations() map[string]string
	// ValidateAndConfigure opens the uploaded workbooks, resolves the
	// worksheets for the run's month, and stores the department config
	// on the run. It never prompts: unresolved choices come back as
	// InputRequests for the calling layer to surface. Configuration
	// failures (wrong file count, unreadable workbook) are errors.
	ValidateAndConfigure(run *Run, files []string, opts Options) ([]InputRequest, error)
	// Extract reads the pre-selected worksheets and produces the ordered
	// record sequence for the run's month. Data-quality issues go to the
	// run's tracker; only configuration-class failures return an error.
	Extract(run *Run) ([]model.ScheduleRecord, error)
}

// Options operator-supplied configuration for one run.
type Options struct {
	// SheetOverrides maps a department-defined slot name ("work",
	// "attending", "sp", ...) to an explicit sheet name.
	SheetOverrides map[string]string
	// Rows overrides a department-defined row range by slot name.
	Rows map[string][2]int
}

// SheetOverride returns the override for a slot, or "".
func (o Options) SheetOverride(slot string) string {
	if o.SheetOverrides == nil {
		return ""
	}
	return o.SheetOverrides[slot]
}

// RowRange returns the row override for a slot, or the default.
func (o Options) RowRange(slot string, def [2]int) [2]int {
	if o.Rows == nil {
		return def
	}
	if r, ok := o.Rows[slot]; ok {
		return r
	}
	return def
}

// InputRequest a choice the operator must make before extraction can
// run. The core never blocks on interactive input; the calling layer
// re-submits with the choice in Options.
type InputRequest struct {
	Slot    string   `json:"slot"`
	Reason  string   `json:"reason"`
	Choices []string `json:"choices,omitempty"`
}

// Run per-conversion state: target month, open workbooks, the run's
// tracker and resolver, and the department config produced by
// validation. Every stateful component is scoped to one Run.
type Run struct {
	Department string
	Month      int
	Year       int
	Tracker    *schedule.Tracker
	Resolver   *directory.Resolver
	Log        *zap.Logger

	// Config department-specific run configuration, set by
	// ValidateAndConfigure and consumed by Extract.
	Config any

	files []*excelize.File
}

// NewRun creates a run with a fresh tracker and a resolver scoped to
// the department's slice of the directory.
func NewRun(dept string, month, year int, dir *directory.Directory, log *zap.Logger) *Run {
	tracker := schedule.NewTracker(dept)
	return &Run{
		Department: dept,
		Month:      month,
		Year:       year,
		Tracker:    tracker,
		Resolver:   directory.NewResolver(dir.ForDepartment(dept), tracker),
		Log:        log,
	}
}

// TrackFile registers an open workbook for cleanup.
func (r *Run) TrackFile(f *excelize.File) {
	r.files = append(r.files, f)
}

// Close closes every workbook opened during validation.
func (r *Run) Close() {
	for _, f := range r.files {
		_ = f.Close()
	}
	r.files = nil
}
