package directory

import (
	"testing"

	"github.com/sharadgeorge/oncall-converter/internal/model"
	"github.com/sharadgeorge/oncall-converter/internal/schedule"
)

func testDirectory() *Directory {
	return New([]model.EmployeeDirectoryEntry{
		{Username: "allwo0f", Initials: "AK", FullName: "Dr. Allison Livingston", Roles: []string{"1056"}, Department: "Radiology"},
		{Username: "bellam5", Initials: "MB", FullName: "Dr. Monica Bella", Roles: []string{"1056"}, Department: "Radiology"},
		{Username: "gonzsa2", Initials: "SG", FullName: "Dr. Gonzales, Salem", Roles: []string{"1056"}, Department: "Radiology"},
		{Username: "qulfi6e", Initials: "Q", FullName: "Qureshi", Roles: []string{"3042457"}, Department: "Cardiology"},
	})
}

func newTestResolver() (*Resolver, *schedule.Tracker) {
	tracker := schedule.NewTracker("Radiology")
	return NewResolver(testDirectory().ForDepartment("Radiology"), tracker), tracker
}

func TestResolver_InitialsVariantsResolveIdentically(t *testing.T) {
	t.Parallel()

	r, tracker := newTestResolver()

	for _, text := range []string{"AK", "ak", "A.K", "a.k.", " AK "} {
		username, ok := r.Resolve(text)
		if !ok || username != "allwo0f" {
			t.Fatalf("Resolve(%q) = (%q, %v), want allwo0f", text, username, ok)
		}
	}

	report := tracker.Report()
	if !report.Empty() {
		t.Fatalf("successful resolutions must not record warnings: %+v", report)
	}
}

func TestResolver_ExactAndNormalizedNames(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver()

	cases := map[string]string{
		"Dr. Monica Bella": "bellam5", // exact
		"dr monica bella":  "bellam5", // periods stripped, case-insensitive
		"DR. MONICA BELLA": "bellam5",
	}
	for in, want := range cases {
		got, ok := r.Resolve(in)
		if !ok || got != want {
			t.Fatalf("Resolve(%q) = (%q, %v), want %q", in, got, ok, want)
		}
	}
}

func TestResolver_FailureClassification(t *testing.T) {
	t.Parallel()

	r, tracker := newTestResolver()

	if _, ok := r.Resolve("ZZZ"); ok {
		t.Fatalf("ZZZ should not resolve")
	}
	if _, ok := r.Resolve("Dr. Unknown Person"); ok {
		t.Fatalf("unknown name should not resolve")
	}

	report := tracker.Report()
	if len(report.UnknownInitials) != 1 || report.UnknownInitials[0] != "ZZZ" {
		t.Fatalf("unknown initials = %v, want [ZZZ]", report.UnknownInitials)
	}
	if len(report.UnknownNames) != 1 || report.UnknownNames[0] != "Dr. Unknown Person" {
		t.Fatalf("unknown names = %v", report.UnknownNames)
	}
}

func TestResolver_RepeatFailureRecordsOnce(t *testing.T) {
	t.Parallel()

	r, tracker := newTestResolver()

	for i := 0; i < 3; i++ {
		if _, ok := r.Resolve("ZZZ"); ok {
			t.Fatalf("ZZZ should not resolve")
		}
	}
	if got := tracker.Report().UnknownInitials; len(got) != 1 {
		t.Fatalf("unknown initials recorded %d times, want 1", len(got))
	}
}

func TestResolver_LookupNeverRecords(t *testing.T) {
	t.Parallel()

	r, tracker := newTestResolver()

	if _, ok := r.Lookup("TELE"); ok {
		t.Fatalf("TELE should not be in the directory")
	}
	report := tracker.Report()
	if !report.Empty() {
		t.Fatalf("Lookup must not record failures")
	}
}

func TestResolver_LooseNameMatching(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver()

	cases := map[string]string{
		"GONZALES, SALEM": "gonzsa2", // Lastname, Firstname containment
		"Gonzales,":       "gonzsa2",
		"Monica Bella":    "bellam5", // title-stripped substring
	}
	for in, want := range cases {
		got, ok := r.ResolveLoose(in)
		if !ok || got != want {
			t.Fatalf("ResolveLoose(%q) = (%q, %v), want %q", in, got, ok, want)
		}
	}
}

func TestDirectory_DepartmentScoping(t *testing.T) {
	t.Parallel()

	dir := testDirectory()
	if dir.Len() != 4 {
		t.Fatalf("full directory size = %d", dir.Len())
	}

	cardio := dir.ForDepartment("Cardiology")
	if cardio.Len() != 1 {
		t.Fatalf("cardiology directory size = %d, want 1", cardio.Len())
	}
	if _, ok := cardio.ByInitials("AK"); ok {
		t.Fatalf("radiology initials must not resolve in the cardiology scope")
	}
}

func TestDirectory_PrimaryRole(t *testing.T) {
	t.Parallel()

	dir := testDirectory()
	if got := dir.PrimaryRole("qulfi6e", "72"); got != "3042457" {
		t.Fatalf("PrimaryRole = %q", got)
	}
	if got := dir.PrimaryRole("missing", "72"); got != "72" {
		t.Fatalf("PrimaryRole fallback = %q", got)
	}
}
