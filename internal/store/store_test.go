package store

import (
	"path/filepath"
	"testing"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "directory.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SeedIfEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.SeedIfEmpty(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := s.CountEmployees()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(seedEmployees) {
		t.Fatalf("count = %d, want %d", n, len(seedEmployees))
	}

	// Seeding again must not duplicate.
	if err := s.SeedIfEmpty(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	n2, err := s.CountEmployees()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n2 != n {
		t.Fatalf("second seed changed count: %d -> %d", n, n2)
	}
}

func TestStore_ListEmployeesKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	entries := []model.EmployeeDirectoryEntry{
		{Username: "bb1", Initials: "BB", FullName: "Bravo", Roles: []string{"2"}, Department: "Radiology"},
		{Username: "aa1", Initials: "AA", FullName: "Alpha", Roles: []string{"1", "9"}, Department: "Radiology"},
		{Username: "cc1", Initials: "CC", FullName: "Charlie", Roles: []string{"3"}, Department: "Cardiology"},
	}
	if err := s.BatchInsertEmployees(entries); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.ListEmployees("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("list size = %d", len(got))
	}
	if got[0].Username != "bb1" || got[1].Username != "aa1" {
		t.Fatalf("insertion order lost: %s, %s", got[0].Username, got[1].Username)
	}
	if len(got[1].Roles) != 2 || got[1].Roles[0] != "1" {
		t.Fatalf("roles round-trip failed: %v", got[1].Roles)
	}

	radiology, err := s.ListEmployees("radiology")
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(radiology) != 2 {
		t.Fatalf("department filter size = %d, want 2", len(radiology))
	}
}
