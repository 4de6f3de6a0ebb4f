package department_test

import (
	"testing"

	"github.com/sharadgeorge/oncall-converter/internal/department"
	_ "github.com/sharadgeorge/oncall-converter/internal/department/all"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	names := department.Names()
	if len(names) != 2 || names[0] != "Cardiology" || names[1] != "Radiology" {
		t.Fatalf("registered departments = %v", names)
	}

	d, err := department.Get("radiology")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Name() != "Radiology" {
		t.Fatalf("name = %q", d.Name())
	}
	if len(d.FileRequirements()) != 2 {
		t.Fatalf("radiology file requirements = %v", d.FileRequirements())
	}

	if _, err := department.Get("Oncology"); err == nil {
		t.Fatalf("unknown department must error")
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var empty department.Options
	if empty.SheetOverride("sp") != "" {
		t.Fatalf("zero options should have no overrides")
	}
	if got := empty.RowRange("staff", [2]int{6, 13}); got != [2]int{6, 13} {
		t.Fatalf("zero options row range = %v", got)
	}

	opts := department.Options{
		SheetOverrides: map[string]string{"sp": "SP 2024"},
		Rows:           map[string][2]int{"staff": {7, 14}},
	}
	if got := opts.SheetOverride("sp"); got != "SP 2024" {
		t.Fatalf("override = %q", got)
	}
	if got := opts.RowRange("staff", [2]int{6, 13}); got != [2]int{7, 14} {
		t.Fatalf("row range = %v", got)
	}
	if got := opts.RowRange("team8", [2]int{12, 16}); got != [2]int{12, 16} {
		t.Fatalf("default row range = %v", got)
	}
}
