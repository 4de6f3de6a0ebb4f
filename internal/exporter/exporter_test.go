package exporter

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

func sampleRecords() []model.ScheduleRecord {
	return []model.ScheduleRecord{
		{Employee: "bellam5", Team: "116", StartDate: "02/03/2024", StartTime: "700", EndDate: "02/04/2024", EndTime: "700", Role: "1056"},
		{Employee: "qulfi6e", Team: "123", StartDate: "02/05/2024", StartTime: "700", EndDate: "02/05/2024", EndTime: "1600", Role: "3042457", Notes: "2nd Day Call"},
		{Employee: "konasje", Team: "123", StartDate: "02/05/2024", StartTime: "1900", EndDate: "02/06/2024", EndTime: "700", Role: "72", Notes: "Night Call"},
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	if got := Filename(2024, 2, "csv"); got != "EpicOnCall_Import_SCHEDULE_2024_February.csv" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename(2025, 12, "xlsx"); got != "EpicOnCall_Import_SCHEDULE_2025_December.xlsx" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, records)
	}
}

func TestCSVHeaderAndOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want header + 3", len(lines))
	}
	if string(bytes.TrimSpace(lines[0])) != "EMPLOYEE,TEAM,STARTDATE,STARTTIME,ENDDATE,ENDTIME,ROLE,NOTES" {
		t.Fatalf("header = %q", lines[0])
	}
	// Record order is preserved; times keep the no-colon format.
	if !bytes.Contains(lines[1], []byte("bellam5")) || !bytes.Contains(lines[1], []byte(",700,")) {
		t.Fatalf("first row = %q", lines[1])
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	f, err := NewWorkbook(records)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	got, err := ReadWorkbook(f)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, records)
	}
}

func TestWorkbookEmptyRecords(t *testing.T) {
	t.Parallel()

	f, err := NewWorkbook(nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	got, err := ReadWorkbook(f)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty workbook produced %d records", len(got))
	}
}
