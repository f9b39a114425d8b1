package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecordsCSV(t *testing.T) {
	path := writeInput(t, "in.csv", `name,number,info
Alice,400638133393,x
Bob,599999999999,y
Carol,123456789012,z
`)

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}

	want := []types.Record{
		{Name: "Alice", Number: "400638133393", ExtraInfo: "x", Row: 2},
		{Name: "Bob", Number: "599999999999", ExtraInfo: "y", Row: 3},
		{Name: "Carol", Number: "123456789012", ExtraInfo: "z", Row: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecordsHeaderOnly(t *testing.T) {
	path := writeInput(t, "in.csv", "name,number,info\n")

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records from a header-only file, want 0", len(got))
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.csv"), Settings{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadRecordsShortAndLongRows(t *testing.T) {
	// Short rows yield empty trailing fields; extra columns are dropped.
	path := writeInput(t, "in.csv", `name,number,info
OnlyName
Dave,111
Eve,222,info,surplus
`)

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}

	want := []types.Record{
		{Name: "OnlyName", Number: "", ExtraInfo: "", Row: 2},
		{Name: "Dave", Number: "111", ExtraInfo: "", Row: 3},
		{Name: "Eve", Number: "222", ExtraInfo: "info", Row: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecordsSkipsBlankAndCommentRows(t *testing.T) {
	path := writeInput(t, "in.csv", `name,number,info
Alice,400638133393,x
,,
# a comment row,000,ignored

Bob,599999999999,y
`)

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Errorf("unexpected records: %+v", got)
	}
}

func TestLoadRecordsDelimiters(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		content   string
	}{
		{"semicolon", ";", "h;h;h\nAlice;123;x\n"},
		{"pipe", "pipe", "h|h|h\nAlice|123|x\n"},
		{"tab", "tab", "h\th\th\nAlice\t123\tx\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, "in.txt", tc.content)
			got, err := LoadRecords(path, Settings{Delimiter: tc.delimiter})
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].Name != "Alice" || got[0].Number != "123" {
				t.Errorf("unexpected records: %+v", got)
			}
		})
	}
}

func TestLoadRecordsTrimsFields(t *testing.T) {
	path := writeInput(t, "in.csv", "name,number,info\n  Alice  , 123 ,  x \n")

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	want := []types.Record{{Name: "Alice", Number: "123", ExtraInfo: "x", Row: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecordsXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "number", "info"},
		{"Alice", "400638133393", "x"},
		{"#comment", "0", ""},
		{"Bob", "599999999999", "y"},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "in.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRecords(path, Settings{})
	if err != nil {
		t.Fatal(err)
	}

	want := []types.Record{
		{Name: "Alice", Number: "400638133393", ExtraInfo: "x", Row: 2},
		{Name: "Bob", Number: "599999999999", ExtraInfo: "y", Row: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}
