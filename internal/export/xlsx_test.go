package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestToXLSX(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.xlsx")

	headers := []string{"name", "hours"}
	rows := [][]string{
		{"alice", "8.0"},
		{"bob", "7.5"},
	}

	if err := ToXLSX(headers, rows, output); err != nil {
		t.Fatalf("ToXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	checks := map[string]string{
		"A1": "name",
		"B1": "hours",
		"A2": "alice",
		"B2": "8.0",
		"A3": "bob",
		"B3": "7.5",
	}
	for cell, expected := range checks {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != expected {
			t.Errorf("cell %s = %q; want %q", cell, got, expected)
		}
	}
}

func TestToXLSXRaggedRows(t *testing.T) {
	output := filepath.Join(t.TempDir(), "ragged.xlsx")

	headers := []string{"a", "b"}
	rows := [][]string{
		{"1"},
		{},
		{"2", "3", "4"},
	}

	if err := ToXLSX(headers, rows, output); err != nil {
		t.Fatalf("ToXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if got, _ := f.GetCellValue(sheet, "A2"); got != "1" {
		t.Errorf("A2 = %q; want 1", got)
	}
	if got, _ := f.GetCellValue(sheet, "C4"); got != "4" {
		t.Errorf("C4 = %q; want 4", got)
	}
}
