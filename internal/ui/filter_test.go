package ui

import (
	"reflect"
	"testing"
)

func TestMatchRow(t *testing.T) {
	row := []string{"Alice", "Engineering", "42"}

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"Empty query matches", "", true},
		{"Exact field", "Alice", true},
		{"Case-insensitive", "alice", true},
		{"Substring", "gineer", true},
		{"Any field", "42", true},
		{"No match", "bob", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchRow(row, tt.query); got != tt.expected {
				t.Errorf("matchRow(%q) = %v; want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestVisibleRows(t *testing.T) {
	headers := []string{"name", "team"}
	rows := [][]string{
		{"alice", "core"},
		{"bob"},
		{"carol", "core", "extra"},
	}

	visible := visibleRows(rows, headers, "core")
	if len(visible) != 2 {
		t.Fatalf("len = %d; want 2", len(visible))
	}
	// Every visible row is padded or truncated to the header width.
	for _, row := range visible {
		if len(row) != 2 {
			t.Errorf("row %v has %d fields; want 2", row, len(row))
		}
	}
}

func TestPadRow(t *testing.T) {
	if got := padRow([]string{"a"}, 3); !reflect.DeepEqual(got, []string{"a", "", ""}) {
		t.Errorf("padRow short = %v", got)
	}
	if got := padRow([]string{"a", "b", "c"}, 2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("padRow long = %v", got)
	}
}

func TestComputeColumns(t *testing.T) {
	headers := []string{"id", "description"}
	rows := [][]string{
		{"1", "short"},
		{"2", "a rather substantially longer cell value"},
	}

	columns := computeColumns(headers, rows)
	if len(columns) != 2 {
		t.Fatalf("len = %d; want 2", len(columns))
	}
	if columns[0].Width != minColumnWidth {
		t.Errorf("narrow column width = %d; want clamp to %d", columns[0].Width, minColumnWidth)
	}
	if columns[1].Width != maxColumnWidth {
		t.Errorf("wide column width = %d; want clamp to %d", columns[1].Width, maxColumnWidth)
	}
}
