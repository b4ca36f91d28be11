package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

const (
	minColumnWidth = 4
	maxColumnWidth = 40

	// columnSampleRows bounds how many rows feed column-width sizing.
	columnSampleRows = 100
)

// visibleRows converts loaded rows into table rows, keeping only those
// matching the filter query and padding each to the header width so the
// table never indexes past a short row.
func visibleRows(rows [][]string, headers []string, query string) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		if !matchRow(row, query) {
			continue
		}
		out = append(out, table.Row(padRow(row, len(headers))))
	}
	return out
}

// matchRow reports whether any field contains query, case-insensitively.
// An empty query matches everything.
func matchRow(row []string, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range row {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// padRow truncates or right-pads row to exactly width fields.
func padRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// computeColumns sizes each column to its widest header or sampled cell,
// clamped to a readable range.
func computeColumns(headers []string, rows [][]string) []table.Column {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := len(h)
		for j := 0; j < len(rows) && j < columnSampleRows; j++ {
			if i < len(rows[j]) && len(rows[j][i]) > width {
				width = len(rows[j][i])
			}
		}
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		columns[i] = table.Column{Title: h, Width: width}
	}
	return columns
}
