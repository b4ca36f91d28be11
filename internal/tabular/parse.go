package tabular

import (
	"fmt"

	"tabview/internal/types"
)

// Parse splits text into a header record and data rows on delim,
// honoring RFC-4180-style quoting: fields may be wrapped in quotes,
// delimiters and line breaks inside a quoted span are literal, and a
// doubled quote is an escaped literal quote.
//
// With maxRows > 0 parsing stops after maxRows+1 records (header plus
// cap); maxRows == 0 parses only far enough to produce the header; a
// negative maxRows parses everything. The cap is how large files are
// loaded incrementally; hitting it is not an error.
//
// Malformed quoting and rows whose field count differs from the header
// are recorded as ParseErrors and never abort the parse.
func Parse(text string, delim Delimiter, maxRows int) *types.ParsedTable {
	table := &types.ParsedTable{}

	limit := 1
	switch {
	case maxRows > 0:
		limit = maxRows + 1
	case maxRows < 0:
		limit = -1
	}

	recIdx := 0
	splitRecords(text, func(rec string) bool {
		fields, clean := splitFields(rec, delim.Char())
		if !clean {
			table.ParseErrors = append(table.ParseErrors, types.ParseError{
				Kind:     "quotes",
				Message:  "unterminated quoted field",
				RowIndex: recIdx,
			})
		}

		if recIdx == 0 {
			table.Headers = fields
		} else {
			if len(fields) != len(table.Headers) {
				table.ParseErrors = append(table.ParseErrors, types.ParseError{
					Kind:     "fields",
					Message:  fmt.Sprintf("expected %d fields, found %d", len(table.Headers), len(fields)),
					RowIndex: recIdx,
				})
			}
			table.Rows = append(table.Rows, fields)
		}

		recIdx++
		return limit < 0 || recIdx < limit
	})

	return table
}
